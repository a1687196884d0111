package printing_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stonetrade/backend/internal/application/printing"
	"github.com/stonetrade/backend/internal/domain/block"
	"github.com/stonetrade/backend/internal/domain/costing"
	"github.com/stonetrade/backend/internal/domain/intake"
	"github.com/stonetrade/backend/internal/domain/partner"
	"github.com/stonetrade/backend/internal/domain/shared"
	"github.com/stonetrade/backend/internal/infrastructure/config"
	infra "github.com/stonetrade/backend/internal/infrastructure/printing"
	"github.com/stonetrade/backend/internal/infrastructure/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// =============================================================================
// Mock Implementations
// =============================================================================

type MockRecordRepository struct {
	mock.Mock
	intake.RecordRepository
}

func (m *MockRecordRepository) FindByID(ctx context.Context, kind intake.Kind, id uuid.UUID) (*intake.Record, error) {
	args := m.Called(ctx, kind, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*intake.Record), args.Error(1)
}

type MockBlockRepository struct {
	mock.Mock
	block.BlockRepository
}

func (m *MockBlockRepository) FindByID(ctx context.Context, id uuid.UUID) (*block.Block, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*block.Block), args.Error(1)
}

type MockVendorRepository struct {
	mock.Mock
	partner.VendorRepository
}

func (m *MockVendorRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Vendor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Vendor), args.Error(1)
}

type MockMineRepository struct {
	mock.Mock
	partner.MineRepository
}

func (m *MockMineRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Mine, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Mine), args.Error(1)
}

type MockPDFRenderer struct {
	mock.Mock
}

func (m *MockPDFRenderer) Render(ctx context.Context, req *infra.RenderRequest) (*infra.RenderResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*infra.RenderResult), args.Error(1)
}

func (m *MockPDFRenderer) Close() error {
	return nil
}

// =============================================================================
// Fixtures
// =============================================================================

type fixture struct {
	records  *MockRecordRepository
	blocks   *MockBlockRepository
	vendors  *MockVendorRepository
	mines    *MockMineRepository
	renderer *MockPDFRenderer
	storage  *storage.MemoryObjectStorage
	svc      *printing.StatementService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	engine, err := infra.NewTemplateEngine(&config.PrintingConfig{
		CompanyName:    "Shree Marbles",
		CurrencySymbol: "Rs ",
		Locale:         "en",
	})
	require.NoError(t, err)

	f := &fixture{
		records:  new(MockRecordRepository),
		blocks:   new(MockBlockRepository),
		vendors:  new(MockVendorRepository),
		mines:    new(MockMineRepository),
		renderer: new(MockPDFRenderer),
		storage:  storage.NewMemoryObjectStorage("http://files.local"),
	}
	f.svc = printing.NewStatementService(f.records, f.blocks, f.vendors, f.mines, engine, f.renderer, f.storage, zap.NewNop())
	return f
}

func workedRecord(t *testing.T, vendorID *uuid.UUID) *intake.Record {
	t.Helper()
	r, err := intake.NewRecord(intake.KindGala, intake.Input{
		StoneType:    "makrana",
		VendorID:     vendorID,
		Date:         time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Dimensions:   costing.Dimensions{L: decimal.NewFromInt(12), B: decimal.NewFromInt(12), H: decimal.NewFromInt(1)},
		MaterialCost: decimal.NewFromInt(800),
	})
	require.NoError(t, err)
	r.Recalculate(costing.Default())
	return r
}

// =============================================================================
// Statements
// =============================================================================

func TestStatementService_IntakeStatement_HTML(t *testing.T) {
	f := newFixture(t)
	vendorID := uuid.New()
	record := workedRecord(t, &vendorID)

	f.records.On("FindByID", mock.Anything, intake.KindGala, record.ID).Return(record, nil)
	f.vendors.On("FindByID", mock.Anything, vendorID).Return(&partner.Vendor{Name: "Ramesh Stones"}, nil)

	doc, err := f.svc.IntakeStatement(context.Background(), intake.KindGala, record.ID, printing.FormatHTML)
	require.NoError(t, err)
	assert.Equal(t, "text/html; charset=utf-8", doc.ContentType)
	assert.True(t, strings.HasPrefix(doc.Filename, "galas-"))
	assert.True(t, strings.HasSuffix(doc.Filename, ".html"))
	assert.Contains(t, string(doc.Data), "Ramesh Stones")
	assert.Contains(t, string(doc.Data), "Rs 800.00")
	f.renderer.AssertNotCalled(t, "Render", mock.Anything, mock.Anything)
}

func TestStatementService_IntakeStatement_DeletedVendor(t *testing.T) {
	f := newFixture(t)
	vendorID := uuid.New()
	record := workedRecord(t, &vendorID)

	f.records.On("FindByID", mock.Anything, intake.KindGala, record.ID).Return(record, nil)
	f.vendors.On("FindByID", mock.Anything, vendorID).Return(nil, shared.ErrNotFound)

	doc, err := f.svc.IntakeStatement(context.Background(), intake.KindGala, record.ID, printing.FormatHTML)
	require.NoError(t, err)
	assert.NotEmpty(t, doc.Data)
}

func TestStatementService_BlockStatement_PDF(t *testing.T) {
	f := newFixture(t)
	mineID := uuid.New()
	b, err := block.NewBlock(block.Input{
		BlockNumber: "B-17",
		MineID:      &mineID,
		Front:       costing.Dimensions{L: decimal.NewFromInt(2), B: decimal.NewFromInt(3), H: decimal.NewFromInt(4)},
		Rate:        decimal.NewFromInt(144),
	})
	require.NoError(t, err)
	b.Recalculate(costing.Default())

	f.blocks.On("FindByID", mock.Anything, b.ID).Return(b, nil)
	f.mines.On("FindByID", mock.Anything, mineID).Return(&partner.Mine{Name: "Quarry 4"}, nil)
	f.renderer.On("Render", mock.Anything, mock.MatchedBy(func(req *infra.RenderRequest) bool {
		return strings.Contains(req.HTML, "Quarry 4") && strings.Contains(req.HTML, "B-17")
	})).Return(&infra.RenderResult{PDFData: []byte("%PDF-1.7"), PageCount: 1}, nil)

	doc, err := f.svc.BlockStatement(context.Background(), b.ID, printing.FormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", doc.ContentType)
	assert.Equal(t, []byte("%PDF-1.7"), doc.Data)
	assert.Equal(t, 1, doc.PageCount)
	f.vendors.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestStatementService_RendererDisabled(t *testing.T) {
	f := newFixture(t)
	record := workedRecord(t, nil)
	f.records.On("FindByID", mock.Anything, intake.KindGala, record.ID).Return(record, nil)
	f.renderer.On("Render", mock.Anything, mock.Anything).
		Return(nil, infra.NewRenderError(infra.ErrCodeRendererOffline, "PDF rendering is disabled", nil))

	_, err := f.svc.IntakeStatement(context.Background(), intake.KindGala, record.ID, printing.FormatPDF)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, infra.ErrCodeRendererOffline, domainErr.Code)
}

func TestStatementService_ArchiveIntakeStatement(t *testing.T) {
	f := newFixture(t)
	record := workedRecord(t, nil)
	f.records.On("FindByID", mock.Anything, intake.KindGala, record.ID).Return(record, nil)
	f.renderer.On("Render", mock.Anything, mock.Anything).Return(&infra.RenderResult{PDFData: []byte("%PDF"), PageCount: 1}, nil)

	archived, err := f.svc.ArchiveIntakeStatement(context.Background(), intake.KindGala, record.ID)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(archived.Key, "statements/galas/"+record.ID.String()+"/"))
	assert.Equal(t, "http://files.local/"+archived.Key, archived.URL)
	assert.Equal(t, 4, archived.Size)

	data, contentType, ok := f.storage.Get(archived.Key)
	require.True(t, ok)
	assert.Equal(t, "application/pdf", contentType)
	assert.Equal(t, []byte("%PDF"), data)
}

func TestStatementService_ArchiveWithoutStorage(t *testing.T) {
	svc := printing.NewStatementService(nil, nil, nil, nil, nil, nil, nil, nil)
	_, err := svc.ArchiveBlockStatement(context.Background(), uuid.New())
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "STORAGE_DISABLED", domainErr.Code)
}

func TestParseFormat(t *testing.T) {
	f, err := printing.ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, printing.FormatPDF, f)

	f, err = printing.ParseFormat("HTML")
	require.NoError(t, err)
	assert.Equal(t, printing.FormatHTML, f)

	_, err = printing.ParseFormat("docx")
	assert.Error(t, err)
}
