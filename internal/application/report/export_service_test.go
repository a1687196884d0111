package report

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stonetrade/backend/internal/application/inventory"
	"github.com/stonetrade/backend/internal/application/partner"
	"github.com/stonetrade/backend/internal/domain/block"
	"github.com/stonetrade/backend/internal/domain/costing"
	"github.com/stonetrade/backend/internal/domain/intake"
	domainpartner "github.com/stonetrade/backend/internal/domain/partner"
	"github.com/stonetrade/backend/internal/domain/shared"
	"github.com/stonetrade/backend/internal/domain/stone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// =============================================================================
// Fakes
// =============================================================================

type fakeIntakes struct {
	records map[intake.Kind][]intake.Record
	filter  inventory.ListFilter
	err     error
}

func (f *fakeIntakes) All(_ context.Context, kind intake.Kind, filter inventory.ListFilter) ([]intake.Record, error) {
	f.filter = filter
	return f.records[kind], f.err
}

type fakeBlocks []block.Block

func (f fakeBlocks) All(context.Context, inventory.ListFilter) ([]block.Block, error) { return f, nil }

type fakeStones []stone.Stone

func (f fakeStones) All(context.Context, inventory.ListFilter) ([]stone.Stone, error) { return f, nil }

type fakeVendors struct {
	vendors []domainpartner.Vendor
	filters []partner.ListFilter
}

func (f *fakeVendors) All(_ context.Context, filter partner.ListFilter) ([]domainpartner.Vendor, error) {
	f.filters = append(f.filters, filter)
	return f.vendors, nil
}

type fakeMines []domainpartner.Mine

func (f fakeMines) All(context.Context, partner.ListFilter) ([]domainpartner.Mine, error) { return f, nil }

type fakeLabour []domainpartner.Labour

func (f fakeLabour) All(context.Context, partner.ListFilter) ([]domainpartner.Labour, error) { return f, nil }

func rows(t *testing.T, file *File, sheet string) [][]string {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(file.Data))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	out, err := f.GetRows(sheet)
	require.NoError(t, err)
	return out
}

func newService(src Sources) *ExportService {
	s := NewExportService(src, zap.NewNop())
	s.now = func() time.Time { return time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC) }
	return s
}

// =============================================================================
// Tests
// =============================================================================

func TestExportService_IntakeRecords(t *testing.T) {
	vendorID := uuid.New()
	r, err := intake.NewRecord(intake.KindTodiRaskat, intake.Input{
		StoneType:    "makrana",
		VendorID:     &vendorID,
		Munim:        "Mohan",
		Date:         time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Dimensions:   costing.Dimensions{L: decimal.NewFromInt(12), B: decimal.NewFromInt(12), H: decimal.NewFromInt(1)},
		MaterialCost: decimal.NewFromInt(800),
		Received:     []costing.PaymentEntry{{Amount: decimal.NewFromInt(300)}},
	})
	require.NoError(t, err)
	r.Recalculate(costing.Default())

	intakes := &fakeIntakes{records: map[intake.Kind][]intake.Record{intake.KindTodiRaskat: {*r}}}
	vendors := &fakeVendors{vendors: []domainpartner.Vendor{{
		BaseAggregateRoot: shared.BaseAggregateRoot{BaseEntity: shared.BaseEntity{ID: vendorID}},
		Name:              "Ramesh Stones",
	}}}
	svc := newService(Sources{Intakes: intakes, Vendors: vendors})

	filter := inventory.ListFilter{VendorID: vendorID.String()}
	file, err := svc.Export(context.Background(), "todi-raskats", filter)
	require.NoError(t, err)

	assert.Equal(t, "todi-raskats-20261017.xlsx", file.Filename)
	assert.Equal(t, ContentTypeXLSX, file.ContentType)
	assert.Equal(t, 1, file.Rows)
	assert.Equal(t, filter, intakes.filter)

	got := rows(t, file, "Todi Raskat")
	require.Len(t, got, 2)
	assert.Equal(t, "Date", got[0][0])
	assert.Equal(t, "Remaining", got[0][len(got[0])-1])
	assert.Equal(t, "makrana", got[1][1])
	assert.Equal(t, "Ramesh Stones", got[1][2])
	assert.Equal(t, "Mohan", got[1][3])
	assert.Equal(t, "Total Block Cost", got[0][13])
	assert.Equal(t, "800", got[1][13])
	assert.Equal(t, "300", got[1][17])
	assert.Equal(t, "500", got[1][18])
}

func TestExportService_BlocksResolveMine(t *testing.T) {
	mineID := uuid.New()
	b, err := block.NewBlock(block.Input{BlockNumber: "B-17", MineID: &mineID})
	require.NoError(t, err)

	svc := newService(Sources{
		Blocks: fakeBlocks{*b},
		Mines:  fakeMines{{BaseAggregateRoot: shared.BaseAggregateRoot{BaseEntity: shared.BaseEntity{ID: mineID}}, Name: "Quarry 4"}},
	})

	file, err := svc.Export(context.Background(), CollectionBlocks, inventory.ListFilter{})
	require.NoError(t, err)
	got := rows(t, file, "Blocks")
	require.Len(t, got, 2)
	assert.Equal(t, "B-17", got[1][1])
	assert.Equal(t, "", got[1][2])
	assert.Equal(t, "Quarry 4", got[1][3])
}

func TestExportService_Stones(t *testing.T) {
	st, err := stone.NewStone(stone.Input{
		StoneType:     "Marble",
		Date:          time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Rate:          decimal.NewFromInt(10),
		TotalQuantity: decimal.NewFromInt(8),
	})
	require.NoError(t, err)

	svc := newService(Sources{Stones: fakeStones{*st}})
	file, err := svc.Export(context.Background(), CollectionStones, inventory.ListFilter{})
	require.NoError(t, err)
	got := rows(t, file, "Stones")
	require.Len(t, got, 2)
	assert.Equal(t, "marble", got[1][1])
	assert.Equal(t, "8", got[1][3])
}

func TestExportService_VendorsAndLabour(t *testing.T) {
	mineID := uuid.New()
	vendors := &fakeVendors{vendors: []domainpartner.Vendor{{
		Name:    "Ramesh Stones",
		Phones:  shared.JSONSlice[string]{"9829012345", "9829012346"},
		Address: "Makrana",
		MineID:  &mineID,
	}}}
	svc := newService(Sources{
		Vendors: vendors,
		Mines:   fakeMines{{BaseAggregateRoot: shared.BaseAggregateRoot{BaseEntity: shared.BaseEntity{ID: mineID}}, Name: "Quarry 4"}},
		Labour:  fakeLabour{{Name: "Suresh", Mobile: "9829011111"}},
	})

	file, err := svc.Export(context.Background(), CollectionVendors, inventory.ListFilter{Search: "ram", VendorID: uuid.NewString()})
	require.NoError(t, err)
	got := rows(t, file, "Vendors")
	require.Len(t, got, 2)
	assert.Equal(t, []string{"Ramesh Stones", "9829012345, 9829012346", "Makrana", "Quarry 4"}, got[1])
	require.NotEmpty(t, vendors.filters)
	assert.Equal(t, "ram", vendors.filters[0].Search)

	file, err = svc.Export(context.Background(), CollectionLabour, inventory.ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Name", "Mobile"}, {"Suresh", "9829011111"}}, rows(t, file, "Labour"))
}

func TestExportService_UnknownCollection(t *testing.T) {
	_, err := newService(Sources{}).Export(context.Background(), "customers", inventory.ListFilter{})
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_COLLECTION", domainErr.Code)
}

func TestExportService_SourceError(t *testing.T) {
	boom := errors.New("db down")
	svc := newService(Sources{Intakes: &fakeIntakes{err: boom}})
	_, err := svc.Export(context.Background(), "todis", inventory.ListFilter{})
	assert.ErrorIs(t, err, boom)
}

func TestCollections(t *testing.T) {
	assert.Equal(t, []string{"todis", "galas", "todi-raskats", "blocks", "stones", "vendors", "labour"}, Collections())
}
