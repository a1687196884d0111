package printing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stonetrade/backend/internal/domain/block"
	"github.com/stonetrade/backend/internal/domain/intake"
	"github.com/stonetrade/backend/internal/domain/partner"
	"github.com/stonetrade/backend/internal/domain/shared"
	infra "github.com/stonetrade/backend/internal/infrastructure/printing"
	"go.uber.org/zap"
)

// ObjectStorage stores archived statements and hands out download links
type ObjectStorage interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	DownloadURL(ctx context.Context, key string) (string, time.Time, error)
}

// StatementService renders party statements for intake records and blocks
type StatementService struct {
	records        intake.RecordRepository
	blocks         block.BlockRepository
	vendors        partner.VendorRepository
	mines          partner.MineRepository
	templateEngine *infra.TemplateEngine
	pdfRenderer    infra.PDFRenderer
	storage        ObjectStorage
	logger         *zap.Logger
}

// NewStatementService creates a new StatementService. storage may be nil, which disables archiving.
func NewStatementService(
	records intake.RecordRepository,
	blocks block.BlockRepository,
	vendors partner.VendorRepository,
	mines partner.MineRepository,
	templateEngine *infra.TemplateEngine,
	pdfRenderer infra.PDFRenderer,
	storage ObjectStorage,
	logger *zap.Logger,
) *StatementService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if pdfRenderer == nil {
		pdfRenderer = infra.DisabledRenderer{}
	}
	return &StatementService{
		records:        records,
		blocks:         blocks,
		vendors:        vendors,
		mines:          mines,
		templateEngine: templateEngine,
		pdfRenderer:    pdfRenderer,
		storage:        storage,
		logger:         logger,
	}
}

// IntakeStatement renders the statement of one todi, gala or todi raskat record
func (s *StatementService) IntakeStatement(ctx context.Context, kind intake.Kind, id uuid.UUID, format Format) (*Document, error) {
	record, err := s.records.FindByID(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	party, err := s.vendorName(ctx, record.VendorID)
	if err != nil {
		return nil, err
	}

	html, err := s.templateEngine.IntakeStatementHTML(record, party)
	if err != nil {
		return nil, renderError(err)
	}
	return s.document(ctx, html, kind.Slug()+"-"+shortID(id), format)
}

// BlockStatement renders the statement of one block
func (s *StatementService) BlockStatement(ctx context.Context, id uuid.UUID, format Format) (*Document, error) {
	b, err := s.blocks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	party, err := s.vendorName(ctx, b.VendorID)
	if err != nil {
		return nil, err
	}
	mine, err := s.mineName(ctx, b.MineID)
	if err != nil {
		return nil, err
	}

	html, err := s.templateEngine.BlockStatementHTML(b, party, mine)
	if err != nil {
		return nil, renderError(err)
	}
	return s.document(ctx, html, "block-"+shortID(id), format)
}

// ArchiveIntakeStatement renders the PDF statement of a record, stores it and returns a download link
func (s *StatementService) ArchiveIntakeStatement(ctx context.Context, kind intake.Kind, id uuid.UUID) (*ArchiveResponse, error) {
	if s.storage == nil {
		return nil, errStorageDisabled
	}
	doc, err := s.IntakeStatement(ctx, kind, id, FormatPDF)
	if err != nil {
		return nil, err
	}
	return s.archive(ctx, "statements/"+kind.Slug()+"/"+id.String()+"/"+doc.Filename, doc)
}

// ArchiveBlockStatement renders the PDF statement of a block, stores it and returns a download link
func (s *StatementService) ArchiveBlockStatement(ctx context.Context, id uuid.UUID) (*ArchiveResponse, error) {
	if s.storage == nil {
		return nil, errStorageDisabled
	}
	doc, err := s.BlockStatement(ctx, id, FormatPDF)
	if err != nil {
		return nil, err
	}
	return s.archive(ctx, "statements/blocks/"+id.String()+"/"+doc.Filename, doc)
}

var errStorageDisabled = shared.NewDomainError("STORAGE_DISABLED", "Statement archiving is not configured")

func (s *StatementService) document(ctx context.Context, html, name string, format Format) (*Document, error) {
	if format == FormatHTML {
		return &Document{
			Filename:    name + ".html",
			ContentType: "text/html; charset=utf-8",
			Data:        []byte(html),
		}, nil
	}

	result, err := s.pdfRenderer.Render(ctx, &infra.RenderRequest{HTML: html, Title: name})
	if err != nil {
		s.logger.Error("PDF rendering failed", zap.Error(err), zap.String("document", name))
		return nil, renderError(err)
	}

	s.logger.Info("Statement rendered",
		zap.String("document", name),
		zap.Int("pages", result.PageCount),
		zap.Duration("duration", result.RenderDuration))

	return &Document{
		Filename:    name + ".pdf",
		ContentType: "application/pdf",
		Data:        result.PDFData,
		PageCount:   result.PageCount,
	}, nil
}

func (s *StatementService) archive(ctx context.Context, key string, doc *Document) (*ArchiveResponse, error) {
	if err := s.storage.Put(ctx, key, doc.Data, doc.ContentType); err != nil {
		s.logger.Error("Statement upload failed", zap.Error(err), zap.String("key", key))
		return nil, fmt.Errorf("failed to store statement: %w", err)
	}
	url, expiresAt, err := s.storage.DownloadURL(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to sign statement url: %w", err)
	}

	s.logger.Info("Statement archived", zap.String("key", key), zap.Int("size", len(doc.Data)))
	return &ArchiveResponse{Key: key, URL: url, ExpiresAt: expiresAt, Size: len(doc.Data)}, nil
}

// vendorName returns "" when the record has no vendor or the vendor was deleted
func (s *StatementService) vendorName(ctx context.Context, id *uuid.UUID) (string, error) {
	if id == nil || s.vendors == nil {
		return "", nil
	}
	v, err := s.vendors.FindByID(ctx, *id)
	if errors.Is(err, shared.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return v.Name, nil
}

func (s *StatementService) mineName(ctx context.Context, id *uuid.UUID) (string, error) {
	if id == nil || s.mines == nil {
		return "", nil
	}
	m, err := s.mines.FindByID(ctx, *id)
	if errors.Is(err, shared.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return m.Name, nil
}

// renderError turns renderer failures into domain errors the API can report
func renderError(err error) error {
	var renderErr *infra.RenderError
	if errors.As(err, &renderErr) {
		return shared.NewDomainError(renderErr.Code, renderErr.Message)
	}
	return err
}

func shortID(id uuid.UUID) string {
	return id.String()[:8]
}
