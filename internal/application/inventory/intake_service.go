package inventory

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/stonetrade/backend/internal/domain/costing"
	"github.com/stonetrade/backend/internal/domain/intake"
)

// IntakeService handles todi, gala and todi raskat records
type IntakeService struct {
	repo    intake.RecordRepository
	refs    *References
	calc    *costing.Calculator
	metrics CostingRecorder
	logger  *zap.Logger
}

// NewIntakeService creates a new IntakeService
func NewIntakeService(
	repo intake.RecordRepository,
	refs *References,
	calc *costing.Calculator,
	metrics CostingRecorder,
	logger *zap.Logger,
) *IntakeService {
	if calc == nil {
		calc = costing.Default()
	}
	return &IntakeService{
		repo:    repo,
		refs:    refs,
		calc:    calc,
		metrics: recorderOrNop(metrics),
		logger:  logger,
	}
}

// Create stores a new record of the given kind
func (s *IntakeService) Create(ctx context.Context, kind intake.Kind, req IntakeRequest) (*IntakeResponse, error) {
	if err := s.refs.checkVendor(ctx, req.VendorID); err != nil {
		return nil, err
	}
	record, err := intake.NewRecord(kind, req.toInput())
	if err != nil {
		return nil, err
	}
	record.Recalculate(s.calc)

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}

	s.logger.Info("Intake record created",
		zap.String("kind", string(kind)),
		zap.String("id", record.ID.String()),
		zap.String("final_cost", record.FinalCost.String()))
	s.metrics.RecordRemaining(ctx, kind.Slug(), record.PartyRemainingPayment)

	response := ToIntakeResponse(record)
	return &response, nil
}

// GetByID retrieves a record
func (s *IntakeService) GetByID(ctx context.Context, kind intake.Kind, id uuid.UUID) (*IntakeResponse, error) {
	record, err := s.repo.FindByID(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	response := ToIntakeResponse(record)
	return &response, nil
}

// Find returns the stored record itself, for statements and exports
func (s *IntakeService) Find(ctx context.Context, kind intake.Kind, id uuid.UUID) (*intake.Record, error) {
	return s.repo.FindByID(ctx, kind, id)
}

// List retrieves records of a kind with filtering and pagination
func (s *IntakeService) List(ctx context.Context, kind intake.Kind, filter ListFilter) ([]IntakeResponse, int64, error) {
	domainFilter := filter.toDomain()
	delete(domainFilter.Filters, "mine_id")

	records, err := s.repo.FindAll(ctx, kind, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx, kind, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToIntakeResponses(records), total, nil
}

// Update replaces every raw field of a record and recomputes the derived ones
func (s *IntakeService) Update(ctx context.Context, kind intake.Kind, id uuid.UUID, req IntakeRequest) (*IntakeResponse, error) {
	record, err := s.repo.FindByID(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	if err := checkVersion(req.Version, record.Version); err != nil {
		return nil, err
	}
	if err := s.refs.checkVendor(ctx, req.VendorID); err != nil {
		return nil, err
	}

	if err := record.Update(req.toInput()); err != nil {
		return nil, err
	}
	record.Recalculate(s.calc)

	if err := s.repo.Update(ctx, record); err != nil {
		return nil, err
	}

	s.logger.Info("Intake record updated",
		zap.String("kind", string(kind)),
		zap.String("id", id.String()),
		zap.Int("version", record.Version))
	s.metrics.RecordRemaining(ctx, kind.Slug(), record.PartyRemainingPayment)

	response := ToIntakeResponse(record)
	return &response, nil
}

// Delete removes a record
func (s *IntakeService) Delete(ctx context.Context, kind intake.Kind, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, kind, id); err != nil {
		return err
	}
	s.logger.Info("Intake record deleted", zap.String("kind", string(kind)), zap.String("id", id.String()))
	return nil
}

// AddPayment appends a received amount and recomputes the remaining payment
func (s *IntakeService) AddPayment(ctx context.Context, kind intake.Kind, id uuid.UUID, req AddPaymentRequest) (*IntakeResponse, error) {
	record, err := s.repo.FindByID(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	if err := record.AddPayment(req.toEntry()); err != nil {
		return nil, err
	}
	record.Recalculate(s.calc)

	if err := s.repo.Update(ctx, record); err != nil {
		return nil, err
	}

	s.logger.Info("Payment received",
		zap.String("kind", string(kind)),
		zap.String("id", id.String()),
		zap.String("amount", req.Amount.String()),
		zap.String("remaining", record.PartyRemainingPayment.String()))
	s.metrics.RecordRemaining(ctx, kind.Slug(), record.PartyRemainingPayment)

	response := ToIntakeResponse(record)
	return &response, nil
}

// Preview runs the full roll-up on an unsaved record
func (s *IntakeService) Preview(kind intake.Kind, req IntakeRequest) (*IntakeResponse, error) {
	if kind == "" {
		kind = intake.KindTodi
	}
	record, err := intake.NewRecord(kind, req.toInput())
	if err != nil {
		return nil, err
	}
	record.Recalculate(s.calc)
	response := ToIntakeResponse(record)
	return &response, nil
}

// All returns every matching record of a kind without pagination, for exports
func (s *IntakeService) All(ctx context.Context, kind intake.Kind, filter ListFilter) ([]intake.Record, error) {
	domainFilter := filter.toDomain()
	delete(domainFilter.Filters, "mine_id")
	domainFilter.Page, domainFilter.PageSize = 0, 0
	return s.repo.FindAll(ctx, kind, domainFilter)
}
