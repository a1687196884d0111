package inventory

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/stonetrade/backend/internal/domain/costing"
	"github.com/stonetrade/backend/internal/domain/shared"
	"github.com/stonetrade/backend/internal/domain/stone"
)

// StoneService handles finished stone stock
type StoneService struct {
	repo   stone.StoneRepository
	calc   *costing.Calculator
	logger *zap.Logger
}

// NewStoneService creates a new StoneService
func NewStoneService(repo stone.StoneRepository, calc *costing.Calculator, logger *zap.Logger) *StoneService {
	if calc == nil {
		calc = costing.Default()
	}
	return &StoneService{repo: repo, calc: calc, logger: logger}
}

// Create stores a new stone entry
func (s *StoneService) Create(ctx context.Context, req StoneRequest) (*StoneResponse, error) {
	st, err := stone.NewStone(req.toInput())
	if err != nil {
		return nil, err
	}
	st.Recalculate(s.calc)

	if err := s.repo.Create(ctx, st); err != nil {
		return nil, err
	}

	s.logger.Info("Stone created", zap.String("id", st.ID.String()), zap.String("type", st.StoneType))
	response := ToStoneResponse(st)
	return &response, nil
}

// GetByID retrieves a stone entry
func (s *StoneService) GetByID(ctx context.Context, id uuid.UUID) (*StoneResponse, error) {
	st, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToStoneResponse(st)
	return &response, nil
}

// List retrieves stone entries, optionally by type
func (s *StoneService) List(ctx context.Context, filter ListFilter) ([]StoneResponse, int64, error) {
	domainFilter := s.filter(filter)

	stones, err := s.repo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToStoneResponses(stones), total, nil
}

// All returns every matching stone entry without pagination
func (s *StoneService) All(ctx context.Context, filter ListFilter) ([]stone.Stone, error) {
	domainFilter := s.filter(filter)
	domainFilter.Page, domainFilter.PageSize = 0, 0
	return s.repo.FindAll(ctx, domainFilter)
}

func (s *StoneService) filter(filter ListFilter) shared.Filter {
	domainFilter := filter.toDomain()
	delete(domainFilter.Filters, "vendor_id")
	delete(domainFilter.Filters, "mine_id")
	return domainFilter
}

// Update replaces every raw field of a stone entry
func (s *StoneService) Update(ctx context.Context, id uuid.UUID, req StoneRequest) (*StoneResponse, error) {
	st, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := checkVersion(req.Version, st.Version); err != nil {
		return nil, err
	}
	if err := st.Update(req.toInput()); err != nil {
		return nil, err
	}
	st.Recalculate(s.calc)

	if err := s.repo.Update(ctx, st); err != nil {
		return nil, err
	}

	s.logger.Info("Stone updated", zap.String("id", id.String()), zap.Int("version", st.Version))
	response := ToStoneResponse(st)
	return &response, nil
}

// Delete removes a stone entry
func (s *StoneService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Stone deleted", zap.String("id", id.String()))
	return nil
}

// Issue hands quantity out of stock and recomputes what is left
func (s *StoneService) Issue(ctx context.Context, id uuid.UUID, req IssueStoneRequest) (*StoneResponse, error) {
	st, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := st.Issue(req.Quantity.Decimal); err != nil {
		return nil, err
	}
	st.Recalculate(s.calc)

	if err := s.repo.Update(ctx, st); err != nil {
		return nil, err
	}

	if st.LeftQuantity.IsNegative() {
		s.logger.Warn("Stone issued beyond stock",
			zap.String("id", id.String()),
			zap.String("left_quantity", st.LeftQuantity.String()))
	} else {
		s.logger.Info("Stone issued",
			zap.String("id", id.String()),
			zap.String("quantity", req.Quantity.String()),
			zap.String("left_quantity", st.LeftQuantity.String()))
	}

	response := ToStoneResponse(st)
	return &response, nil
}
