package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/stonetrade/backend/internal/domain/partner"
	"go.uber.org/zap"
)

// MineService handles mine-related business operations
type MineService struct {
	mineRepo partner.MineRepository
	logger   *zap.Logger
}

// NewMineService creates a new MineService
func NewMineService(mineRepo partner.MineRepository, logger *zap.Logger) *MineService {
	return &MineService{mineRepo: mineRepo, logger: logger}
}

// Create creates a new mine
func (s *MineService) Create(ctx context.Context, req MineRequest) (*MineResponse, error) {
	mine, err := partner.NewMine(req.Name, req.Address, req.Contact)
	if err != nil {
		return nil, err
	}
	if err := s.mineRepo.Create(ctx, mine); err != nil {
		return nil, err
	}

	s.logger.Info("Mine created", zap.String("id", mine.ID.String()), zap.String("name", mine.Name))
	response := ToMineResponse(mine)
	return &response, nil
}

// GetByID retrieves a mine by ID
func (s *MineService) GetByID(ctx context.Context, id uuid.UUID) (*MineResponse, error) {
	mine, err := s.mineRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToMineResponse(mine)
	return &response, nil
}

// List retrieves mines, searching by name, address and contact
func (s *MineService) List(ctx context.Context, filter ListFilter) ([]MineResponse, int64, error) {
	domainFilter := filter.toDomain()
	delete(domainFilter.Filters, "mine_id")

	mines, err := s.mineRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.mineRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToMineResponses(mines), total, nil
}

// All returns every matching mine without pagination
func (s *MineService) All(ctx context.Context, filter ListFilter) ([]partner.Mine, error) {
	domainFilter := filter.toDomain()
	delete(domainFilter.Filters, "mine_id")
	domainFilter.Page, domainFilter.PageSize = 0, 0
	return s.mineRepo.FindAll(ctx, domainFilter)
}

// Update replaces a mine's details
func (s *MineService) Update(ctx context.Context, id uuid.UUID, req MineRequest) (*MineResponse, error) {
	mine, err := s.mineRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := checkVersion(req.Version, mine.Version); err != nil {
		return nil, err
	}
	if err := mine.Update(req.Name, req.Address, req.Contact); err != nil {
		return nil, err
	}
	if err := s.mineRepo.Update(ctx, mine); err != nil {
		return nil, err
	}

	response := ToMineResponse(mine)
	return &response, nil
}

// Delete removes a mine. Vendors and blocks that referenced it lose their mine_id.
func (s *MineService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.mineRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Mine deleted", zap.String("id", id.String()))
	return nil
}
