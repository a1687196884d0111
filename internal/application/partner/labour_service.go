package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/stonetrade/backend/internal/domain/partner"
	"github.com/stonetrade/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// LabourService handles the yard labour list
type LabourService struct {
	labourRepo partner.LabourRepository
	logger     *zap.Logger
}

// NewLabourService creates a new LabourService
func NewLabourService(labourRepo partner.LabourRepository, logger *zap.Logger) *LabourService {
	return &LabourService{labourRepo: labourRepo, logger: logger}
}

// Create creates a new labour entry
func (s *LabourService) Create(ctx context.Context, req LabourRequest) (*LabourResponse, error) {
	labour, err := partner.NewLabour(req.Name, req.Mobile)
	if err != nil {
		return nil, err
	}
	if err := s.labourRepo.Create(ctx, labour); err != nil {
		return nil, err
	}

	s.logger.Info("Labour created", zap.String("id", labour.ID.String()))
	response := ToLabourResponse(labour)
	return &response, nil
}

// GetByID retrieves a labour entry by ID
func (s *LabourService) GetByID(ctx context.Context, id uuid.UUID) (*LabourResponse, error) {
	labour, err := s.labourRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToLabourResponse(labour)
	return &response, nil
}

// List retrieves labour entries, searching by name and mobile
func (s *LabourService) List(ctx context.Context, filter ListFilter) ([]LabourResponse, int64, error) {
	domainFilter := s.filter(filter)

	labour, err := s.labourRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.labourRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToLabourResponses(labour), total, nil
}

// All returns every matching labour entry without pagination
func (s *LabourService) All(ctx context.Context, filter ListFilter) ([]partner.Labour, error) {
	domainFilter := s.filter(filter)
	domainFilter.Page, domainFilter.PageSize = 0, 0
	return s.labourRepo.FindAll(ctx, domainFilter)
}

// Update replaces a labour entry's name and mobile
func (s *LabourService) Update(ctx context.Context, id uuid.UUID, req LabourRequest) (*LabourResponse, error) {
	labour, err := s.labourRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := checkVersion(req.Version, labour.Version); err != nil {
		return nil, err
	}
	if err := labour.Update(req.Name, req.Mobile); err != nil {
		return nil, err
	}
	if err := s.labourRepo.Update(ctx, labour); err != nil {
		return nil, err
	}

	response := ToLabourResponse(labour)
	return &response, nil
}

// Delete removes a labour entry
func (s *LabourService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.labourRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Labour deleted", zap.String("id", id.String()))
	return nil
}

func (s *LabourService) filter(filter ListFilter) shared.Filter {
	domainFilter := filter.toDomain()
	delete(domainFilter.Filters, "mine_id")
	return domainFilter
}
