package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/stonetrade/backend/internal/domain/partner"
	"github.com/stonetrade/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// VendorService handles vendor-related business operations
type VendorService struct {
	vendorRepo partner.VendorRepository
	mineRepo   partner.MineRepository
	balances   partner.BalanceReader
	logger     *zap.Logger
}

// NewVendorService creates a new VendorService
func NewVendorService(
	vendorRepo partner.VendorRepository,
	mineRepo partner.MineRepository,
	balances partner.BalanceReader,
	logger *zap.Logger,
) *VendorService {
	return &VendorService{
		vendorRepo: vendorRepo,
		mineRepo:   mineRepo,
		balances:   balances,
		logger:     logger,
	}
}

// Create creates a new vendor. The mine, when given, must exist.
func (s *VendorService) Create(ctx context.Context, req VendorRequest) (*VendorResponse, error) {
	if err := s.checkMine(ctx, req.MineID); err != nil {
		return nil, err
	}
	vendor, err := partner.NewVendor(req.Name, req.Phones, req.Address, req.MineID)
	if err != nil {
		return nil, err
	}
	if err := s.vendorRepo.Create(ctx, vendor); err != nil {
		return nil, err
	}

	s.logger.Info("Vendor created", zap.String("id", vendor.ID.String()), zap.String("name", vendor.Name))
	response := ToVendorResponse(vendor)
	return &response, nil
}

// GetByID retrieves a vendor by ID
func (s *VendorService) GetByID(ctx context.Context, id uuid.UUID) (*VendorResponse, error) {
	vendor, err := s.vendorRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToVendorResponse(vendor)
	return &response, nil
}

// Find returns the vendor entity, for statements that print the party name
func (s *VendorService) Find(ctx context.Context, id uuid.UUID) (*partner.Vendor, error) {
	return s.vendorRepo.FindByID(ctx, id)
}

// List retrieves vendors, optionally restricted to one mine
func (s *VendorService) List(ctx context.Context, filter ListFilter) ([]VendorResponse, int64, error) {
	domainFilter := filter.toDomain()

	vendors, err := s.vendorRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.vendorRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToVendorResponses(vendors), total, nil
}

// All returns every matching vendor without pagination
func (s *VendorService) All(ctx context.Context, filter ListFilter) ([]partner.Vendor, error) {
	domainFilter := filter.toDomain()
	domainFilter.Page, domainFilter.PageSize = 0, 0
	return s.vendorRepo.FindAll(ctx, domainFilter)
}

// Update replaces a vendor's details
func (s *VendorService) Update(ctx context.Context, id uuid.UUID, req VendorRequest) (*VendorResponse, error) {
	vendor, err := s.vendorRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := checkVersion(req.Version, vendor.Version); err != nil {
		return nil, err
	}
	if err := s.checkMine(ctx, req.MineID); err != nil {
		return nil, err
	}
	if err := vendor.Update(req.Name, req.Phones, req.Address, req.MineID); err != nil {
		return nil, err
	}
	if err := s.vendorRepo.Update(ctx, vendor); err != nil {
		return nil, err
	}

	response := ToVendorResponse(vendor)
	return &response, nil
}

// Delete removes a vendor. Records that referenced it lose their vendor_id.
func (s *VendorService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.vendorRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Vendor deleted", zap.String("id", id.String()))
	return nil
}

// Balance sums what is still owed to the vendor across its intake records and blocks
func (s *VendorService) Balance(ctx context.Context, id uuid.UUID) (*partner.VendorBalance, error) {
	exists, err := s.vendorRepo.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, shared.ErrNotFound
	}
	return s.balances.VendorBalance(ctx, id)
}

func (s *VendorService) checkMine(ctx context.Context, mineID *uuid.UUID) error {
	if mineID == nil || *mineID == uuid.Nil {
		return nil
	}
	exists, err := s.mineRepo.Exists(ctx, *mineID)
	if err != nil {
		return err
	}
	if !exists {
		return shared.NewDomainError("MINE_NOT_FOUND", "Mine "+mineID.String()+" does not exist")
	}
	return nil
}
