package inventory

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/stonetrade/backend/internal/domain/block"
	"github.com/stonetrade/backend/internal/domain/costing"
)

const blocksCollection = "blocks"

// BlockService handles quarry block records
type BlockService struct {
	repo    block.BlockRepository
	refs    *References
	calc    *costing.Calculator
	metrics CostingRecorder
	logger  *zap.Logger
}

// NewBlockService creates a new BlockService
func NewBlockService(
	repo block.BlockRepository,
	refs *References,
	calc *costing.Calculator,
	metrics CostingRecorder,
	logger *zap.Logger,
) *BlockService {
	if calc == nil {
		calc = costing.Default()
	}
	return &BlockService{
		repo:    repo,
		refs:    refs,
		calc:    calc,
		metrics: recorderOrNop(metrics),
		logger:  logger,
	}
}

func (s *BlockService) checkRefs(ctx context.Context, req BlockRequest) error {
	if err := s.refs.checkVendor(ctx, req.VendorID); err != nil {
		return err
	}
	return s.refs.checkMine(ctx, req.MineID)
}

// Create stores a new block
func (s *BlockService) Create(ctx context.Context, req BlockRequest) (*BlockResponse, error) {
	if err := s.checkRefs(ctx, req); err != nil {
		return nil, err
	}
	b, err := block.NewBlock(req.toInput())
	if err != nil {
		return nil, err
	}
	b.Recalculate(s.calc)

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	s.logger.Info("Block created",
		zap.String("id", b.ID.String()),
		zap.String("block_number", b.BlockNumber),
		zap.String("final_total", b.FinalTotal.String()))
	s.metrics.RecordRemaining(ctx, blocksCollection, b.PartyRemainingPayment)

	response := ToBlockResponse(b)
	return &response, nil
}

// GetByID retrieves a block
func (s *BlockService) GetByID(ctx context.Context, id uuid.UUID) (*BlockResponse, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToBlockResponse(b)
	return &response, nil
}

// Find returns the stored block itself
func (s *BlockService) Find(ctx context.Context, id uuid.UUID) (*block.Block, error) {
	return s.repo.FindByID(ctx, id)
}

// List retrieves blocks with filtering and pagination
func (s *BlockService) List(ctx context.Context, filter ListFilter) ([]BlockResponse, int64, error) {
	domainFilter := filter.toDomain()
	delete(domainFilter.Filters, "type")

	blocks, err := s.repo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToBlockResponses(blocks), total, nil
}

// All returns every matching block without pagination
func (s *BlockService) All(ctx context.Context, filter ListFilter) ([]block.Block, error) {
	domainFilter := filter.toDomain()
	delete(domainFilter.Filters, "type")
	domainFilter.Page, domainFilter.PageSize = 0, 0
	return s.repo.FindAll(ctx, domainFilter)
}

// Update replaces every raw field of a block
func (s *BlockService) Update(ctx context.Context, id uuid.UUID, req BlockRequest) (*BlockResponse, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := checkVersion(req.Version, b.Version); err != nil {
		return nil, err
	}
	if err := s.checkRefs(ctx, req); err != nil {
		return nil, err
	}
	if err := b.Update(req.toInput()); err != nil {
		return nil, err
	}
	b.Recalculate(s.calc)

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	s.logger.Info("Block updated", zap.String("id", id.String()), zap.Int("version", b.Version))
	s.metrics.RecordRemaining(ctx, blocksCollection, b.PartyRemainingPayment)

	response := ToBlockResponse(b)
	return &response, nil
}

// Delete removes a block
func (s *BlockService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Block deleted", zap.String("id", id.String()))
	return nil
}

// AddPayment appends a received amount to a block
func (s *BlockService) AddPayment(ctx context.Context, id uuid.UUID, req AddPaymentRequest) (*BlockResponse, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := b.AddPayment(req.toEntry()); err != nil {
		return nil, err
	}
	b.Recalculate(s.calc)

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	s.logger.Info("Payment received",
		zap.String("collection", blocksCollection),
		zap.String("id", id.String()),
		zap.String("amount", req.Amount.String()),
		zap.String("remaining", b.PartyRemainingPayment.String()))
	s.metrics.RecordRemaining(ctx, blocksCollection, b.PartyRemainingPayment)

	response := ToBlockResponse(b)
	return &response, nil
}
