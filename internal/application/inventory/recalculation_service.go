package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/stonetrade/backend/internal/domain/block"
	"github.com/stonetrade/backend/internal/domain/costing"
	"github.com/stonetrade/backend/internal/domain/intake"
	"github.com/stonetrade/backend/internal/domain/stone"
)

// SweepResult reports how many stored records a recalculation sweep touched
type SweepResult struct {
	Scanned  map[string]int `json:"scanned"`
	Changed  map[string]int `json:"changed"`
	Duration time.Duration  `json:"duration_ns"`
}

// RecalculationService re-walks every stored record with the current calculator
// and saves the ones whose derived fields drifted, e.g. after a rounding or variant change.
type RecalculationService struct {
	records   intake.RecordRepository
	blocks    block.BlockRepository
	stones    stone.StoneRepository
	calc      *costing.Calculator
	metrics   CostingRecorder
	batchSize int
	logger    *zap.Logger
}

// NewRecalculationService creates a new RecalculationService
func NewRecalculationService(
	records intake.RecordRepository,
	blocks block.BlockRepository,
	stones stone.StoneRepository,
	calc *costing.Calculator,
	metrics CostingRecorder,
	batchSize int,
	logger *zap.Logger,
) *RecalculationService {
	if calc == nil {
		calc = costing.Default()
	}
	if batchSize <= 0 {
		batchSize = 200
	}
	return &RecalculationService{
		records:   records,
		blocks:    blocks,
		stones:    stones,
		calc:      calc,
		metrics:   recorderOrNop(metrics),
		batchSize: batchSize,
		logger:    logger,
	}
}

// RecalculateAll runs the sweep over intake records, blocks and stones.
// It stops at the first failure; records saved before that stay saved.
func (s *RecalculationService) RecalculateAll(ctx context.Context) (*SweepResult, error) {
	start := time.Now()
	result := &SweepResult{Scanned: map[string]int{}, Changed: map[string]int{}}

	err := s.sweepRecords(ctx, result)
	if err == nil {
		err = s.sweepBlocks(ctx, result)
	}
	if err == nil {
		err = s.sweepStones(ctx, result)
	}
	result.Duration = time.Since(start)
	s.metrics.RecordSweep(ctx, result.Duration, result.Changed, err)

	if err != nil {
		s.logger.Error("Recalculation sweep failed", zap.Error(err), zap.Any("changed", result.Changed))
		return result, err
	}
	s.logger.Info("Recalculation sweep completed",
		zap.Any("scanned", result.Scanned),
		zap.Any("changed", result.Changed),
		zap.Duration("duration", result.Duration))
	return result, nil
}

func (s *RecalculationService) sweepRecords(ctx context.Context, result *SweepResult) error {
	return s.records.Each(ctx, s.batchSize, func(r *intake.Record) error {
		collection := r.Kind.Slug()
		result.Scanned[collection]++

		before := recordDerived(r)
		r.Recalculate(s.calc)
		if equalDerived(before, recordDerived(r)) {
			return nil
		}
		r.IncrementVersion()
		if err := s.records.Update(ctx, r); err != nil {
			return fmt.Errorf("recalculate %s %s: %w", r.Kind, r.ID, err)
		}
		result.Changed[collection]++
		return nil
	})
}

func (s *RecalculationService) sweepBlocks(ctx context.Context, result *SweepResult) error {
	return s.blocks.Each(ctx, s.batchSize, func(b *block.Block) error {
		result.Scanned[blocksCollection]++

		before := blockDerived(b)
		b.Recalculate(s.calc)
		if equalDerived(before, blockDerived(b)) {
			return nil
		}
		b.IncrementVersion()
		if err := s.blocks.Update(ctx, b); err != nil {
			return fmt.Errorf("recalculate block %s: %w", b.ID, err)
		}
		result.Changed[blocksCollection]++
		return nil
	})
}

func (s *RecalculationService) sweepStones(ctx context.Context, result *SweepResult) error {
	const collection = "stones"
	return s.stones.Each(ctx, s.batchSize, func(st *stone.Stone) error {
		result.Scanned[collection]++

		before := []decimal.Decimal{st.LeftQuantity, st.TotalAmount}
		st.Recalculate(s.calc)
		if equalDerived(before, []decimal.Decimal{st.LeftQuantity, st.TotalAmount}) {
			return nil
		}
		st.IncrementVersion()
		if err := s.stones.Update(ctx, st); err != nil {
			return fmt.Errorf("recalculate stone %s: %w", st.ID, err)
		}
		result.Changed[collection]++
		return nil
	})
}

// recordDerived lists every derived value of a record, measures included, in walk order
func recordDerived(r *intake.Record) []decimal.Decimal {
	vals := []decimal.Decimal{r.TotalArea, r.TotalCost, r.TotalBlockCost, r.EstimateCost, r.FinalCost, r.PartyRemainingPayment}
	for _, g := range r.Groups {
		vals = append(vals, g.TotalBlockArea, g.TotalBlockCost)
		for _, b := range g.Blocks {
			for _, m := range b.Measures {
				vals = append(vals, m.Area, m.Cost)
			}
		}
	}
	return vals
}

func blockDerived(b *block.Block) []decimal.Decimal {
	return []decimal.Decimal{
		b.FrontVolume, b.BackVolume, b.TotalArea, b.TotalCost,
		b.BlockAmount, b.FinalTotal, b.PartyRemainingPayment,
	}
}

// equalDerived compares numerically, so 69.4 and 69.4000 read back from the database are equal
func equalDerived(a, b []decimal.Decimal) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
