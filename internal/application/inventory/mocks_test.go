package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/stonetrade/backend/internal/domain/block"
	"github.com/stonetrade/backend/internal/domain/intake"
	"github.com/stonetrade/backend/internal/domain/partner"
	"github.com/stonetrade/backend/internal/domain/shared"
	"github.com/stonetrade/backend/internal/domain/stone"
)

// =============================================================================
// Mock Repositories
// =============================================================================

// MockRecordRepository is a mock implementation of intake.RecordRepository
type MockRecordRepository struct {
	mock.Mock
	stored []*intake.Record // walked by Each
}

func (m *MockRecordRepository) FindByID(ctx context.Context, kind intake.Kind, id uuid.UUID) (*intake.Record, error) {
	args := m.Called(ctx, kind, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*intake.Record), args.Error(1)
}

func (m *MockRecordRepository) FindAll(ctx context.Context, kind intake.Kind, filter shared.Filter) ([]intake.Record, error) {
	args := m.Called(ctx, kind, filter)
	return args.Get(0).([]intake.Record), args.Error(1)
}

func (m *MockRecordRepository) Count(ctx context.Context, kind intake.Kind, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, kind, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRecordRepository) Create(ctx context.Context, record *intake.Record) error {
	return m.Called(ctx, record).Error(0)
}

func (m *MockRecordRepository) Update(ctx context.Context, record *intake.Record) error {
	return m.Called(ctx, record).Error(0)
}

func (m *MockRecordRepository) Delete(ctx context.Context, kind intake.Kind, id uuid.UUID) error {
	return m.Called(ctx, kind, id).Error(0)
}

func (m *MockRecordRepository) Each(_ context.Context, _ int, fn func(*intake.Record) error) error {
	for _, r := range m.stored {
		if err := fn(r); err != nil {
			return err
		}
	}
	return nil
}

// MockBlockRepository is a mock implementation of block.BlockRepository
type MockBlockRepository struct {
	mock.Mock
	stored []*block.Block
}

func (m *MockBlockRepository) FindByID(ctx context.Context, id uuid.UUID) (*block.Block, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*block.Block), args.Error(1)
}

func (m *MockBlockRepository) FindAll(ctx context.Context, filter shared.Filter) ([]block.Block, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]block.Block), args.Error(1)
}

func (m *MockBlockRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBlockRepository) Create(ctx context.Context, b *block.Block) error {
	return m.Called(ctx, b).Error(0)
}

func (m *MockBlockRepository) Update(ctx context.Context, b *block.Block) error {
	return m.Called(ctx, b).Error(0)
}

func (m *MockBlockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockBlockRepository) Each(_ context.Context, _ int, fn func(*block.Block) error) error {
	for _, b := range m.stored {
		if err := fn(b); err != nil {
			return err
		}
	}
	return nil
}

// MockStoneRepository is a mock implementation of stone.StoneRepository
type MockStoneRepository struct {
	mock.Mock
	stored []*stone.Stone
}

func (m *MockStoneRepository) FindByID(ctx context.Context, id uuid.UUID) (*stone.Stone, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stone.Stone), args.Error(1)
}

func (m *MockStoneRepository) FindAll(ctx context.Context, filter shared.Filter) ([]stone.Stone, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]stone.Stone), args.Error(1)
}

func (m *MockStoneRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStoneRepository) Create(ctx context.Context, s *stone.Stone) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockStoneRepository) Update(ctx context.Context, s *stone.Stone) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockStoneRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockStoneRepository) Each(_ context.Context, _ int, fn func(*stone.Stone) error) error {
	for _, s := range m.stored {
		if err := fn(s); err != nil {
			return err
		}
	}
	return nil
}

// MockVendorRepository only answers Exists; the other methods are unused here
type MockVendorRepository struct {
	mock.Mock
	partner.VendorRepository
}

func (m *MockVendorRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockMineRepository only answers Exists
type MockMineRepository struct {
	mock.Mock
	partner.MineRepository
}

func (m *MockMineRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// recordingMetrics captures what the services report
type recordingMetrics struct {
	remaining map[string]decimal.Decimal
	sweeps    []map[string]int
	sweepErr  error
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{remaining: map[string]decimal.Decimal{}}
}

func (r *recordingMetrics) RecordRemaining(_ context.Context, collection string, amount decimal.Decimal) {
	r.remaining[collection] = amount
}

func (r *recordingMetrics) RecordSweep(_ context.Context, _ time.Duration, changed map[string]int, err error) {
	r.sweeps = append(r.sweeps, changed)
	r.sweepErr = err
}
