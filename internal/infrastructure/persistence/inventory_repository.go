package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/stonetrade/backend/internal/domain/block"
	"github.com/stonetrade/backend/internal/domain/intake"
	"github.com/stonetrade/backend/internal/domain/shared"
	"github.com/stonetrade/backend/internal/domain/stone"
	"gorm.io/gorm"
)

// GormRecordRepository implements intake.RecordRepository; every kind shares one table.
type GormRecordRepository struct {
	store gormStore[intake.Record]
}

// NewGormRecordRepository creates a new GormRecordRepository
func NewGormRecordRepository(db *gorm.DB) *GormRecordRepository {
	return &GormRecordRepository{store: gormStore[intake.Record]{
		db:            db,
		sortFields:    IntakeSortFields,
		defaultSort:   "date",
		searchColumns: []string{"munim", "type"},
		filterColumns: columnSet("vendor_id", "type"),
		dateColumn:    "date",
	}}
}

func ofKind(kind intake.Kind) scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("kind = ?", kind)
	}
}

func (r *GormRecordRepository) FindByID(ctx context.Context, kind intake.Kind, id uuid.UUID) (*intake.Record, error) {
	return r.store.findByID(ctx, id, ofKind(kind))
}

func (r *GormRecordRepository) FindAll(ctx context.Context, kind intake.Kind, filter shared.Filter) ([]intake.Record, error) {
	return r.store.findAll(ctx, filter, ofKind(kind))
}

func (r *GormRecordRepository) Count(ctx context.Context, kind intake.Kind, filter shared.Filter) (int64, error) {
	return r.store.count(ctx, filter, ofKind(kind))
}

func (r *GormRecordRepository) Create(ctx context.Context, record *intake.Record) error {
	return r.store.create(ctx, record)
}

func (r *GormRecordRepository) Update(ctx context.Context, record *intake.Record) error {
	return r.store.updateWithLock(ctx, record, record.ID, record.Version)
}

func (r *GormRecordRepository) Delete(ctx context.Context, kind intake.Kind, id uuid.UUID) error {
	return r.store.delete(ctx, id, ofKind(kind))
}

func (r *GormRecordRepository) Each(ctx context.Context, batchSize int, fn func(*intake.Record) error) error {
	return r.store.each(ctx, batchSize, fn)
}

// GormBlockRepository implements block.BlockRepository using GORM
type GormBlockRepository struct {
	store gormStore[block.Block]
}

// NewGormBlockRepository creates a new GormBlockRepository
func NewGormBlockRepository(db *gorm.DB) *GormBlockRepository {
	return &GormBlockRepository{store: gormStore[block.Block]{
		db:            db,
		sortFields:    BlockSortFields,
		defaultSort:   "date",
		searchColumns: []string{"block_number", "munim"},
		filterColumns: columnSet("vendor_id", "mine_id"),
		dateColumn:    "date",
	}}
}

func (r *GormBlockRepository) FindByID(ctx context.Context, id uuid.UUID) (*block.Block, error) {
	return r.store.findByID(ctx, id)
}

func (r *GormBlockRepository) FindAll(ctx context.Context, filter shared.Filter) ([]block.Block, error) {
	return r.store.findAll(ctx, filter)
}

func (r *GormBlockRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	return r.store.count(ctx, filter)
}

func (r *GormBlockRepository) Create(ctx context.Context, b *block.Block) error {
	return r.store.create(ctx, b)
}

func (r *GormBlockRepository) Update(ctx context.Context, b *block.Block) error {
	return r.store.updateWithLock(ctx, b, b.ID, b.Version)
}

func (r *GormBlockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.store.delete(ctx, id)
}

func (r *GormBlockRepository) Each(ctx context.Context, batchSize int, fn func(*block.Block) error) error {
	return r.store.each(ctx, batchSize, fn)
}

// GormStoneRepository implements stone.StoneRepository using GORM
type GormStoneRepository struct {
	store gormStore[stone.Stone]
}

// NewGormStoneRepository creates a new GormStoneRepository
func NewGormStoneRepository(db *gorm.DB) *GormStoneRepository {
	return &GormStoneRepository{store: gormStore[stone.Stone]{
		db:            db,
		sortFields:    StoneSortFields,
		defaultSort:   "date",
		searchColumns: []string{"type"},
		filterColumns: columnSet("type"),
		dateColumn:    "date",
	}}
}

func (r *GormStoneRepository) FindByID(ctx context.Context, id uuid.UUID) (*stone.Stone, error) {
	return r.store.findByID(ctx, id)
}

func (r *GormStoneRepository) FindAll(ctx context.Context, filter shared.Filter) ([]stone.Stone, error) {
	return r.store.findAll(ctx, filter)
}

func (r *GormStoneRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	return r.store.count(ctx, filter)
}

func (r *GormStoneRepository) Create(ctx context.Context, s *stone.Stone) error {
	return r.store.create(ctx, s)
}

func (r *GormStoneRepository) Update(ctx context.Context, s *stone.Stone) error {
	return r.store.updateWithLock(ctx, s, s.ID, s.Version)
}

func (r *GormStoneRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.store.delete(ctx, id)
}

func (r *GormStoneRepository) Each(ctx context.Context, batchSize int, fn func(*stone.Stone) error) error {
	return r.store.each(ctx, batchSize, fn)
}
