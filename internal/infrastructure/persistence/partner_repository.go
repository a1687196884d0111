package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stonetrade/backend/internal/domain/block"
	"github.com/stonetrade/backend/internal/domain/intake"
	"github.com/stonetrade/backend/internal/domain/partner"
	"github.com/stonetrade/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormMineRepository implements partner.MineRepository using GORM
type GormMineRepository struct {
	store gormStore[partner.Mine]
}

// NewGormMineRepository creates a new GormMineRepository
func NewGormMineRepository(db *gorm.DB) *GormMineRepository {
	return &GormMineRepository{store: gormStore[partner.Mine]{
		db:            db,
		sortFields:    MineSortFields,
		defaultSort:   "name",
		searchColumns: []string{"name", "address", "contact"},
	}}
}

func (r *GormMineRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Mine, error) {
	return r.store.findByID(ctx, id)
}

func (r *GormMineRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Mine, error) {
	return r.store.findAll(ctx, filter)
}

func (r *GormMineRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	return r.store.count(ctx, filter)
}

func (r *GormMineRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.store.exists(ctx, id)
}

func (r *GormMineRepository) Create(ctx context.Context, mine *partner.Mine) error {
	return r.store.create(ctx, mine)
}

func (r *GormMineRepository) Update(ctx context.Context, mine *partner.Mine) error {
	return r.store.updateWithLock(ctx, mine, mine.ID, mine.Version)
}

func (r *GormMineRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.store.delete(ctx, id)
}

// GormVendorRepository implements partner.VendorRepository using GORM
type GormVendorRepository struct {
	store gormStore[partner.Vendor]
}

// NewGormVendorRepository creates a new GormVendorRepository
func NewGormVendorRepository(db *gorm.DB) *GormVendorRepository {
	return &GormVendorRepository{store: gormStore[partner.Vendor]{
		db:            db,
		sortFields:    VendorSortFields,
		defaultSort:   "name",
		searchColumns: []string{"name", "address"},
		filterColumns: columnSet("mine_id"),
	}}
}

func (r *GormVendorRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Vendor, error) {
	return r.store.findByID(ctx, id)
}

func (r *GormVendorRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Vendor, error) {
	return r.store.findAll(ctx, filter)
}

func (r *GormVendorRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	return r.store.count(ctx, filter)
}

func (r *GormVendorRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.store.exists(ctx, id)
}

func (r *GormVendorRepository) Create(ctx context.Context, vendor *partner.Vendor) error {
	return r.store.create(ctx, vendor)
}

func (r *GormVendorRepository) Update(ctx context.Context, vendor *partner.Vendor) error {
	return r.store.updateWithLock(ctx, vendor, vendor.ID, vendor.Version)
}

func (r *GormVendorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.store.delete(ctx, id)
}

// GormLabourRepository implements partner.LabourRepository using GORM
type GormLabourRepository struct {
	store gormStore[partner.Labour]
}

// NewGormLabourRepository creates a new GormLabourRepository
func NewGormLabourRepository(db *gorm.DB) *GormLabourRepository {
	return &GormLabourRepository{store: gormStore[partner.Labour]{
		db:            db,
		sortFields:    LabourSortFields,
		defaultSort:   "name",
		searchColumns: []string{"name", "mobile"},
	}}
}

func (r *GormLabourRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Labour, error) {
	return r.store.findByID(ctx, id)
}

func (r *GormLabourRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Labour, error) {
	return r.store.findAll(ctx, filter)
}

func (r *GormLabourRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	return r.store.count(ctx, filter)
}

func (r *GormLabourRepository) Create(ctx context.Context, labour *partner.Labour) error {
	return r.store.create(ctx, labour)
}

func (r *GormLabourRepository) Update(ctx context.Context, labour *partner.Labour) error {
	return r.store.updateWithLock(ctx, labour, labour.ID, labour.Version)
}

func (r *GormLabourRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.store.delete(ctx, id)
}

// GormBalanceReader implements partner.BalanceReader over intake records and blocks
type GormBalanceReader struct {
	db *gorm.DB
}

// NewGormBalanceReader creates a new GormBalanceReader
func NewGormBalanceReader(db *gorm.DB) *GormBalanceReader {
	return &GormBalanceReader{db: db}
}

type dueRow struct {
	Due   decimal.Decimal
	Count int64
}

func (r *GormBalanceReader) VendorBalance(ctx context.Context, vendorID uuid.UUID) (*partner.VendorBalance, error) {
	intakeDue, err := r.sumDue(ctx, &intake.Record{}, vendorID)
	if err != nil {
		return nil, err
	}
	blockDue, err := r.sumDue(ctx, &block.Block{}, vendorID)
	if err != nil {
		return nil, err
	}
	return &partner.VendorBalance{
		VendorID:    vendorID,
		IntakeDue:   intakeDue.Due,
		BlockDue:    blockDue.Due,
		TotalDue:    intakeDue.Due.Add(blockDue.Due),
		RecordCount: intakeDue.Count + blockDue.Count,
	}, nil
}

func (r *GormBalanceReader) sumDue(ctx context.Context, model any, vendorID uuid.UUID) (dueRow, error) {
	var row dueRow
	err := r.db.WithContext(ctx).
		Model(model).
		Select("COALESCE(SUM(party_remaining_payment), 0) AS due, COUNT(*) AS count").
		Where("vendor_id = ?", vendorID).
		Scan(&row).Error
	return row, err
}
