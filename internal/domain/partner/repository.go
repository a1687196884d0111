package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stonetrade/backend/internal/domain/shared"
)

// MineRepository defines the interface for mine persistence
type MineRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Mine, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Mine, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Create(ctx context.Context, mine *Mine) error
	// Update saves the mine if its stored version is one behind, else ErrConcurrencyConflict
	Update(ctx context.Context, mine *Mine) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// VendorRepository defines the interface for vendor persistence
type VendorRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Vendor, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Vendor, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Create(ctx context.Context, vendor *Vendor) error
	Update(ctx context.Context, vendor *Vendor) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// LabourRepository defines the interface for labour persistence
type LabourRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Labour, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Labour, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Create(ctx context.Context, labour *Labour) error
	Update(ctx context.Context, labour *Labour) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// VendorBalance is the outstanding amount owed to a vendor across all of its records
type VendorBalance struct {
	VendorID    uuid.UUID       `json:"vendor_id"`
	IntakeDue   decimal.Decimal `json:"intake_due"`
	BlockDue    decimal.Decimal `json:"block_due"`
	TotalDue    decimal.Decimal `json:"total_due"`
	RecordCount int64           `json:"record_count"`
}

// BalanceReader sums party_remaining_payment for a vendor
type BalanceReader interface {
	VendorBalance(ctx context.Context, vendorID uuid.UUID) (*VendorBalance, error)
}
