package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stonetrade/backend/internal/domain/partner"
	"github.com/stonetrade/backend/internal/domain/shared"
)

// CostingRecorder receives business metrics from the inventory services
type CostingRecorder interface {
	RecordRemaining(ctx context.Context, collection string, amount decimal.Decimal)
	RecordSweep(ctx context.Context, d time.Duration, changed map[string]int, err error)
}

type nopRecorder struct{}

func (nopRecorder) RecordRemaining(context.Context, string, decimal.Decimal) {}
func (nopRecorder) RecordSweep(context.Context, time.Duration, map[string]int, error) {}

func recorderOrNop(r CostingRecorder) CostingRecorder {
	if r == nil {
		return nopRecorder{}
	}
	return r
}

// References checks that the vendor and mine a record points at exist
type References struct {
	vendors partner.VendorRepository
	mines   partner.MineRepository
}

// NewReferences creates a reference checker. Either repository may be nil to skip that check.
func NewReferences(vendors partner.VendorRepository, mines partner.MineRepository) *References {
	return &References{vendors: vendors, mines: mines}
}

func (r *References) checkVendor(ctx context.Context, id *uuid.UUID) error {
	if r == nil || r.vendors == nil || id == nil || *id == uuid.Nil {
		return nil
	}
	ok, err := r.vendors.Exists(ctx, *id)
	if err != nil {
		return err
	}
	if !ok {
		return shared.NewDomainError("VENDOR_NOT_FOUND", "Vendor "+id.String()+" does not exist")
	}
	return nil
}

func (r *References) checkMine(ctx context.Context, id *uuid.UUID) error {
	if r == nil || r.mines == nil || id == nil || *id == uuid.Nil {
		return nil
	}
	ok, err := r.mines.Exists(ctx, *id)
	if err != nil {
		return err
	}
	if !ok {
		return shared.NewDomainError("MINE_NOT_FOUND", "Mine "+id.String()+" does not exist")
	}
	return nil
}

// checkVersion rejects an update made against a stale copy of the record
func checkVersion(expected *int, actual int) error {
	if expected != nil && *expected != actual {
		return shared.ErrConcurrencyConflict
	}
	return nil
}
