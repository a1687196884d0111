package partner

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stonetrade/backend/internal/domain/shared"
)

// Vendor is a party that stone, blocks and todi are bought from
type Vendor struct {
	shared.BaseAggregateRoot
	Name    string                   `gorm:"type:varchar(200);not null;index"`
	Phones  shared.JSONSlice[string] `gorm:"type:jsonb;not null;default:'[]'"`
	Address string                   `gorm:"type:text"`
	MineID  *uuid.UUID               `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (Vendor) TableName() string {
	return "vendors"
}

// NewVendor creates a new vendor. Phone numbers are validated like labour mobiles.
func NewVendor(name string, phones []string, address string, mineID *uuid.UUID) (*Vendor, error) {
	v := &Vendor{BaseAggregateRoot: shared.NewBaseAggregateRoot()}
	if err := v.apply(name, phones, address, mineID); err != nil {
		return nil, err
	}
	return v, nil
}

// Update replaces the vendor's details
func (v *Vendor) Update(name string, phones []string, address string, mineID *uuid.UUID) error {
	if err := v.apply(name, phones, address, mineID); err != nil {
		return err
	}
	v.UpdatedAt = time.Now()
	v.IncrementVersion()
	return nil
}

func (v *Vendor) apply(name string, phones []string, address string, mineID *uuid.UUID) error {
	name = strings.TrimSpace(name)
	if err := validateName("Vendor", name); err != nil {
		return err
	}
	cleaned := make(shared.JSONSlice[string], 0, len(phones))
	for _, p := range phones {
		p = normalizeMobile(p)
		if p == "" {
			continue
		}
		if err := ValidateMobile(p); err != nil {
			return err
		}
		cleaned = append(cleaned, p)
	}
	if mineID != nil && *mineID == uuid.Nil {
		mineID = nil
	}
	v.Name = name
	v.Phones = cleaned
	v.Address = strings.TrimSpace(address)
	v.MineID = mineID
	return nil
}
