package partner

import (
	"strings"
	"time"

	"github.com/stonetrade/backend/internal/domain/shared"
)

// Mine is a quarry that blocks and vendors are sourced from
type Mine struct {
	shared.BaseAggregateRoot
	Name    string `gorm:"type:varchar(200);not null;index"`
	Address string `gorm:"type:text"`
	Contact string `gorm:"type:varchar(100)"`
}

// TableName returns the table name for GORM
func (Mine) TableName() string {
	return "mines"
}

// NewMine creates a new mine
func NewMine(name, address, contact string) (*Mine, error) {
	name = strings.TrimSpace(name)
	if err := validateName("Mine", name); err != nil {
		return nil, err
	}
	return &Mine{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Address:           strings.TrimSpace(address),
		Contact:           strings.TrimSpace(contact),
	}, nil
}

// Update replaces the mine's details
func (m *Mine) Update(name, address, contact string) error {
	name = strings.TrimSpace(name)
	if err := validateName("Mine", name); err != nil {
		return err
	}
	m.Name = name
	m.Address = strings.TrimSpace(address)
	m.Contact = strings.TrimSpace(contact)
	m.UpdatedAt = time.Now()
	m.IncrementVersion()
	return nil
}

func validateName(kind, name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", kind+" name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", kind+" name cannot exceed 200 characters")
	}
	return nil
}
