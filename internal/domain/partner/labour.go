package partner

import (
	"strings"
	"time"

	"github.com/stonetrade/backend/internal/domain/shared"
)

// Labour is a worker on the yard payroll
type Labour struct {
	shared.BaseAggregateRoot
	Name   string `gorm:"type:varchar(200);not null;index"`
	Mobile string `gorm:"type:varchar(20);not null;index"`
}

// TableName returns the table name for GORM
func (Labour) TableName() string {
	return "labour"
}

// NewLabour creates a new labour entry. Both name and mobile are required.
func NewLabour(name, mobile string) (*Labour, error) {
	l := &Labour{BaseAggregateRoot: shared.NewBaseAggregateRoot()}
	if err := l.apply(name, mobile); err != nil {
		return nil, err
	}
	return l, nil
}

// Update replaces name and mobile
func (l *Labour) Update(name, mobile string) error {
	if err := l.apply(name, mobile); err != nil {
		return err
	}
	l.UpdatedAt = time.Now()
	l.IncrementVersion()
	return nil
}

func (l *Labour) apply(name, mobile string) error {
	name = strings.TrimSpace(name)
	if err := validateName("Labour", name); err != nil {
		return err
	}
	mobile = normalizeMobile(mobile)
	if mobile == "" {
		return shared.NewDomainError("INVALID_MOBILE", "Mobile cannot be empty")
	}
	if err := ValidateMobile(mobile); err != nil {
		return err
	}
	l.Name = name
	l.Mobile = mobile
	return nil
}

// ValidateMobile accepts 10 to 15 digits with an optional leading '+'.
func ValidateMobile(mobile string) error {
	digits := strings.TrimPrefix(mobile, "+")
	if len(digits) < 10 || len(digits) > 15 {
		return shared.NewDomainError("INVALID_MOBILE", "Mobile must have 10 to 15 digits")
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return shared.NewDomainError("INVALID_MOBILE", "Mobile can only contain digits and a leading '+'")
		}
	}
	return nil
}

// normalizeMobile drops spaces and dashes people type between digit groups.
func normalizeMobile(mobile string) string {
	return strings.NewReplacer(" ", "", "-", "").Replace(strings.TrimSpace(mobile))
}
