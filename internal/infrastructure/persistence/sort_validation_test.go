package persistence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSortOrder(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string returns DESC", "", "DESC"},
		{"ASC returns ASC", "ASC", "ASC"},
		{"lowercase asc returns ASC", "asc", "ASC"},
		{"desc returns DESC", "desc", "DESC"},
		{"padded asc returns ASC", "  asc  ", "ASC"},
		{"garbage returns DESC", "sideways", "DESC"},
		{"injection returns DESC", "ASC; DROP TABLE blocks;--", "DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidateSortOrder(tt.input))
		})
	}
}

func TestValidateSortField(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		allowed  map[string]bool
		fallback string
		expected string
	}{
		{"empty returns fallback", "", IntakeSortFields, "date", "date"},
		{"whitelisted field", "final_cost", IntakeSortFields, "date", "final_cost"},
		{"padded whitelisted field", " total_area ", BlockSortFields, "date", "total_area"},
		{"field of another table", "block_number", IntakeSortFields, "date", "date"},
		{"case sensitive", "DATE", StoneSortFields, "date", "date"},
		{"injection", "date; DROP TABLE stones;--", StoneSortFields, "date", "date"},
		{"quoted injection", "name'--", MineSortFields, "name", "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidateSortField(tt.input, tt.allowed, tt.fallback))
		})
	}
}

func TestSortFieldWhitelists(t *testing.T) {
	whitelists := map[string]map[string]bool{
		"mine":   MineSortFields,
		"vendor": VendorSortFields,
		"labour": LabourSortFields,
		"intake": IntakeSortFields,
		"block":  BlockSortFields,
		"stone":  StoneSortFields,
		"user":   UserSortFields,
	}

	for name, whitelist := range whitelists {
		t.Run(name, func(t *testing.T) {
			for _, field := range []string{"id", "created_at", "updated_at"} {
				assert.True(t, whitelist[field], "%s should allow %s", name, field)
			}
		})
	}
}
