package persistence

import (
	"strings"
)

// ValidateSortOrder normalizes the sort order to ASC or DESC, defaulting to DESC.
func ValidateSortOrder(orderDir string) string {
	if strings.ToUpper(strings.TrimSpace(orderDir)) == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField returns sortField when it is whitelisted, otherwise defaultField.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" || !allowedFields[trimmed] {
		return defaultField
	}
	return trimmed
}

func withCommonSortFields(fields ...string) map[string]bool {
	m := map[string]bool{
		"id":         true,
		"created_at": true,
		"updated_at": true,
	}
	for _, f := range fields {
		m[f] = true
	}
	return m
}

var (
	MineSortFields   = withCommonSortFields("name")
	VendorSortFields = withCommonSortFields("name")
	LabourSortFields = withCommonSortFields("name", "mobile")
	IntakeSortFields = withCommonSortFields("date", "type", "munim", "total_area", "final_cost", "party_remaining_payment")
	BlockSortFields  = withCommonSortFields("date", "block_number", "total_area", "final_total", "party_remaining_payment")
	StoneSortFields  = withCommonSortFields("date", "type", "total_quantity", "left_quantity", "total_amount")
	UserSortFields   = withCommonSortFields("username", "role", "last_login_at")
)
