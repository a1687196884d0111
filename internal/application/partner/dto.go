package partner

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stonetrade/backend/internal/domain/partner"
	"github.com/stonetrade/backend/internal/domain/shared"
)

// ListFilter represents the query options for partner lists
type ListFilter struct {
	Search   string `form:"search"`
	MineID   string `form:"mine_id" binding:"omitempty,uuid"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=1000"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

func (f ListFilter) toDomain() shared.Filter {
	filter := shared.DefaultFilter()
	if f.Page > 0 {
		filter.Page = f.Page
	}
	if f.PageSize > 0 {
		filter.PageSize = f.PageSize
	}
	if f.OrderBy != "" {
		filter.OrderBy = f.OrderBy
	} else {
		filter.OrderBy = "name"
		filter.OrderDir = "asc"
	}
	if f.OrderDir != "" {
		filter.OrderDir = f.OrderDir
	}
	filter.Search = strings.TrimSpace(f.Search)
	if id, err := uuid.Parse(f.MineID); err == nil {
		filter.Filters["mine_id"] = id
	}
	return filter
}

// =============================================================================
// Mines
// =============================================================================

// MineRequest represents a request to create or update a mine
type MineRequest struct {
	Name    string `json:"name" binding:"required,max=200"`
	Address string `json:"address"`
	Contact string `json:"contact" binding:"max=100"`
	Version *int   `json:"version"`
}

// MineResponse represents a mine in API responses
type MineResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Contact   string    `json:"contact"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Version   int       `json:"version"`
}

// ToMineResponse converts a mine to its response DTO
func ToMineResponse(m *partner.Mine) MineResponse {
	return MineResponse{
		ID:        m.ID,
		Name:      m.Name,
		Address:   m.Address,
		Contact:   m.Contact,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		Version:   m.Version,
	}
}

// ToMineResponses converts a slice of mines
func ToMineResponses(mines []partner.Mine) []MineResponse {
	out := make([]MineResponse, len(mines))
	for i := range mines {
		out[i] = ToMineResponse(&mines[i])
	}
	return out
}

// =============================================================================
// Vendors
// =============================================================================

// VendorRequest represents a request to create or update a vendor
type VendorRequest struct {
	Name    string     `json:"name" binding:"required,max=200"`
	Phones  []string   `json:"phones" binding:"omitempty,max=10,dive,mobile"`
	Address string     `json:"address"`
	MineID  *uuid.UUID `json:"mine_id"`
	Version *int       `json:"version"`
}

// VendorResponse represents a vendor in API responses
type VendorResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Phones    []string   `json:"phones"`
	Address   string     `json:"address"`
	MineID    *uuid.UUID `json:"mine_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	Version   int        `json:"version"`
}

// ToVendorResponse converts a vendor to its response DTO
func ToVendorResponse(v *partner.Vendor) VendorResponse {
	phones := []string(v.Phones)
	if phones == nil {
		phones = []string{}
	}
	return VendorResponse{
		ID:        v.ID,
		Name:      v.Name,
		Phones:    phones,
		Address:   v.Address,
		MineID:    v.MineID,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
		Version:   v.Version,
	}
}

// ToVendorResponses converts a slice of vendors
func ToVendorResponses(vendors []partner.Vendor) []VendorResponse {
	out := make([]VendorResponse, len(vendors))
	for i := range vendors {
		out[i] = ToVendorResponse(&vendors[i])
	}
	return out
}

// =============================================================================
// Labour
// =============================================================================

// LabourRequest represents a request to create or update a labour entry
type LabourRequest struct {
	Name    string `json:"name" binding:"required,max=200"`
	Mobile  string `json:"mobile" binding:"required,mobile"`
	Version *int   `json:"version"`
}

// LabourResponse represents a labour entry in API responses
type LabourResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Mobile    string    `json:"mobile"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Version   int       `json:"version"`
}

// ToLabourResponse converts a labour entry to its response DTO
func ToLabourResponse(l *partner.Labour) LabourResponse {
	return LabourResponse{
		ID:        l.ID,
		Name:      l.Name,
		Mobile:    l.Mobile,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
		Version:   l.Version,
	}
}

// ToLabourResponses converts a slice of labour entries
func ToLabourResponses(labour []partner.Labour) []LabourResponse {
	out := make([]LabourResponse, len(labour))
	for i := range labour {
		out[i] = ToLabourResponse(&labour[i])
	}
	return out
}

// checkVersion rejects an update made against a stale copy
func checkVersion(expected *int, actual int) error {
	if expected != nil && *expected != actual {
		return shared.ErrConcurrencyConflict
	}
	return nil
}
