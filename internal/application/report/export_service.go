// Package report builds spreadsheet exports of the stored collections.
package report

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stonetrade/backend/internal/application/inventory"
	"github.com/stonetrade/backend/internal/application/partner"
	"github.com/stonetrade/backend/internal/domain/block"
	"github.com/stonetrade/backend/internal/domain/costing"
	"github.com/stonetrade/backend/internal/domain/intake"
	domainpartner "github.com/stonetrade/backend/internal/domain/partner"
	"github.com/stonetrade/backend/internal/domain/shared"
	"github.com/stonetrade/backend/internal/domain/stone"
	"github.com/stonetrade/backend/internal/infrastructure/export"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ContentTypeXLSX is the media type of every export
const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Collection names match the API paths
const (
	CollectionBlocks  = "blocks"
	CollectionStones  = "stones"
	CollectionVendors = "vendors"
	CollectionLabour  = "labour"
)

// IntakeSource lists intake records of one kind
type IntakeSource interface {
	All(ctx context.Context, kind intake.Kind, filter inventory.ListFilter) ([]intake.Record, error)
}

// BlockSource lists blocks
type BlockSource interface {
	All(ctx context.Context, filter inventory.ListFilter) ([]block.Block, error)
}

// StoneSource lists stones
type StoneSource interface {
	All(ctx context.Context, filter inventory.ListFilter) ([]stone.Stone, error)
}

// VendorSource lists vendors
type VendorSource interface {
	All(ctx context.Context, filter partner.ListFilter) ([]domainpartner.Vendor, error)
}

// MineSource lists mines
type MineSource interface {
	All(ctx context.Context, filter partner.ListFilter) ([]domainpartner.Mine, error)
}

// LabourSource lists labour contacts
type LabourSource interface {
	All(ctx context.Context, filter partner.ListFilter) ([]domainpartner.Labour, error)
}

// Sources groups the collections an ExportService reads
type Sources struct {
	Intakes IntakeSource
	Blocks  BlockSource
	Stones  StoneSource
	Vendors VendorSource
	Mines   MineSource
	Labour  LabourSource
}

// File is a finished export
type File struct {
	Filename    string
	ContentType string
	Data        []byte
	Rows        int
}

// ExportService writes collections as XLSX workbooks
type ExportService struct {
	src    Sources
	logger *zap.Logger
	now    func() time.Time
}

// NewExportService creates a new ExportService
func NewExportService(src Sources, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{src: src, logger: logger, now: time.Now}
}

// Collections returns the names Export accepts
func Collections() []string {
	names := make([]string, 0, len(intake.Kinds())+4)
	for _, k := range intake.Kinds() {
		names = append(names, k.Slug())
	}
	return append(names, CollectionBlocks, CollectionStones, CollectionVendors, CollectionLabour)
}

// Export writes one collection. Inventory filters apply to records, blocks and stones;
// vendors and labour honour only the search term and mine.
func (s *ExportService) Export(ctx context.Context, collection string, filter inventory.ListFilter) (*File, error) {
	var (
		sheet *export.Sheet
		err   error
	)
	switch collection {
	case CollectionBlocks:
		sheet, err = s.blockSheet(ctx, filter)
	case CollectionStones:
		sheet, err = s.stoneSheet(ctx, filter)
	case CollectionVendors:
		sheet, err = s.vendorSheet(ctx, filter)
	case CollectionLabour:
		sheet, err = s.labourSheet(ctx, filter)
	default:
		kind, ok := kindForSlug(collection)
		if !ok {
			return nil, shared.NewDomainError("INVALID_COLLECTION",
				"Unknown collection "+collection+"; expected one of "+strings.Join(Collections(), ", "))
		}
		sheet, err = s.intakeSheet(ctx, kind, filter)
	}
	if err != nil {
		return nil, err
	}

	data, err := export.WriteXLSX(sheet)
	if err != nil {
		s.logger.Error("Export failed", zap.String("collection", collection), zap.Error(err))
		return nil, err
	}

	s.logger.Info("Collection exported",
		zap.String("collection", collection),
		zap.Int("rows", len(sheet.Rows)),
		zap.Int("bytes", len(data)))

	return &File{
		Filename:    collection + "-" + s.now().Format("20060102") + ".xlsx",
		ContentType: ContentTypeXLSX,
		Data:        data,
		Rows:        len(sheet.Rows),
	}, nil
}

func (s *ExportService) intakeSheet(ctx context.Context, kind intake.Kind, filter inventory.ListFilter) (*export.Sheet, error) {
	records, err := s.src.Intakes.All(ctx, kind, filter)
	if err != nil {
		return nil, err
	}
	vendors, err := s.vendorNames(ctx)
	if err != nil {
		return nil, err
	}

	sheet := &export.Sheet{
		Name: title(string(kind)),
		Columns: []export.Column{
			{Header: "Date", Width: 12},
			{Header: "Type", Width: 14},
			{Header: "Vendor", Width: 24},
			{Header: "Munim", Width: 16},
			{Header: "L"}, {Header: "B"}, {Header: "H"},
			{Header: "Groups"},
			{Header: "Material Cost", Width: 14},
			{Header: "Hydra Cost", Width: 12},
			{Header: "Truck Cost", Width: 12},
			{Header: "Total Area", Width: 12},
			{Header: "Total Cost", Width: 12},
			{Header: "Total Block Cost", Width: 16},
			{Header: "Estimate Cost", Width: 14},
			{Header: "Depreciation %", Width: 14},
			{Header: "Final Cost", Width: 14},
			{Header: "Received", Width: 14},
			{Header: "Remaining", Width: 14},
		},
	}
	for i := range records {
		r := &records[i]
		sheet.AddRow(r.Date, r.StoneType, vendors[idOf(r.VendorID)], r.Munim,
			r.L, r.B, r.H, len(r.Groups),
			r.MaterialCost, r.HydraCost, r.TruckCost,
			r.TotalArea, r.TotalCost, r.TotalBlockCost, r.EstimateCost, r.Depreciation, r.FinalCost,
			r.TotalReceived(), r.PartyRemainingPayment)
	}
	return sheet, nil
}

func (s *ExportService) blockSheet(ctx context.Context, filter inventory.ListFilter) (*export.Sheet, error) {
	blocks, err := s.src.Blocks.All(ctx, filter)
	if err != nil {
		return nil, err
	}
	vendors, err := s.vendorNames(ctx)
	if err != nil {
		return nil, err
	}
	mines, err := s.mineNames(ctx)
	if err != nil {
		return nil, err
	}

	sheet := &export.Sheet{
		Name: "Blocks",
		Columns: []export.Column{
			{Header: "Date", Width: 12},
			{Header: "Block No.", Width: 12},
			{Header: "Vendor", Width: 24},
			{Header: "Mine", Width: 20},
			{Header: "Munim", Width: 16},
			{Header: "Front Volume", Width: 13},
			{Header: "Back Volume", Width: 13},
			{Header: "Total Area", Width: 12},
			{Header: "Rate", Width: 10},
			{Header: "Total Cost", Width: 12},
			{Header: "Hydra Cost", Width: 12},
			{Header: "Truck Cost", Width: 12},
			{Header: "Block Amount", Width: 14},
			{Header: "Depreciation %", Width: 14},
			{Header: "Final Total", Width: 14},
			{Header: "Received", Width: 14},
			{Header: "Remaining", Width: 14},
		},
	}
	for i := range blocks {
		b := &blocks[i]
		sheet.AddRow(b.Date, b.BlockNumber, vendors[idOf(b.VendorID)], mines[idOf(b.MineID)], b.Munim,
			b.FrontVolume, b.BackVolume, b.TotalArea, b.Rate, b.TotalCost,
			b.HydraCost, b.TruckCost, b.BlockAmount, b.Depreciation, b.FinalTotal,
			costing.TotalReceived(b.ReceivedAmount), b.PartyRemainingPayment)
	}
	return sheet, nil
}

func (s *ExportService) stoneSheet(ctx context.Context, filter inventory.ListFilter) (*export.Sheet, error) {
	stones, err := s.src.Stones.All(ctx, filter)
	if err != nil {
		return nil, err
	}

	sheet := &export.Sheet{
		Name: "Stones",
		Columns: []export.Column{
			{Header: "Date", Width: 12},
			{Header: "Type", Width: 14},
			{Header: "Rate", Width: 10},
			{Header: "Total Qty", Width: 11},
			{Header: "Issued Qty", Width: 11},
			{Header: "Left Qty", Width: 11},
			{Header: "Hydra Cost", Width: 12},
			{Header: "Total Amount", Width: 14},
		},
	}
	for i := range stones {
		st := &stones[i]
		sheet.AddRow(st.Date, st.StoneType, st.Rate, st.TotalQuantity, st.IssuedQuantity,
			st.LeftQuantity, st.HydraCost, st.TotalAmount)
	}
	return sheet, nil
}

func (s *ExportService) vendorSheet(ctx context.Context, filter inventory.ListFilter) (*export.Sheet, error) {
	vendors, err := s.src.Vendors.All(ctx, partnerFilter(filter))
	if err != nil {
		return nil, err
	}
	mines, err := s.mineNames(ctx)
	if err != nil {
		return nil, err
	}

	sheet := &export.Sheet{
		Name: "Vendors",
		Columns: []export.Column{
			{Header: "Name", Width: 24},
			{Header: "Phones", Width: 28},
			{Header: "Address", Width: 36},
			{Header: "Mine", Width: 20},
		},
	}
	for i := range vendors {
		v := &vendors[i]
		sheet.AddRow(v.Name, strings.Join(v.Phones, ", "), v.Address, mines[idOf(v.MineID)])
	}
	return sheet, nil
}

func (s *ExportService) labourSheet(ctx context.Context, filter inventory.ListFilter) (*export.Sheet, error) {
	labour, err := s.src.Labour.All(ctx, partnerFilter(filter))
	if err != nil {
		return nil, err
	}

	sheet := &export.Sheet{
		Name:    "Labour",
		Columns: []export.Column{{Header: "Name", Width: 24}, {Header: "Mobile", Width: 16}},
	}
	for i := range labour {
		sheet.AddRow(labour[i].Name, labour[i].Mobile)
	}
	return sheet, nil
}

func (s *ExportService) vendorNames(ctx context.Context) (map[uuid.UUID]string, error) {
	if s.src.Vendors == nil {
		return map[uuid.UUID]string{}, nil
	}
	vendors, err := s.src.Vendors.All(ctx, partner.ListFilter{})
	if err != nil {
		return nil, err
	}
	names := make(map[uuid.UUID]string, len(vendors))
	for _, v := range vendors {
		names[v.ID] = v.Name
	}
	return names, nil
}

func (s *ExportService) mineNames(ctx context.Context) (map[uuid.UUID]string, error) {
	if s.src.Mines == nil {
		return map[uuid.UUID]string{}, nil
	}
	mines, err := s.src.Mines.All(ctx, partner.ListFilter{})
	if err != nil {
		return nil, err
	}
	names := make(map[uuid.UUID]string, len(mines))
	for _, m := range mines {
		names[m.ID] = m.Name
	}
	return names, nil
}

func partnerFilter(f inventory.ListFilter) partner.ListFilter {
	return partner.ListFilter{Search: f.Search, MineID: f.MineID, OrderBy: f.OrderBy, OrderDir: f.OrderDir}
}

// idOf maps a missing reference to uuid.Nil, which no name lookup contains
func idOf(id *uuid.UUID) uuid.UUID {
	if id == nil {
		return uuid.Nil
	}
	return *id
}

func kindForSlug(slug string) (intake.Kind, bool) {
	for _, k := range intake.Kinds() {
		if k.Slug() == slug {
			return k, true
		}
	}
	return "", false
}

// title turns "todi_raskat" into "Todi Raskat"
func title(s string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(s, "_", " "))
}
