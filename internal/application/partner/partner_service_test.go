package partner

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stonetrade/backend/internal/domain/partner"
	"github.com/stonetrade/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// =============================================================================
// Mock Repositories
// =============================================================================

// MockMineRepository is a mock implementation of partner.MineRepository
type MockMineRepository struct {
	mock.Mock
}

func (m *MockMineRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Mine, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Mine), args.Error(1)
}

func (m *MockMineRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Mine, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]partner.Mine), args.Error(1)
}

func (m *MockMineRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMineRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockMineRepository) Create(ctx context.Context, mine *partner.Mine) error {
	return m.Called(ctx, mine).Error(0)
}

func (m *MockMineRepository) Update(ctx context.Context, mine *partner.Mine) error {
	return m.Called(ctx, mine).Error(0)
}

func (m *MockMineRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockVendorRepository is a mock implementation of partner.VendorRepository
type MockVendorRepository struct {
	mock.Mock
}

func (m *MockVendorRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Vendor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Vendor), args.Error(1)
}

func (m *MockVendorRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Vendor, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]partner.Vendor), args.Error(1)
}

func (m *MockVendorRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVendorRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockVendorRepository) Create(ctx context.Context, vendor *partner.Vendor) error {
	return m.Called(ctx, vendor).Error(0)
}

func (m *MockVendorRepository) Update(ctx context.Context, vendor *partner.Vendor) error {
	return m.Called(ctx, vendor).Error(0)
}

func (m *MockVendorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockLabourRepository is a mock implementation of partner.LabourRepository
type MockLabourRepository struct {
	mock.Mock
}

func (m *MockLabourRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Labour, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Labour), args.Error(1)
}

func (m *MockLabourRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Labour, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]partner.Labour), args.Error(1)
}

func (m *MockLabourRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLabourRepository) Create(ctx context.Context, labour *partner.Labour) error {
	return m.Called(ctx, labour).Error(0)
}

func (m *MockLabourRepository) Update(ctx context.Context, labour *partner.Labour) error {
	return m.Called(ctx, labour).Error(0)
}

func (m *MockLabourRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockBalanceReader is a mock implementation of partner.BalanceReader
type MockBalanceReader struct {
	mock.Mock
}

func (m *MockBalanceReader) VendorBalance(ctx context.Context, vendorID uuid.UUID) (*partner.VendorBalance, error) {
	args := m.Called(ctx, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.VendorBalance), args.Error(1)
}

// =============================================================================
// Mine Service
// =============================================================================

func TestMineService_Create(t *testing.T) {
	repo := new(MockMineRepository)
	svc := NewMineService(repo, zap.NewNop())
	repo.On("Create", mock.Anything, mock.AnythingOfType("*partner.Mine")).Return(nil)

	resp, err := svc.Create(context.Background(), MineRequest{Name: "  Makrana Quarry 4 ", Contact: "Ramesh"})
	require.NoError(t, err)
	assert.Equal(t, "Makrana Quarry 4", resp.Name)
	assert.Equal(t, 1, resp.Version)
	repo.AssertExpectations(t)
}

func TestMineService_Create_EmptyName(t *testing.T) {
	repo := new(MockMineRepository)
	svc := NewMineService(repo, zap.NewNop())

	_, err := svc.Create(context.Background(), MineRequest{Name: "   "})
	assert.Error(t, err)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMineService_List_DefaultsToNameOrder(t *testing.T) {
	repo := new(MockMineRepository)
	svc := NewMineService(repo, zap.NewNop())

	matchFilter := mock.MatchedBy(func(f shared.Filter) bool {
		_, hasMine := f.Filters["mine_id"]
		return f.OrderBy == "name" && f.OrderDir == "asc" && f.Search == "quarry" && !hasMine
	})
	repo.On("FindAll", mock.Anything, matchFilter).Return([]partner.Mine{{Name: "Quarry 1"}}, nil)
	repo.On("Count", mock.Anything, matchFilter).Return(int64(1), nil)

	items, total, err := svc.List(context.Background(), ListFilter{Search: " quarry ", MineID: uuid.NewString()})
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, int64(1), total)
}

func TestMineService_Update_VersionConflict(t *testing.T) {
	repo := new(MockMineRepository)
	svc := NewMineService(repo, zap.NewNop())

	mine, _ := partner.NewMine("Old", "", "")
	repo.On("FindByID", mock.Anything, mine.ID).Return(mine, nil)

	stale := 7
	_, err := svc.Update(context.Background(), mine.ID, MineRequest{Name: "New", Version: &stale})
	assert.ErrorIs(t, err, shared.ErrConcurrencyConflict)
	assert.Equal(t, "Old", mine.Name)
}

// =============================================================================
// Vendor Service
// =============================================================================

func TestVendorService_Create_WithMine(t *testing.T) {
	vendors, mines := new(MockVendorRepository), new(MockMineRepository)
	svc := NewVendorService(vendors, mines, nil, zap.NewNop())

	mineID := uuid.New()
	mines.On("Exists", mock.Anything, mineID).Return(true, nil)
	vendors.On("Create", mock.Anything, mock.AnythingOfType("*partner.Vendor")).Return(nil)

	resp, err := svc.Create(context.Background(), VendorRequest{
		Name:   "Shree Marbles",
		Phones: []string{"98290 12345", "", "+91-9829012346"},
		MineID: &mineID,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"9829012345", "+919829012346"}, resp.Phones)
	assert.Equal(t, &mineID, resp.MineID)
}

func TestVendorService_Create_UnknownMine(t *testing.T) {
	vendors, mines := new(MockVendorRepository), new(MockMineRepository)
	svc := NewVendorService(vendors, mines, nil, zap.NewNop())

	mineID := uuid.New()
	mines.On("Exists", mock.Anything, mineID).Return(false, nil)

	_, err := svc.Create(context.Background(), VendorRequest{Name: "Shree Marbles", MineID: &mineID})
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "MINE_NOT_FOUND", domainErr.Code)
	vendors.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestVendorService_Create_NilMineSkipsCheck(t *testing.T) {
	vendors, mines := new(MockVendorRepository), new(MockMineRepository)
	svc := NewVendorService(vendors, mines, nil, zap.NewNop())
	vendors.On("Create", mock.Anything, mock.Anything).Return(nil)

	nilID := uuid.Nil
	resp, err := svc.Create(context.Background(), VendorRequest{Name: "Walk-in", MineID: &nilID})
	require.NoError(t, err)
	assert.Nil(t, resp.MineID)
	assert.Empty(t, resp.Phones)
	mines.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
}

func TestVendorService_Update(t *testing.T) {
	vendors, mines := new(MockVendorRepository), new(MockMineRepository)
	svc := NewVendorService(vendors, mines, nil, zap.NewNop())

	vendor, _ := partner.NewVendor("Old", nil, "", nil)
	vendors.On("FindByID", mock.Anything, vendor.ID).Return(vendor, nil)
	vendors.On("Update", mock.Anything, vendor).Return(nil)

	current := 1
	resp, err := svc.Update(context.Background(), vendor.ID, VendorRequest{Name: "New", Address: "Kishangarh", Version: &current})
	require.NoError(t, err)
	assert.Equal(t, "New", resp.Name)
	assert.Equal(t, "Kishangarh", resp.Address)
	assert.Equal(t, 2, resp.Version)
}

func TestVendorService_Balance(t *testing.T) {
	vendors, balances := new(MockVendorRepository), new(MockBalanceReader)
	svc := NewVendorService(vendors, nil, balances, zap.NewNop())

	id := uuid.New()
	vendors.On("Exists", mock.Anything, id).Return(true, nil)
	balances.On("VendorBalance", mock.Anything, id).Return(&partner.VendorBalance{
		VendorID:    id,
		IntakeDue:   decimal.NewFromInt(300),
		BlockDue:    decimal.NewFromInt(-20),
		TotalDue:    decimal.NewFromInt(280),
		RecordCount: 3,
	}, nil)

	balance, err := svc.Balance(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(280).Equal(balance.TotalDue))

	missing := uuid.New()
	vendors.On("Exists", mock.Anything, missing).Return(false, nil)
	_, err = svc.Balance(context.Background(), missing)
	assert.ErrorIs(t, err, shared.ErrNotFound)
	balances.AssertNumberOfCalls(t, "VendorBalance", 1)
}

func TestVendorService_List_FiltersByMine(t *testing.T) {
	vendors := new(MockVendorRepository)
	svc := NewVendorService(vendors, nil, nil, zap.NewNop())

	mineID := uuid.New()
	matchFilter := mock.MatchedBy(func(f shared.Filter) bool {
		return f.Filters["mine_id"] == mineID
	})
	vendors.On("FindAll", mock.Anything, matchFilter).Return([]partner.Vendor{}, nil)
	vendors.On("Count", mock.Anything, matchFilter).Return(int64(0), nil)

	_, _, err := svc.List(context.Background(), ListFilter{MineID: mineID.String()})
	require.NoError(t, err)
	vendors.AssertExpectations(t)
}

// =============================================================================
// Labour Service
// =============================================================================

func TestLabourService_Create(t *testing.T) {
	repo := new(MockLabourRepository)
	svc := NewLabourService(repo, zap.NewNop())
	repo.On("Create", mock.Anything, mock.AnythingOfType("*partner.Labour")).Return(nil)

	resp, err := svc.Create(context.Background(), LabourRequest{Name: "Suresh", Mobile: "+91 98290-12345"})
	require.NoError(t, err)
	assert.Equal(t, "+919829012345", resp.Mobile)

	_, err = svc.Create(context.Background(), LabourRequest{Name: "Suresh", Mobile: "12345"})
	assert.Error(t, err)
	repo.AssertNumberOfCalls(t, "Create", 1)
}

func TestLabourService_Update_NotFound(t *testing.T) {
	repo := new(MockLabourRepository)
	svc := NewLabourService(repo, zap.NewNop())

	id := uuid.New()
	repo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

	_, err := svc.Update(context.Background(), id, LabourRequest{Name: "A", Mobile: "9829012345"})
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestLabourService_Delete(t *testing.T) {
	repo := new(MockLabourRepository)
	svc := NewLabourService(repo, zap.NewNop())

	id := uuid.New()
	repo.On("Delete", mock.Anything, id).Return(nil)
	require.NoError(t, svc.Delete(context.Background(), id))
	repo.AssertExpectations(t)
}
