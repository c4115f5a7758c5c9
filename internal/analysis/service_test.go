package analysis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, record *Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockRepository) ListByUser(ctx context.Context, userID string, limit int) ([]Record, error) {
	args := m.Called(ctx, userID, limit)
	return args.Get(0).([]Record), args.Error(1)
}

func (m *MockRepository) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestSave(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*analysis.Record")).Return(nil)

	service := NewService(repo, zap.NewNop(), 0)

	record, err := service.Save(context.Background(), SaveRequest{
		UserID:        "farmer-1",
		WasteType:     "cow_dung",
		QuantityKg:    1000,
		CO2SavedTons:  0.4,
		CarbonCredits: 0.44,
	})
	require.NoError(t, err)

	assert.NotEqual(t, "", record.ID.String())
	assert.Equal(t, "farmer-1", record.UserID)
	assert.False(t, record.CreatedAt.IsZero())
	repo.AssertExpectations(t)
}

func TestSaveRejectsNegativeQuantity(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo, zap.NewNop(), 0)

	_, err := service.Save(context.Background(), SaveRequest{
		UserID:     "farmer-1",
		WasteType:  "cow_dung",
		QuantityKg: -5,
	})
	assert.Error(t, err)
	repo.AssertNotCalled(t, "Create")
}

func TestUserStats(t *testing.T) {
	repo := new(MockRepository)
	repo.On("ListByUser", mock.Anything, "farmer-1", 0).Return([]Record{
		{CO2SavedTons: 0.5, CarbonCredits: 0.6, QuantityKg: 1000},
		{CO2SavedTons: 1.5, CarbonCredits: 1.4, QuantityKg: 3000},
	}, nil)

	service := NewService(repo, zap.NewNop(), 1500)

	stats, err := service.UserStats(context.Background(), "farmer-1")
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalAnalyses)
	assert.InDelta(t, 2.0, stats.TotalCO2Saved, 0.001)
	assert.InDelta(t, 2.0, stats.TotalCarbonCredits, 0.001)
	assert.InDelta(t, 4000, stats.TotalWasteProcessed, 0.001)
	assert.InDelta(t, 3000, stats.EstimatedEarnings, 0.001)
}

func TestRecentActivityLimit(t *testing.T) {
	repo := new(MockRepository)
	repo.On("ListByUser", mock.Anything, "farmer-1", 10).Return([]Record{}, nil)

	service := NewService(repo, zap.NewNop(), 0)

	// Out-of-range limits fall back to 10.
	_, err := service.RecentActivity(context.Background(), "farmer-1", 0)
	require.NoError(t, err)
	_, err = service.RecentActivity(context.Background(), "farmer-1", 99)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestMemoryRepositoryRoundTrip(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.Create(ctx, &Record{UserID: "farmer-1", QuantityKg: float64(i)})
		require.NoError(t, err)
	}
	require.NoError(t, repo.Create(ctx, &Record{UserID: "farmer-2"}))

	records, err := repo.ListByUser(ctx, "farmer-1", 2)
	require.NoError(t, err)
	assert.Len(t, records, 2)

	total, err := repo.CountAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
}
