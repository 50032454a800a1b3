package usage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"orchidbreed/internal"
	"orchidbreed/models"
)

type mockUsageRepo struct {
	mock.Mock
}

func (m *mockUsageRepo) RecordUsage(ctx context.Context, u *models.LLMUsage) error {
	return m.Called(ctx, u).Error(0)
}

func (m *mockUsageRepo) GetUsageByProvider(ctx context.Context, since time.Time) ([]models.ProviderUsage, error) {
	args := m.Called(ctx, since)
	usage, _ := args.Get(0).([]models.ProviderUsage)
	return usage, args.Error(1)
}

func TestSummary(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	repo := &mockUsageRepo{}
	repo.On("GetUsageByProvider", mock.Anything, now.Add(-24*time.Hour)).Return([]models.ProviderUsage{
		{Provider: "gemini", TotalTokens: 300, RequestCount: 2},
		{Provider: "openai", TotalTokens: 120, RequestCount: 1},
	}, nil)

	svc := NewService(repo, internal.NewLogger("test", internal.LogLevelError))
	svc.clock = func() time.Time { return now }

	summary, err := svc.Summary(context.Background(), 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 420, summary.TotalTokens)
	assert.Equal(t, 3, summary.TotalRequests)
	assert.Equal(t, now, summary.Until)
	repo.AssertExpectations(t)
}

func TestSummaryErrors(t *testing.T) {
	repo := &mockUsageRepo{}
	repo.On("GetUsageByProvider", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))
	svc := NewService(repo, internal.NewLogger("test", internal.LogLevelError))

	_, err := svc.Summary(context.Background(), 0)
	assert.Error(t, err)

	_, err = svc.Summary(context.Background(), time.Hour)
	assert.ErrorContains(t, err, "db down")
}

func TestSummaryEmpty(t *testing.T) {
	repo := &mockUsageRepo{}
	repo.On("GetUsageByProvider", mock.Anything, mock.Anything).Return(nil, nil)
	svc := NewService(repo, internal.NewLogger("test", internal.LogLevelError))

	summary, err := svc.Summary(context.Background(), time.Hour)
	require.NoError(t, err)
	assert.NotNil(t, summary.Providers)
	assert.Zero(t, summary.TotalTokens)
}
