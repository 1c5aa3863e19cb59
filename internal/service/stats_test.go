package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jobdeck/jobdeck/internal/domain/model"
	"github.com/jobdeck/jobdeck/internal/mocks"
)

func newStatsService(t *testing.T) (*StatsService, *mocks.MockJobRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockJobRepository(ctrl)
	return NewStatsService(StatsServiceOptions{Jobs: repo}), repo
}

func TestStatsService_CategoryCounts(t *testing.T) {
	svc, repo := newStatsService(t)
	ctx := context.Background()

	repo.EXPECT().CategoryCounts(ctx).Return([]model.CategoryCount{
		{Category: "Engineering", Count: 7},
		{Category: "Design", Count: 2},
	}, nil)

	counts, err := svc.CategoryCounts(ctx)
	require.NoError(t, err)
	require.Len(t, counts, 2)
	assert.Equal(t, model.JobCategory("Engineering"), counts[0].Category)
}

func TestStatsService_CategoryCounts_Empty(t *testing.T) {
	svc, repo := newStatsService(t)
	ctx := context.Background()

	repo.EXPECT().CategoryCounts(ctx).Return(nil, nil)

	counts, err := svc.CategoryCounts(ctx)
	require.NoError(t, err)
	assert.NotNil(t, counts)
	assert.Empty(t, counts)
}

func TestStatsService_CompanyDirectory(t *testing.T) {
	svc, repo := newStatsService(t)
	ctx := context.Background()

	repo.EXPECT().CompanyDirectory(ctx).Return([]model.CompanyListing{
		{Name: "Acme Cloud", Logo: "https://cdn.example.com/acme.png", JobCount: 4},
	}, nil)

	companies, err := svc.CompanyDirectory(ctx)
	require.NoError(t, err)
	require.Len(t, companies, 1)
	assert.Equal(t, 4, companies[0].JobCount)
}

func TestStatsService_ErrorsPassThrough(t *testing.T) {
	svc, repo := newStatsService(t)
	ctx := context.Background()

	boom := errors.New("db down")
	repo.EXPECT().CompanyDirectory(ctx).Return(nil, boom)

	_, err := svc.CompanyDirectory(ctx)
	assert.ErrorIs(t, err, boom)
}
