package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jobdeck/jobdeck/internal/data"
	"github.com/jobdeck/jobdeck/internal/domain/model"
	apperrors "github.com/jobdeck/jobdeck/internal/errors"
	"github.com/jobdeck/jobdeck/internal/mocks"
	"github.com/jobdeck/jobdeck/internal/validation"
)

func newJobService(t *testing.T) (*JobService, *mocks.MockJobRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockJobRepository(ctrl)
	return NewJobService(JobServiceOptions{Jobs: repo}), repo
}

func TestJobService_List(t *testing.T) {
	svc, repo := newJobService(t)
	ctx := context.Background()

	jobs := []*model.Job{
		{ID: uuid.New(), Title: "Backend Engineer"},
		{ID: uuid.New(), Title: "Frontend Engineer"},
	}
	repo.EXPECT().Count(ctx, gomock.Any()).Return(25, nil)
	repo.EXPECT().List(ctx, gomock.Any()).Return(jobs, nil)

	page, err := svc.List(ctx, model.JobsListParams{Page: "2", Limit: "12"})
	require.NoError(t, err)

	assert.Len(t, page.Jobs, 2)
	assert.Equal(t, 25, page.Pagination.Total)
	assert.Equal(t, 2, page.Pagination.Page)
	assert.Equal(t, 12, page.Pagination.Limit)
	assert.Equal(t, 3, page.Pagination.Pages)
}

func TestJobService_List_PassesFiltersToRepo(t *testing.T) {
	svc, repo := newJobService(t)
	ctx := context.Background()

	var captured model.JobsListOptions
	repo.EXPECT().Count(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, opts model.JobsListOptions) (int, error) {
			captured = opts
			return 0, nil
		})
	repo.EXPECT().List(ctx, gomock.Any()).Return(nil, nil)

	_, err := svc.List(ctx, model.JobsListParams{
		Search:   "go",
		Category: "Engineering",
		Featured: "true",
	})
	require.NoError(t, err)

	assert.Equal(t, "go", captured.Search)
	assert.Equal(t, "Engineering", captured.Category)
	require.NotNil(t, captured.Featured)
	assert.True(t, *captured.Featured)
	assert.Equal(t, model.DefaultPageSize, captured.Limit)
	assert.Equal(t, 0, captured.Offset)
}

func TestJobService_List_EmptyResultIsSlice(t *testing.T) {
	svc, repo := newJobService(t)
	ctx := context.Background()

	repo.EXPECT().Count(ctx, gomock.Any()).Return(0, nil)
	repo.EXPECT().List(ctx, gomock.Any()).Return(nil, nil)

	page, err := svc.List(ctx, model.JobsListParams{})
	require.NoError(t, err)

	assert.NotNil(t, page.Jobs)
	assert.Empty(t, page.Jobs)
	assert.Equal(t, 0, page.Pagination.Pages)
}

func TestJobService_List_InvalidParams(t *testing.T) {
	svc, _ := newJobService(t)

	_, err := svc.List(context.Background(), model.JobsListParams{Limit: "51"})
	require.Error(t, err)

	var errs validation.Errors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, "limit", errs[0].Path)
}

func TestJobService_GetByID(t *testing.T) {
	svc, repo := newJobService(t)
	ctx := context.Background()

	id := uuid.New()
	repo.EXPECT().GetByID(ctx, id).Return(&model.Job{ID: id}, nil)

	job, err := svc.GetByID(ctx, id.String())
	require.NoError(t, err)
	assert.Equal(t, id, job.ID)
}

func TestJobService_GetByID_Malformed(t *testing.T) {
	svc, _ := newJobService(t)

	_, err := svc.GetByID(context.Background(), "not-a-uuid")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "id", apperrors.GetField(err))
}

func TestJobService_GetByID_Missing(t *testing.T) {
	svc, repo := newJobService(t)
	ctx := context.Background()

	id := uuid.New()
	repo.EXPECT().GetByID(ctx, id).Return(nil, data.ErrJobNotFound)

	_, err := svc.GetByID(ctx, id.String())
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestJobService_Create(t *testing.T) {
	svc, repo := newJobService(t)
	ctx := context.Background()

	req := &model.CreateJobRequest{
		Title:       "  Backend Engineer  ",
		Company:     "Acme Cloud",
		CompanyLogo: "https://cdn.example.com/acme.png",
		Location:    "Remote",
		Category:    "Engineering",
		Description: "Build services.",
	}
	repo.EXPECT().Create(ctx, req).
		DoAndReturn(func(_ context.Context, r *model.CreateJobRequest) (*model.Job, error) {
			// Normalization happens before the repo sees the request.
			assert.Equal(t, "Backend Engineer", r.Title)
			assert.Equal(t, string(model.TypeFullTime), r.Type)
			return &model.Job{ID: uuid.New(), Title: r.Title}, nil
		})

	job, err := svc.Create(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer", job.Title)
}

func TestJobService_Create_Invalid(t *testing.T) {
	svc, _ := newJobService(t)

	_, err := svc.Create(context.Background(), &model.CreateJobRequest{})
	require.Error(t, err)

	var errs validation.Errors
	require.ErrorAs(t, err, &errs)
	assert.NotEmpty(t, errs)
}

func TestJobService_Create_NilRequest(t *testing.T) {
	svc, _ := newJobService(t)

	_, err := svc.Create(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestJobService_Update(t *testing.T) {
	svc, repo := newJobService(t)
	ctx := context.Background()

	id := uuid.New()
	title := "Staff Engineer"
	repo.EXPECT().Update(ctx, id, gomock.Any()).Return(&model.Job{ID: id, Title: title}, nil)

	job, err := svc.Update(ctx, id.String(), model.UpdateJobRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, title, job.Title)
}

func TestJobService_Update_NoFields(t *testing.T) {
	svc, _ := newJobService(t)

	_, err := svc.Update(context.Background(), uuid.NewString(), model.UpdateJobRequest{})
	require.Error(t, err)

	var errs validation.Errors
	require.ErrorAs(t, err, &errs)
}

func TestJobService_Update_Missing(t *testing.T) {
	svc, repo := newJobService(t)
	ctx := context.Background()

	id := uuid.New()
	title := "Staff Engineer"
	repo.EXPECT().Update(ctx, id, gomock.Any()).Return(nil, data.ErrJobNotFound)

	_, err := svc.Update(ctx, id.String(), model.UpdateJobRequest{Title: &title})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestJobService_Delete(t *testing.T) {
	svc, repo := newJobService(t)
	ctx := context.Background()

	id := uuid.New()
	repo.EXPECT().Delete(ctx, id).Return(nil)

	require.NoError(t, svc.Delete(ctx, id.String()))
}

func TestJobService_Delete_Missing(t *testing.T) {
	svc, repo := newJobService(t)
	ctx := context.Background()

	id := uuid.New()
	repo.EXPECT().Delete(ctx, id).Return(data.ErrJobNotFound)

	err := svc.Delete(ctx, id.String())
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestJobService_RepoErrorsPassThrough(t *testing.T) {
	svc, repo := newJobService(t)
	ctx := context.Background()

	boom := errors.New("connection reset")
	repo.EXPECT().Count(ctx, gomock.Any()).Return(0, boom)

	_, err := svc.List(ctx, model.JobsListParams{})
	assert.ErrorIs(t, err, boom)
}
