package service

import (
	"context"
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

func newApplicationService(t *testing.T) (*ApplicationService, *mocks.MockApplicationRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockApplicationRepository(ctrl)
	return NewApplicationService(ApplicationServiceOptions{Applications: repo}), repo
}

func validSubmitRequest() *model.CreateApplicationRequest {
	return &model.CreateApplicationRequest{
		JobID:      uuid.NewString(),
		Name:       "Dana Applicant",
		Email:      "Dana@Example.COM",
		ResumeLink: "https://cv.example.com/dana.pdf",
		CoverNote:  "Hire me.",
	}
}

func TestApplicationService_Submit(t *testing.T) {
	svc, repo := newApplicationService(t)
	ctx := context.Background()

	req := validSubmitRequest()
	repo.EXPECT().Create(ctx, req).
		DoAndReturn(func(_ context.Context, r *model.CreateApplicationRequest) (*model.Application, error) {
			assert.Equal(t, "dana@example.com", r.Email)
			return &model.Application{ID: uuid.New(), Name: r.Name}, nil
		})

	app, err := svc.Submit(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "Dana Applicant", app.Name)
}

func TestApplicationService_Submit_Invalid(t *testing.T) {
	svc, _ := newApplicationService(t)

	_, err := svc.Submit(context.Background(), &model.CreateApplicationRequest{})
	require.Error(t, err)

	var errs validation.Errors
	require.ErrorAs(t, err, &errs)
	assert.Len(t, errs, 5)
}

func TestApplicationService_Submit_MalformedJobID(t *testing.T) {
	svc, _ := newApplicationService(t)

	req := validSubmitRequest()
	req.JobID = "not-a-uuid"
	_, err := svc.Submit(context.Background(), req)
	require.Error(t, err)

	var errs validation.Errors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, "jobId", errs[0].Path)
}

func TestApplicationService_Submit_JobGone(t *testing.T) {
	svc, repo := newApplicationService(t)
	ctx := context.Background()

	req := validSubmitRequest()
	repo.EXPECT().Create(ctx, req).Return(nil, data.ErrJobNotFound)

	_, err := svc.Submit(ctx, req)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestApplicationService_List(t *testing.T) {
	svc, repo := newApplicationService(t)
	ctx := context.Background()

	repo.EXPECT().Count(ctx).Return(3, nil)
	repo.EXPECT().List(ctx, 12, 0).Return([]*model.Application{
		{ID: uuid.New()},
		{ID: uuid.New()},
		{ID: uuid.New()},
	}, nil)

	page, err := svc.List(ctx, model.PageRequest{Page: 1, Limit: 12})
	require.NoError(t, err)
	assert.Len(t, page.Applications, 3)
	assert.Equal(t, 3, page.Pagination.Total)
	assert.Equal(t, 1, page.Pagination.Pages)
}

func TestApplicationService_List_Empty(t *testing.T) {
	svc, repo := newApplicationService(t)
	ctx := context.Background()

	repo.EXPECT().Count(ctx).Return(0, nil)
	repo.EXPECT().List(ctx, 12, 12).Return(nil, nil)

	page, err := svc.List(ctx, model.PageRequest{Page: 2, Limit: 12})
	require.NoError(t, err)
	assert.NotNil(t, page.Applications)
	assert.Empty(t, page.Applications)
}

func TestApplicationService_ListByJob(t *testing.T) {
	svc, repo := newApplicationService(t)
	ctx := context.Background()

	jobID := uuid.New()
	repo.EXPECT().ListByJob(ctx, jobID).Return(nil, nil)

	apps, err := svc.ListByJob(ctx, jobID.String())
	require.NoError(t, err)
	assert.NotNil(t, apps)
	assert.Empty(t, apps)
}

func TestApplicationService_ListByJob_Malformed(t *testing.T) {
	svc, _ := newApplicationService(t)

	_, err := svc.ListByJob(context.Background(), "nope")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "jobId", apperrors.GetField(err))
}
