package data

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobdeck/jobdeck/internal/domain/model"
	"github.com/jobdeck/jobdeck/internal/testutil"
)

// submitApplication is a test helper that applies against the given posting.
func submitApplication(t *testing.T, repo *ApplicationRepo, jobID uuid.UUID, mutate func(*model.CreateApplicationRequest)) *model.Application {
	t.Helper()
	req := &model.CreateApplicationRequest{
		JobID:      jobID.String(),
		Name:       "Sam Candidate",
		Email:      "sam@example.com",
		ResumeLink: "https://files.example.com/sam.pdf",
		CoverNote:  "I would love to join.",
	}
	if mutate != nil {
		mutate(req)
	}
	app, err := repo.Create(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, app)
	return app
}

func TestApplicationRepo_Create(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		jobs := NewJobRepo(db)
		repo := NewApplicationRepo(db)

		job := insertJob(t, jobs, nil)
		app := submitApplication(t, repo, job.ID, nil)

		assert.NotEqual(t, uuid.Nil, app.ID)
		require.NotNil(t, app.JobID)
		assert.Equal(t, job.ID, *app.JobID)
		assert.Equal(t, "Sam Candidate", app.Name)
		assert.False(t, app.CreatedAt.IsZero())
	})
}

func TestApplicationRepo_Create_JobGonePersistsNothing(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewApplicationRepo(db)
		ctx := context.Background()

		app, err := repo.Create(ctx, &model.CreateApplicationRequest{
			JobID:      uuid.NewString(),
			Name:       "Sam Candidate",
			Email:      "sam@example.com",
			ResumeLink: "https://files.example.com/sam.pdf",
			CoverNote:  "Still interested.",
		})
		require.ErrorIs(t, err, ErrJobNotFound)
		assert.Nil(t, app)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}

func TestApplicationRepo_Create_Invalid(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewApplicationRepo(db)

		app, err := repo.Create(context.Background(), &model.CreateApplicationRequest{Name: "no job"})
		require.Error(t, err)
		assert.Nil(t, app)
	})
}

func TestApplicationRepo_GetByID_JoinsPosting(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		jobs := NewJobRepo(db)
		repo := NewApplicationRepo(db)
		ctx := context.Background()

		job := insertJob(t, jobs, func(req *model.CreateJobRequest) {
			req.Title = "Backend Engineer"
			req.Location = "Berlin"
		})
		created := submitApplication(t, repo, job.ID, nil)

		found, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, found.Job)
		assert.Equal(t, job.ID, found.Job.ID)
		assert.Equal(t, "Backend Engineer", found.Job.Title)
		assert.Equal(t, "Berlin", found.Job.Location)

		_, err = repo.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, ErrApplicationNotFound)
	})
}

func TestApplicationRepo_JobDeletionOrphansApplication(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		jobs := NewJobRepo(db)
		repo := NewApplicationRepo(db)
		ctx := context.Background()

		job := insertJob(t, jobs, nil)
		created := submitApplication(t, repo, job.ID, nil)

		require.NoError(t, jobs.Delete(ctx, job.ID))

		// The application survives the posting with its reference cleared.
		found, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Nil(t, found.JobID)
		assert.Nil(t, found.Job)
		assert.Equal(t, "Sam Candidate", found.Name)
	})
}

func TestApplicationRepo_List_NewestFirst(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		jobs := NewJobRepo(db)
		clock := NewFixedTimeProvider(testutil.TestTime())
		repo := NewApplicationRepoWithTimeProvider(db, clock)
		ctx := context.Background()

		job := insertJob(t, jobs, nil)

		submitApplication(t, repo, job.ID, func(req *model.CreateApplicationRequest) { req.Name = "First" })
		clock.AddTime(time.Minute)
		submitApplication(t, repo, job.ID, func(req *model.CreateApplicationRequest) { req.Name = "Second" })
		clock.AddTime(time.Minute)
		submitApplication(t, repo, job.ID, func(req *model.CreateApplicationRequest) { req.Name = "Third" })

		apps, err := repo.List(ctx, 10, 0)
		require.NoError(t, err)
		require.Len(t, apps, 3)
		assert.Equal(t, "Third", apps[0].Name)
		assert.Equal(t, "Second", apps[1].Name)
		assert.Equal(t, "First", apps[2].Name)

		page, err := repo.List(ctx, 2, 2)
		require.NoError(t, err)
		require.Len(t, page, 1)
		assert.Equal(t, "First", page[0].Name)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, count)
	})
}

func TestApplicationRepo_ListByJob(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		jobs := NewJobRepo(db)
		repo := NewApplicationRepo(db)
		ctx := context.Background()

		jobA := insertJob(t, jobs, nil)
		jobB := insertJob(t, jobs, func(req *model.CreateJobRequest) { req.Title = "Designer" })

		submitApplication(t, repo, jobA.ID, func(req *model.CreateApplicationRequest) { req.Name = "For A" })
		submitApplication(t, repo, jobB.ID, func(req *model.CreateApplicationRequest) { req.Name = "For B" })

		apps, err := repo.ListByJob(ctx, jobA.ID)
		require.NoError(t, err)
		require.Len(t, apps, 1)
		assert.Equal(t, "For A", apps[0].Name)

		none, err := repo.ListByJob(ctx, uuid.New())
		require.NoError(t, err)
		assert.Empty(t, none)
	})
}
