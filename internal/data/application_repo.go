package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jobdeck/jobdeck/internal/data/pgxutil"
	"github.com/jobdeck/jobdeck/internal/domain/model"
)

// applicationRow is the flat scan target for application reads. The join
// columns are nullable: they are absent when the posting has been deleted
// and the schema cleared the reference.
type applicationRow struct {
	ID          uuid.UUID  `db:"id"`
	JobID       *uuid.UUID `db:"job_id"`
	Name        string     `db:"name"`
	Email       string     `db:"email"`
	ResumeLink  string     `db:"resume_link"`
	CoverNote   string     `db:"cover_note"`
	CreatedAt   time.Time  `db:"created_at"`
	JobTitle    *string    `db:"job_title"`
	JobCompany  *string    `db:"job_company"`
	JobLocation *string    `db:"job_location"`
}

func (row *applicationRow) toModel() *model.Application {
	app := &model.Application{
		ID:         row.ID,
		JobID:      row.JobID,
		Name:       row.Name,
		Email:      row.Email,
		ResumeLink: row.ResumeLink,
		CoverNote:  row.CoverNote,
		CreatedAt:  row.CreatedAt,
	}
	if row.JobID != nil && row.JobTitle != nil {
		app.Job = &model.JobRef{
			ID:       *row.JobID,
			Title:    derefString(row.JobTitle),
			Company:  derefString(row.JobCompany),
			Location: derefString(row.JobLocation),
		}
	}
	return app
}

func derefString(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// applicationInsertRow matches the columns the intake INSERT returns. The
// posting slice is joined on reads only, so strict by-name scanning must not
// expect the join columns here.
type applicationInsertRow struct {
	ID         uuid.UUID  `db:"id"`
	JobID      *uuid.UUID `db:"job_id"`
	Name       string     `db:"name"`
	Email      string     `db:"email"`
	ResumeLink string     `db:"resume_link"`
	CoverNote  string     `db:"cover_note"`
	CreatedAt  time.Time  `db:"created_at"`
}

func (row *applicationInsertRow) toModel() *model.Application {
	return &model.Application{
		ID:         row.ID,
		JobID:      row.JobID,
		Name:       row.Name,
		Email:      row.Email,
		ResumeLink: row.ResumeLink,
		CoverNote:  row.CoverNote,
		CreatedAt:  row.CreatedAt,
	}
}

const applicationSelectQuery = `
	SELECT
		a.id, a.job_id, a.name, a.email, a.resume_link, a.cover_note, a.created_at,
		j.title AS job_title, j.company AS job_company, j.location AS job_location
	FROM applications a
	LEFT JOIN jobs j ON j.id = a.job_id`

// ApplicationRepo provides database operations for job applications.
type ApplicationRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewApplicationRepo creates a new ApplicationRepo with real time provider.
func NewApplicationRepo(db *sql.DB) *ApplicationRepo {
	return &ApplicationRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewApplicationRepoWithTimeProvider creates a new ApplicationRepo with a custom time provider.
func NewApplicationRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *ApplicationRepo {
	return &ApplicationRepo{DB: db, timeProvider: tp}
}

// Create verifies the posting still exists and inserts the application in
// one transaction. When the posting is gone nothing is persisted and
// ErrJobNotFound is returned.
func (r *ApplicationRepo) Create(ctx context.Context, req *model.CreateApplicationRequest) (*model.Application, error) {
	if req == nil {
		return nil, errors.New("create application request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		return nil, fmt.Errorf("parse job id: %w", err)
	}

	var out *model.Application
	err = pgxutil.WithPgxTx(ctx, r.DB, func(tx pgx.Tx) error {
		var exists bool
		if err := tx.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM jobs WHERE id = $1)`, jobID,
		).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return ErrJobNotFound
		}

		rows, err := tx.Query(ctx, `
			INSERT INTO applications (job_id, name, email, resume_link, cover_note, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, job_id, name, email, resume_link, cover_note, created_at`,
			jobID,
			req.Name,
			req.Email,
			req.ResumeLink,
			req.CoverNote,
			r.timeProvider.Now().UTC(),
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		inserted, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[applicationInsertRow])
		if err != nil {
			return err
		}
		out = inserted.toModel()
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrJobNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to create application: %w", err)
	}
	return out, nil
}

// GetByID retrieves one application with its posting slice joined in.
func (r *ApplicationRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Application, error) {
	var row applicationRow
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, applicationSelectQuery+` WHERE a.id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		row, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[applicationRow])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to get application by ID: %w", err)
	}
	return row.toModel(), nil
}

// List retrieves applications newest first, each with its posting slice
// joined in. Orphaned applications appear with a nil posting.
func (r *ApplicationRepo) List(ctx context.Context, limit, offset int) ([]*model.Application, error) {
	if limit <= 0 {
		limit = model.DefaultPageSize
	}
	offset = max(offset, 0)

	return r.list(ctx, applicationSelectQuery+`
		ORDER BY a.created_at DESC, a.id ASC
		LIMIT $1 OFFSET $2`, limit, offset)
}

// ListByJob retrieves the applications submitted against one posting,
// newest first.
func (r *ApplicationRepo) ListByJob(ctx context.Context, jobID uuid.UUID) ([]*model.Application, error) {
	return r.list(ctx, applicationSelectQuery+`
		WHERE a.job_id = $1
		ORDER BY a.created_at DESC, a.id ASC`, jobID)
}

func (r *ApplicationRepo) list(ctx context.Context, query string, args ...any) ([]*model.Application, error) {
	var rowsOut []applicationRow
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[applicationRow])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	res := make([]*model.Application, len(rowsOut))
	for i := range rowsOut {
		res[i] = rowsOut[i].toModel()
	}
	return res, nil
}

// Count returns the total number of applications.
func (r *ApplicationRepo) Count(ctx context.Context) (int, error) {
	var count int
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, `SELECT COUNT(*) FROM applications`).Scan(&count)
	}); err != nil {
		return 0, fmt.Errorf("failed to count applications: %w", err)
	}
	return count, nil
}
