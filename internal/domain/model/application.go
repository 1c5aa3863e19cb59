package model

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jobdeck/jobdeck/internal/validation"
)

const (
	maxApplicantNameLen = 100
	maxCoverNoteLen     = 2000
)

// JobRef is the slice of a posting embedded in application reads.
type JobRef struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Company  string    `json:"company"`
	Location string    `json:"location"`
}

// Application is a job-seeker's submission against a posting. Applications
// are immutable once created: they are only ever listed or read. Job is nil
// when the referenced posting has since been deleted.
type Application struct {
	ID         uuid.UUID  `json:"id"`
	JobID      *uuid.UUID `json:"jobId"`
	Job        *JobRef    `json:"job"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	ResumeLink string     `json:"resumeLink"`
	CoverNote  string     `json:"coverNote"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// CreateApplicationRequest carries the payload for submitting an application.
type CreateApplicationRequest struct {
	JobID      string `json:"jobId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	ResumeLink string `json:"resumeLink"`
	CoverNote  string `json:"coverNote"`
}

// Normalize trims fields and lowercases the email address.
func (r *CreateApplicationRequest) Normalize() {
	r.JobID = strings.TrimSpace(r.JobID)
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.ResumeLink = strings.TrimSpace(r.ResumeLink)
	r.CoverNote = strings.TrimSpace(r.CoverNote)
}

// Validate checks the request and returns all field errors at once.
// A malformed job identifier is a client mistake, reported as a field error
// rather than a lookup miss.
func (r *CreateApplicationRequest) Validate() validation.Errors {
	f := validation.NewFields().
		Check("jobId", r.JobID, validation.Required("Job ID")).
		Check("name", r.Name, validation.Required("Name"), validation.MaxLen("Name", maxApplicantNameLen)).
		Check("email", r.Email, validation.Required("Email"), validation.Email("Email")).
		Check("resumeLink", r.ResumeLink, validation.Required("Resume link"), validation.HTTPURL("Resume link")).
		Check("coverNote", r.CoverNote, validation.Required("Cover note"), validation.MaxLen("Cover note", maxCoverNoteLen))
	if r.JobID != "" {
		if _, err := uuid.Parse(r.JobID); err != nil {
			f.Add("jobId", "Job ID must be a valid identifier")
		}
	}
	return f.Errors()
}
