// Package httpx provides HTTP handlers and utilities for the jobdeck API.
package httpx

import (
	"net/http"

	"github.com/jobdeck/jobdeck/internal/domain/model"
	"github.com/jobdeck/jobdeck/internal/service"
)

// JobHandlers provides HTTP handlers for job posting operations.
type JobHandlers struct {
	Svc *service.JobService
}

// List handles listing postings with optional search, filters, and pagination.
func (h *JobHandlers) List(w http.ResponseWriter, r *http.Request) {
	params := parseJobsListParams(r)

	page, err := h.Svc.List(r.Context(), params)
	if err != nil {
		WriteError(w, err)
		return
	}

	WritePage(w, page.Jobs, page.Pagination)
}

// GetByID handles fetching a single posting.
func (h *JobHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	job, err := h.Svc.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteData(w, http.StatusOK, job)
}

// Create handles publishing a new posting.
func (h *JobHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateJobRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	job, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteDataMessage(w, http.StatusCreated, job, "Job created successfully")
}

// Update handles a partial update to a posting.
func (h *JobHandlers) Update(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateJobRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	job, err := h.Svc.Update(r.Context(), r.PathValue("id"), req)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteDataMessage(w, http.StatusOK, job, "Job updated successfully")
}

// Delete handles removing a posting.
func (h *JobHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		WriteError(w, err)
		return
	}

	WriteMessage(w, http.StatusOK, "Job deleted successfully")
}

// StatsHandlers provides HTTP handlers for posting aggregations.
type StatsHandlers struct {
	Svc *service.StatsService
}

// CategoryCounts handles the per-category posting count aggregation.
func (h *StatsHandlers) CategoryCounts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.Svc.CategoryCounts(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteData(w, http.StatusOK, counts)
}

// Companies handles the company directory aggregation.
func (h *StatsHandlers) Companies(w http.ResponseWriter, r *http.Request) {
	companies, err := h.Svc.CompanyDirectory(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteData(w, http.StatusOK, companies)
}
