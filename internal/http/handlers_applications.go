package httpx

import (
	"net/http"

	"github.com/jobdeck/jobdeck/internal/domain/model"
	"github.com/jobdeck/jobdeck/internal/service"
)

// ApplicationHandlers provides HTTP handlers for application intake and review.
type ApplicationHandlers struct {
	Svc *service.ApplicationService
}

// Submit handles a job-seeker submitting an application. Submitting against
// a deleted posting persists nothing and reports a 404.
func (h *ApplicationHandlers) Submit(w http.ResponseWriter, r *http.Request) {
	var req model.CreateApplicationRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	app, err := h.Svc.Submit(r.Context(), &req)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteDataMessage(w, http.StatusCreated, app,
		"Application submitted successfully! We will get back to you soon.")
}

// List handles listing all applications, newest first.
func (h *ApplicationHandlers) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.Svc.List(r.Context(), parsePageRequest(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	WritePage(w, page.Applications, page.Pagination)
}

// ListByJob handles listing the applications submitted against one posting.
func (h *ApplicationHandlers) ListByJob(w http.ResponseWriter, r *http.Request) {
	apps, err := h.Svc.ListByJob(r.Context(), r.PathValue("jobId"))
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteData(w, http.StatusOK, apps)
}
