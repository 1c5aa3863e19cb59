package httpx

import (
	"net/http"

	"github.com/jobdeck/jobdeck/internal/domain/model"
)

// parseJobsListParams lifts the listing query string into raw params.
// Validation and coercion happen in the model, not here.
func parseJobsListParams(r *http.Request) model.JobsListParams {
	q := r.URL.Query()
	return model.JobsListParams{
		Search:   q.Get("search"),
		Category: q.Get("category"),
		Company:  q.Get("company"),
		Location: q.Get("location"),
		Type:     q.Get("type"),
		Featured: q.Get("featured"),
		Page:     q.Get("page"),
		Limit:    q.Get("limit"),
	}
}

// parsePageRequest reads page/limit with defaults for endpoints that
// paginate without filters.
func parsePageRequest(r *http.Request) model.PageRequest {
	q := r.URL.Query()
	return model.NewPageRequest(q.Get("page"), q.Get("limit"))
}
