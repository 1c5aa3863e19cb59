package model

import (
	"strconv"
	"strings"
)

const (
	// DefaultPage is the page served when none is requested.
	DefaultPage = 1
	// DefaultPageSize is the window size served when none is requested.
	DefaultPageSize = 12
	// MaxPageSize caps how many records one listing call may return.
	MaxPageSize = 50
	// maxPageNumber bounds the page parameter to keep offsets sane.
	maxPageNumber = 1 << 30
)

// PageRequest is a validated page/limit pair.
type PageRequest struct {
	Page  int
	Limit int
}

// NewPageRequest coerces raw page and limit strings, applying defaults for
// missing values. Callers validate bounds first; this clamps defensively so
// the offset can never go negative.
func NewPageRequest(page, limit string) PageRequest {
	pr := PageRequest{Page: DefaultPage, Limit: DefaultPageSize}
	if v, err := strconv.Atoi(strings.TrimSpace(page)); err == nil && v >= 1 {
		pr.Page = v
	}
	if v, err := strconv.Atoi(strings.TrimSpace(limit)); err == nil && v >= 1 {
		pr.Limit = min(v, MaxPageSize)
	}
	return pr
}

// Offset returns the number of records to skip before the window starts.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Pagination is the listing metadata returned alongside a page of results.
type Pagination struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Pages int `json:"pages"`
}

// NewPagination computes page-count metadata for a total match count.
// Pages is ceil(total/limit), and 0 when there are no matches or no window.
func NewPagination(total int, pr PageRequest) Pagination {
	p := Pagination{Total: total, Page: pr.Page, Limit: pr.Limit}
	if total > 0 && pr.Limit > 0 {
		p.Pages = (total + pr.Limit - 1) / pr.Limit
	}
	return p
}
