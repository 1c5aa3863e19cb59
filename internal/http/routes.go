package httpx

import (
	"log/slog"
	"net/http"

	"github.com/jobdeck/jobdeck/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Jobs         *service.JobService
	Applications *service.ApplicationService
	Stats        *service.StatsService
	Auth         *service.AuthService
	CookieDomain string
	Logger       *slog.Logger // Logger for request logging and panics (optional)
}

// NewRouter creates and configures a new HTTP router. Posting reads and
// application intake are public; posting writes and application review
// require an employer session.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	jobHandlers := &JobHandlers{Svc: services.Jobs}
	statsHandlers := &StatsHandlers{Svc: services.Stats}
	appHandlers := &ApplicationHandlers{Svc: services.Applications}

	var employerOnly func(http.Handler) http.Handler
	var authHandlers *AuthHandlers
	if services.Auth != nil {
		employerOnly = RequireEmployer(services.Auth)
		authHandlers = &AuthHandlers{
			Svc:          services.Auth,
			CookieDomain: services.CookieDomain,
			Logger:       services.Logger,
		}
	}

	registerJobRoutes(mux, jobHandlers, employerOnly)
	registerStatsRoutes(mux, statsHandlers)
	registerApplicationRoutes(mux, appHandlers, employerOnly)
	if authHandlers != nil {
		registerAuthRoutes(mux, authHandlers)
	}

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	return mux
}

func registerJobRoutes(mux *http.ServeMux, h *JobHandlers, writeMW func(http.Handler) http.Handler) {
	registerCRUD(mux, crudRoutes{
		Base:            "/api/jobs",
		Create:          h.Create,
		List:            h.List,
		GetByID:         h.GetByID,
		Update:          h.Update,
		Delete:          h.Delete,
		WriteMiddleware: writeMW,
	})
}

func registerStatsRoutes(mux *http.ServeMux, h *StatsHandlers) {
	// More specific than /api/jobs/{id}; the mux picks the literal segment.
	mux.HandleFunc("GET /api/jobs/stats/categories", h.CategoryCounts)
	mux.HandleFunc("GET /api/jobs/companies/list", h.Companies)
}

func registerApplicationRoutes(mux *http.ServeMux, h *ApplicationHandlers, reviewMW func(http.Handler) http.Handler) {
	wrap := func(handler http.HandlerFunc) http.Handler {
		if reviewMW != nil {
			return reviewMW(handler)
		}
		return handler
	}
	mux.HandleFunc("POST /api/applications", h.Submit)
	mux.Handle("GET /api/applications", wrap(h.List))
	mux.Handle("GET /api/applications/job/{jobId}", wrap(h.ListByJob))
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers) {
	mux.HandleFunc("POST /api/auth/signup", h.Signup)
	mux.HandleFunc("POST /api/auth/login", h.Login)
	mux.HandleFunc("POST /api/auth/logout", h.Logout)
	mux.HandleFunc("GET /api/auth/status", h.Status)
}

// registerCRUD registers standard CRUD routes for a resource base path.
// WriteMiddleware, when non-nil, guards the mutating routes only;
// reads stay public.
type crudRoutes struct {
	Base            string
	Create          http.HandlerFunc
	List            http.HandlerFunc
	GetByID         http.HandlerFunc
	Update          http.HandlerFunc
	Delete          http.HandlerFunc
	WriteMiddleware func(http.Handler) http.Handler
}

func registerCRUD(mux *http.ServeMux, cfg crudRoutes) {
	if cfg.Base == "" {
		panic("registerCRUD: Base must not be empty") //nolint:forbidigo // Fail fast during server setup.
	}
	if cfg.Create == nil ||
		cfg.List == nil ||
		cfg.GetByID == nil ||
		cfg.Update == nil ||
		cfg.Delete == nil {
		panic("registerCRUD: nil handler for base " + cfg.Base) //nolint:forbidigo // Fail fast during server setup.
	}

	guard := func(h http.HandlerFunc) http.Handler {
		if cfg.WriteMiddleware != nil {
			return cfg.WriteMiddleware(h)
		}
		return h
	}
	mux.Handle("POST "+cfg.Base, guard(cfg.Create))
	mux.HandleFunc("GET "+cfg.Base, cfg.List)
	mux.HandleFunc("GET "+cfg.Base+"/{id}", cfg.GetByID)
	mux.Handle("PUT "+cfg.Base+"/{id}", guard(cfg.Update))
	mux.Handle("DELETE "+cfg.Base+"/{id}", guard(cfg.Delete))
}
