package bootstrap

import (
	"database/sql"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/jobdeck/jobdeck/config"
	"github.com/jobdeck/jobdeck/internal/adapters/memstore"
	redisadapter "github.com/jobdeck/jobdeck/internal/adapters/redis"
	"github.com/jobdeck/jobdeck/internal/data"
	"github.com/jobdeck/jobdeck/internal/ports"
	"github.com/jobdeck/jobdeck/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Jobs         *service.JobService
	Applications *service.ApplicationService
	Stats        *service.StatsService
	Auth         *service.AuthService
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// BuildServices wires repositories, adapters, and services together.
func BuildServices(deps ServiceDeps) ServiceContainer {
	jobRepo := data.NewJobRepo(deps.DB)
	appRepo := data.NewApplicationRepo(deps.DB)
	userRepo := data.NewUserRepo(deps.DB)

	var sessions ports.SessionStore
	if deps.RedisClient != nil {
		sessions = redisadapter.NewSessionStore(deps.RedisClient)
	} else {
		if deps.Logger != nil {
			deps.Logger.Warn("no redis configured, using in-memory session store")
		}
		sessions = memstore.NewSessionStore()
	}

	var sessionTTL = service.DefaultSessionTTL
	if deps.Config != nil {
		sessionTTL = deps.Config.Auth.SessionTTL
	}

	return ServiceContainer{
		Jobs:         service.NewJobService(service.JobServiceOptions{Jobs: jobRepo}),
		Applications: service.NewApplicationService(service.ApplicationServiceOptions{Applications: appRepo}),
		Stats:        service.NewStatsService(service.StatsServiceOptions{Jobs: jobRepo}),
		Auth: service.NewAuthService(service.AuthServiceOptions{
			Users:      userRepo,
			Sessions:   sessions,
			SessionTTL: sessionTTL,
		}),
	}
}
