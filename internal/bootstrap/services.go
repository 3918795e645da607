package bootstrap

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/danielwinstonmandela/ScalableArchitecturesCS/config"
	"github.com/danielwinstonmandela/ScalableArchitecturesCS/internal/core"
	"github.com/danielwinstonmandela/ScalableArchitecturesCS/internal/data"
	"github.com/danielwinstonmandela/ScalableArchitecturesCS/internal/service"
)

// ServiceContainer holds all application services and the shared auth guard.
type ServiceContainer struct {
	Users     *service.UserService
	Tracks    *service.TrackService
	Playbacks *service.PlaybackService
	Cache     core.CacheRepository
	Auth      *AuthComponents
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// serviceRepositories groups data adapters backing service ports.
type serviceRepositories struct {
	UserRepo     *data.UserRepo
	TrackRepo    *data.TrackRepo
	PlaybackRepo *data.PlaybackRepo
	CacheRepo    *data.RedisCacheRepo
	Events       core.EventPublisher
}

// buildRepositories builds repositories backing service ports; no business rules here.
func buildRepositories(db *sql.DB, redisClient redis.UniversalClient) *serviceRepositories {
	repos := &serviceRepositories{
		UserRepo:     data.NewUserRepo(db),
		TrackRepo:    data.NewTrackRepo(db),
		PlaybackRepo: data.NewPlaybackRepo(db),
	}
	if redisClient != nil {
		repos.CacheRepo = data.NewRedisCacheRepo(redisClient)
		repos.Events = data.NewRedisEventPublisher(redisClient)
	}
	return repos
}

// NewServices builds the full service container from shared infrastructure.
func NewServices(deps *ServiceDeps) (ServiceContainer, error) {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	repos := buildRepositories(deps.DB, deps.RedisClient)

	authComponents, err := BuildAuth(deps.Config.Auth, repos.UserRepo)
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("build auth components: %w", err)
	}

	container := ServiceContainer{
		Users: service.NewUserService(service.UserServiceOptions{
			Users:    repos.UserRepo,
			Hasher:   authComponents.Hasher,
			Tokens:   authComponents.Tokens,
			Events:   repos.Events,
			TokenTTL: deps.Config.Auth.TokenTTL,
			Logger:   logger,
		}),
		Tracks: service.NewTrackService(service.TrackServiceOptions{
			Tracks: repos.TrackRepo,
			Events: repos.Events,
			Logger: logger,
		}),
		Playbacks: service.NewPlaybackService(service.PlaybackServiceOptions{
			Playbacks: repos.PlaybackRepo,
			Events:    repos.Events,
			Logger:    logger,
		}),
		Auth: authComponents,
	}
	if repos.CacheRepo != nil {
		container.Cache = repos.CacheRepo
	}

	return container, nil
}
