package bootstrap

import (
	"database/sql"
	"log/slog"
	"sync/atomic"

	"github.com/redis/go-redis/v9"

	"github.com/WebbPulse/carmodpicker/config"
	mailadapter "github.com/WebbPulse/carmodpicker/internal/adapters/mail"
	"github.com/WebbPulse/carmodpicker/internal/adapters/password"
	redisadapter "github.com/WebbPulse/carmodpicker/internal/adapters/redis"
	"github.com/WebbPulse/carmodpicker/internal/data"
	"github.com/WebbPulse/carmodpicker/internal/imageurl"
	"github.com/WebbPulse/carmodpicker/internal/ports"
	"github.com/WebbPulse/carmodpicker/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Auth       *service.AuthService
	Users      *service.UserService
	Cars       *service.CarService
	BuildLists *service.BuildListService
	Parts      *service.PartService

	// LogoutFailures counts sessions that could not be removed from the
	// store during logout. The cookie is cleared regardless; this makes
	// the leaked sessions countable.
	LogoutFailures *atomic.Int64
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// NewServices wires repositories, stores, and adapters into the
// application services.
func NewServices(deps *ServiceDeps) ServiceContainer {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cfg := deps.Config

	userRepo := data.NewUserRepo(deps.DB)
	carRepo := data.NewCarRepo(deps.DB)
	buildListRepo := data.NewBuildListRepo(deps.DB)
	partRepo := data.NewPartRepo(deps.DB)

	sessions := redisadapter.NewSessionStore(deps.RedisClient)
	tokens := redisadapter.NewTokenStore(deps.RedisClient)
	hasher := password.NewHasher(cfg.Auth.BcryptCost)
	images := imageurl.NewValidator(cfg.Images.AllowedHosts)
	mailer := buildMailer(logger, cfg)

	logoutFailures := &atomic.Int64{}

	auth := service.NewAuthService(service.AuthServiceOptions{
		Users:          userRepo,
		Sessions:       sessions,
		Tokens:         tokens,
		Hasher:         hasher,
		Mailer:         mailer,
		Logger:         logger,
		SessionTTL:     cfg.Auth.SessionTTL,
		VerifyTokenTTL: cfg.Auth.VerifyTokenTTL,
		ResetTokenTTL:  cfg.Auth.ResetTokenTTL,
		BaseURL:        cfg.HTTP.BaseURL,
		OnLogoutError: func(string, error) {
			logoutFailures.Add(1)
		},
	})

	return ServiceContainer{
		Auth:           auth,
		Users:          service.NewUserService(service.UserServiceOptions{Users: userRepo, Hasher: hasher, Images: images}),
		Cars:           service.NewCarService(service.CarServiceOptions{Cars: carRepo, Images: images}),
		BuildLists:     service.NewBuildListService(service.BuildListServiceOptions{BuildLists: buildListRepo, Cars: carRepo, Images: images}),
		Parts:          service.NewPartService(service.PartServiceOptions{Parts: partRepo, BuildLists: buildListRepo, Cars: carRepo, Images: images}),
		LogoutFailures: logoutFailures,
	}
}

// buildMailer picks the outgoing mail adapter. Development mode and a
// missing SMTP host both fall back to logging the links instead of
// sending them.
//
//nolint:ireturn // the mailer port hides the adapter choice from services.
func buildMailer(logger *slog.Logger, cfg *config.AppConfig) ports.Mailer {
	if cfg.IsDev || !cfg.Mail.Enabled() {
		logger.Info("using log mailer", "reason", mailerFallbackReason(cfg))
		return mailadapter.NewLogMailer(logger)
	}
	return mailadapter.NewSMTPMailer(cfg.Mail)
}

func mailerFallbackReason(cfg *config.AppConfig) string {
	if cfg.IsDev {
		return "development mode"
	}
	return "no SMTP host configured"
}
