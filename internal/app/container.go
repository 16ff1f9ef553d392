package app

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/akhhatar/e-voting-project/domain"
	"github.com/akhhatar/e-voting-project/internal/config"
	"github.com/akhhatar/e-voting-project/internal/infrastructure/auth"
	"github.com/akhhatar/e-voting-project/internal/infrastructure/ceremony"
	"github.com/akhhatar/e-voting-project/internal/infrastructure/notifications"
	"github.com/akhhatar/e-voting-project/internal/infrastructure/repositories"
	"github.com/akhhatar/e-voting-project/internal/infrastructure/storage"
	"github.com/akhhatar/e-voting-project/internal/services"
)

// Container holds all dependencies
type Container struct {
	Config *config.Config

	DB          *gorm.DB
	RedisClient *redis.Client
	Casbin      *auth.CasbinService

	Store       domain.ElectionStore
	SessionRepo domain.SessionRepository

	PasswordSvc     domain.PasswordService
	TokenSvc        domain.TokenService
	NotificationSvc domain.NotificationService
	Ceremony        domain.CredentialCeremony
	VoterSvc        domain.VoterService
	VotingSvc       domain.VotingService
	AdminSvc        domain.AdminService
	PolicySvc       domain.PolicyService
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	db, err := storage.Open(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	c.DB = db

	store, err := storage.NewGormStore(db)
	if err != nil {
		return nil, fmt.Errorf("failed to build election store: %w", err)
	}
	if err := store.Init(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to seed election store: %w", err)
	}
	c.Store = store

	cas, err := auth.NewCasbinService(db, cfg.CasbinModelPath)
	if err != nil {
		return nil, fmt.Errorf("failed to build casbin enforcer: %w", err)
	}
	cas.SeedDefaultPolicies()
	c.Casbin = cas

	// Sessions fall back to process memory when no redis is configured;
	// they are ephemeral either way.
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			return nil, fmt.Errorf("failed to reach redis: %w", err)
		}
		c.RedisClient = rdb
		c.SessionRepo = repositories.NewSessionRepository(rdb, cfg.SessionTTL)
	} else {
		c.SessionRepo = repositories.NewMemorySessionRepository()
	}

	c.PasswordSvc = auth.NewPasswordService()
	c.TokenSvc = auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.SessionTTL)
	c.NotificationSvc = notifications.NewTwilioService(cfg.TwilioSID, cfg.TwilioToken, cfg.TwilioFrom)
	c.Ceremony = ceremony.NewLocalAuthenticator()
	c.PolicySvc = services.NewPolicyService(cas.E)

	c.VoterSvc = services.NewVoterService(c.Store, c.SessionRepo, c.PasswordSvc, c.TokenSvc, c.Ceremony, cfg.RelyingParty, cfg.SessionTTL)
	c.VotingSvc = services.NewVotingService(c.Store, c.Ceremony)
	c.AdminSvc = services.NewAdminService(c.Store, c.SessionRepo, c.TokenSvc, c.NotificationSvc, cfg.AdminPassword, cfg.ResultsCode, cfg.SessionTTL)

	return c, nil
}
