package app

import (
	"time"

	"github.com/yungbote/careerhub-backend/internal/data/db"
	"github.com/yungbote/careerhub-backend/internal/platform/envutil"
	"github.com/yungbote/careerhub-backend/internal/platform/logger"
	"github.com/yungbote/careerhub-backend/internal/platform/session"
)

const defaultSessionSecret = "careerhub-dev-session-secret-change-me"

type Config struct {
	Port        string
	Environment string
	Version     string
	ServiceName string

	DB db.Config

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	Session session.Config

	CORSOrigins    []string
	TrustedProxies []string

	AuthRateRPS   float64
	AuthRateBurst int
	BcryptCost    int

	ShutdownGrace time.Duration
}

func LoadConfig(log *logger.Logger) Config {
	cfg := Config{
		Port:        envutil.String("PORT", "5000"),
		Environment: envutil.String("APP_ENV", "development"),
		Version:     envutil.String("APP_VERSION", "dev"),
		ServiceName: envutil.String("OTEL_SERVICE_NAME", "careerhub"),

		DB: db.ConfigFromEnv(),

		RedisAddr:     envutil.String("REDIS_ADDR", ""),
		RedisPassword: envutil.String("REDIS_PASSWORD", ""),
		RedisDB:       envutil.Int("REDIS_DB", 0),

		Session: session.Config{
			Name:   envutil.String("SESSION_NAME", "careerhub.sid"),
			Secret: envutil.String("SESSION_SECRET", defaultSessionSecret),
			MaxAge: envutil.Int("SESSION_MAX_AGE", 7*24*60*60),
			Secure: envutil.Bool("SESSION_SECURE", false),
		},

		CORSOrigins:    envutil.List("CORS_ALLOWED_ORIGINS", nil),
		TrustedProxies: envutil.List("TRUSTED_PROXIES", nil),

		AuthRateRPS:   envutil.Float("AUTH_RATE_LIMIT_RPS", 1),
		AuthRateBurst: envutil.Int("AUTH_RATE_LIMIT_BURST", 10),
		BcryptCost:    envutil.Int("BCRYPT_COST", 0),
	}
	if cfg.Session.Secret == defaultSessionSecret {
		log.Warn("SESSION_SECRET not set, using development secret")
	}
	return cfg
}
