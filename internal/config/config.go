package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	Secret     string `yaml:"secret"`
	Issuer     string `yaml:"issuer"`
	SessionTTL string `yaml:"session_ttl"`
}

type ElectionConfig struct {
	AdminPassword string `yaml:"admin_password"`
	ResultsCode   string `yaml:"results_code"`
	RelyingParty  string `yaml:"relying_party"`
}

type TwilioConfig struct {
	AccountSID string `yaml:"account_sid"`
	AuthToken  string `yaml:"auth_token"`
	FromNumber string `yaml:"from_number"`
}

type CasbinConfig struct {
	ModelPath string `yaml:"model_path"`
}

type ConfigFile struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	JWT      JWTConfig      `yaml:"jwt"`
	Election ElectionConfig `yaml:"election"`
	Twilio   TwilioConfig   `yaml:"twilio"`
	Casbin   CasbinConfig   `yaml:"casbin"`
}

type Config struct {
	Port            string
	GinMode         string
	DSN             string
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	JWTSecret       string
	JWTIssuer       string
	SessionTTL      time.Duration
	AdminPassword   string
	ResultsCode     string
	RelyingParty    string
	TwilioSID       string
	TwilioToken     string
	TwilioFrom      string
	CasbinModelPath string
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads config/config.yml, applies environment overrides and fills in
// the demo defaults. The admin password and results code default to the
// original portal's fixed values; they are deployment knobs, not secrets
// managed with any care.
func Load() (*Config, error) {
	_ = godotenv.Load()

	configFile, err := loadConfigFile("config/config.yml")
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
		configFile = &ConfigFile{}
	}

	port := configFile.App.Port
	if port == 0 {
		port = 8080
	}

	ttlStr := env("SESSION_TTL", configFile.JWT.SessionTTL)
	if ttlStr == "" {
		ttlStr = "1h"
	}
	sessionTTL, err := time.ParseDuration(ttlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid session TTL: %w", err)
	}

	modelPath := env("CASBIN_MODEL_PATH", configFile.Casbin.ModelPath)
	if modelPath == "" {
		modelPath = "config/casbin_model.conf"
	}

	return &Config{
		Port:            env("PORT", fmt.Sprintf("%d", port)),
		GinMode:         env("GIN_MODE", configFile.App.GinMode),
		DSN:             env("DATABASE_DSN", orDefault(configFile.Database.DSN, "evoting.db")),
		RedisAddr:       env("REDIS_ADDR", configFile.Redis.Addr),
		RedisPassword:   env("REDIS_PASSWORD", configFile.Redis.Password),
		RedisDB:         configFile.Redis.DB,
		JWTSecret:       env("JWT_SECRET", orDefault(configFile.JWT.Secret, "dev_secret_change_me")),
		JWTIssuer:       env("JWT_ISSUER", orDefault(configFile.JWT.Issuer, "evoting")),
		SessionTTL:      sessionTTL,
		AdminPassword:   env("ADMIN_PASSWORD", orDefault(configFile.Election.AdminPassword, "admin")),
		ResultsCode:     env("RESULTS_CODE", orDefault(configFile.Election.ResultsCode, "1234")),
		RelyingParty:    env("RELYING_PARTY", orDefault(configFile.Election.RelyingParty, "E-Voting System")),
		TwilioSID:       env("TWILIO_ACCOUNT_SID", configFile.Twilio.AccountSID),
		TwilioToken:     env("TWILIO_AUTH_TOKEN", configFile.Twilio.AuthToken),
		TwilioFrom:      env("TWILIO_FROM_NUMBER", configFile.Twilio.FromNumber),
		CasbinModelPath: modelPath,
	}, nil
}

func orDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}
	return &config, nil
}
