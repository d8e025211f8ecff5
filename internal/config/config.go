package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// CORSConfig lists the CORS headers sent on every response
type CORSConfig struct {
	AllowedOrigins string `yaml:"allowedOrigins"`
	AllowedMethods string `yaml:"allowedMethods"`
	AllowedHeaders string `yaml:"allowedHeaders"`
}

// Config is the service configuration
type Config struct {
	HTTPPort      string        `yaml:"httpPort"`
	MongoURI      string        `yaml:"mongoUri"` // Empty uses the built-in advice catalog
	MongoDatabase string        `yaml:"mongoDatabase"`
	RedisAddr     string        `yaml:"redisAddr"` // Empty keeps sessions in memory
	PublicBaseURL string        `yaml:"publicBaseUrl"`
	ShareSecret   string        `yaml:"-"`
	ShareTTL      time.Duration `yaml:"shareTtl"`
	SessionTTL    time.Duration `yaml:"sessionTtl"`
	LogLevel      string        `yaml:"logLevel"`
	CORS          CORSConfig    `yaml:"cors"`
	AI            AIConfig      `yaml:"ai"`
	Mail          MailConfig    `yaml:"mail"`
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	return &Config{
		HTTPPort:      "8080",
		MongoDatabase: "moneybrief",
		PublicBaseURL: "http://localhost:3000",
		ShareTTL:      30 * 24 * time.Hour,
		SessionTTL:    30 * time.Minute,
		LogLevel:      "info",
		CORS: CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET, POST, PUT, DELETE, OPTIONS",
			AllowedHeaders: "Content-Type, Authorization",
		},
		AI:   DefaultAIConfig(),
		Mail: DefaultMailConfig(),
	}
}

// Load builds the configuration from defaults, then the YAML file at path
// (if any), then environment variables
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	c.HTTPPort = getEnv("PORT", c.HTTPPort)
	c.MongoURI = getEnv("MONGO_URI", c.MongoURI)
	c.MongoDatabase = getEnv("MONGO_DATABASE", c.MongoDatabase)
	c.RedisAddr = strings.TrimPrefix(getEnv("REDIS_URI", c.RedisAddr), "redis://")
	c.PublicBaseURL = strings.TrimSuffix(getEnv("PUBLIC_BASE_URL", c.PublicBaseURL), "/")
	c.ShareSecret = getEnv("SHARE_SECRET", c.ShareSecret)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.CORS.AllowedOrigins = getEnv("CORS_ALLOWED_ORIGINS", c.CORS.AllowedOrigins)
	c.CORS.AllowedMethods = getEnv("CORS_ALLOWED_METHODS", c.CORS.AllowedMethods)
	c.CORS.AllowedHeaders = getEnv("CORS_ALLOWED_HEADERS", c.CORS.AllowedHeaders)

	var err error
	if c.ShareTTL, err = getEnvDuration("SHARE_TTL", c.ShareTTL); err != nil {
		return err
	}
	if c.SessionTTL, err = getEnvDuration("SESSION_TTL", c.SessionTTL); err != nil {
		return err
	}

	c.AI.applyEnv()
	c.Mail.applyEnv()
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return v
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
