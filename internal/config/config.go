package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Dataset source kinds.
const (
	SourceFile     = "file"
	SourceS3       = "s3"
	SourceRedis    = "redis"
	SourcePostgres = "postgres"
)

// Match modes.
const (
	MatchSubstring = "substring"
	MatchExact     = "exact"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string
	ViewsDir   string
	StaticDir  string

	// TLS
	TLSEnabled  bool
	TLSCertFile string
	TLSKeyFile  string
	TLSCAFile   string

	// CORS
	CORSOrigins string // Comma-separated allowed origins

	// Dataset
	DatasetSource string // file, s3, redis, postgres
	DatasetPath   string // env: DATASET_PATH, default: "data.csv" (relative to the working directory)

	S3Bucket          string
	S3Key             string
	S3Region          string
	S3Endpoint        string // S3-compatible endpoint, empty for AWS
	S3AccessKeyID     string
	S3SecretAccessKey string

	RedisURL string
	RedisKey string

	DatabaseURL string

	// Matching
	MatchMode   string // substring or exact
	MatchColumn int    // exact mode only, -1 compares every column

	// Site Branding
	SiteTitle   string
	SiteTagline string

	// Loaded from the optional YAML file
	YAML *YAMLConfig
}

// Load reads configuration from a .env file (if present), the optional YAML
// file and environment variables. Environment variables win over YAML.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: failed to load .env file: %v", err)
	}

	yc, err := LoadYAMLConfig()
	if err != nil {
		log.Printf("Warning: failed to load YAML config: %v", err)
	}

	return FromYAML(yc)
}

// FromYAML builds a Config from environment variables, falling back to the
// dataset settings in yc and then to built-in defaults.
func FromYAML(yc *YAMLConfig) *Config {
	ds := yc.dataset()

	return &Config{
		Env:        getEnv("ENV", "development"),
		ServerAddr: getEnv("SERVER_ADDR", ":3000"),
		BaseURL:    getEnv("BASE_URL", "http://localhost:3000"),
		ViewsDir:   getEnv("VIEWS_DIR", "./views"),
		StaticDir:  getEnv("STATIC_DIR", "./static"),

		TLSEnabled:  getEnv("TLS_ENABLED", "") != "",
		TLSCertFile: getEnv("TLS_CERT_FILE", ""),
		TLSKeyFile:  getEnv("TLS_KEY_FILE", ""),
		TLSCAFile:   getEnv("TLS_CA_FILE", ""),
		CORSOrigins: getEnv("CORS_ORIGINS", ""),

		DatasetSource: getEnv("DATASET_SOURCE", orDefault(ds.Source, SourceFile)),
		DatasetPath:   getEnv("DATASET_PATH", orDefault(ds.Path, "data.csv")),

		S3Bucket:          getEnv("S3_BUCKET", ds.S3.Bucket),
		S3Key:             getEnv("S3_KEY", orDefault(ds.S3.Key, "data.csv")),
		S3Region:          getEnv("S3_REGION", orDefault(ds.S3.Region, "us-east-1")),
		S3Endpoint:        getEnv("S3_ENDPOINT", ds.S3.Endpoint),
		S3AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", ""),
		S3SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", ""),

		RedisURL: getEnv("REDIS_URL", orDefault(ds.Redis.URL, "redis://localhost:6379/0")),
		RedisKey: getEnv("REDIS_KEY", orDefault(ds.Redis.Key, "matchmaker:dataset")),

		DatabaseURL: getEnv("DATABASE_URL", orDefault(ds.DatabaseURL, "postgres://localhost:5432/matchmaker?sslmode=disable")),

		MatchMode:   getEnv("MATCH_MODE", orDefault(yc.matching().Mode, MatchSubstring)),
		MatchColumn: getEnvInt("MATCH_COLUMN", yc.matchColumn()),

		SiteTitle:   getEnv("SITE_TITLE", "Matchmaking"),
		SiteTagline: getEnv("SITE_TAGLINE", "Enter your registered email to find your matches."),

		YAML: yc,
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Warning: invalid %s=%q, using %d", key, value, fallback)
		return fallback
	}
	return n
}

func orDefault(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// IsExactMatch returns true if lookups compare whole CSV fields instead of substrings.
func (c *Config) IsExactMatch() bool {
	return c.MatchMode == MatchExact
}
