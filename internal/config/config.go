// Pitwall - Motorsport Analytics and Race Outcome Prediction
// Copyright 2026 ApexGrid
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/apexgrid/pitwall

// Package config loads and validates the Pitwall configuration.
//
// Configuration is layered with Koanf v2: built-in defaults, then an optional
// YAML config file, then environment variables. Environment variables use the
// PITWALL_ prefix and map section_key to section.key, e.g.
// PITWALL_DATABASE_DSN overrides database.dsn.
package config

import (
	"time"
)

// Config is the root configuration for the application.
type Config struct {
	Database DatabaseConfig `koanf:"database"`
	Server   ServerConfig   `koanf:"server"`
	Cache    CacheConfig    `koanf:"cache"`
	Models   ModelsConfig   `koanf:"models"`
	Cluster  ClusterConfig  `koanf:"cluster"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// DatabaseConfig configures access to the historical results store.
type DatabaseConfig struct {
	// DSN is the PostgreSQL connection string. Required.
	DSN string `koanf:"dsn" validate:"required"`

	// MaxConns caps the pgx pool size. 0 lets pgx pick its default.
	MaxConns int32 `koanf:"max_conns" validate:"gte=0"`

	// QueryTimeout bounds a single catalog query when the caller's context
	// carries no deadline of its own.
	QueryTimeout time.Duration `koanf:"query_timeout" validate:"gt=0"`
}

// ServerConfig configures the HTTP API surface.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port" validate:"gt=0,lte=65535"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	// RateLimitReqs requests per RateLimitWindow per client IP.
	RateLimitReqs   int           `koanf:"rate_limit_reqs"`
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`

	CORSOrigins []string `koanf:"cors_origins"`

	// PredictWorkers is the size of the background prediction worker pool.
	PredictWorkers int `koanf:"predict_workers" validate:"gt=0"`
}

// CacheConfig configures the query memoization cache.
type CacheConfig struct {
	// TTL is the entry lifetime. 0 keeps entries for the process lifetime,
	// which is the correct setting for the static historical dataset.
	TTL time.Duration `koanf:"ttl" validate:"gte=0"`
}

// ModelsConfig configures the model artifact store.
type ModelsConfig struct {
	// Dir is the local directory scanned for serialized model bundles.
	Dir string `koanf:"dir" validate:"required"`

	// RemoteBaseURL, when set, is tried for bundles not present locally.
	RemoteBaseURL string `koanf:"remote_base_url" validate:"omitempty,url"`

	// FetchTimeout bounds a single remote bundle fetch.
	FetchTimeout time.Duration `koanf:"fetch_timeout" validate:"gt=0"`

	// FetchRetries is how many times a failed remote fetch is retried
	// before the error is surfaced.
	FetchRetries int `koanf:"fetch_retries" validate:"gte=0"`
}

// ClusterConfig configures the PCA + k-means pipeline.
type ClusterConfig struct {
	// Components is the number of principal components retained.
	Components int `koanf:"components" validate:"gt=1"`

	// Clusters is the fixed k for k-means.
	Clusters int `koanf:"clusters" validate:"gt=1"`

	// Seed fixes the k-means initialization for deterministic assignments.
	Seed int64 `koanf:"seed"`
}

// LoggingConfig configures the global logger.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error fatal disabled"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// defaultConfig returns a Config with all default values applied. Defaults are
// loaded first and then overridden by the config file and environment.
func defaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:          "",
			MaxConns:     0, // pgx default (4 * NumCPU)
			QueryTimeout: 30 * time.Second,
		},
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8099,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
			CORSOrigins:     []string{"*"},
			PredictWorkers:  2,
		},
		Cache: CacheConfig{
			TTL: 0, // process lifetime: the dataset is static
		},
		Models: ModelsConfig{
			Dir:           "/data/models",
			RemoteBaseURL: "",
			FetchTimeout:  15 * time.Second,
			FetchRetries:  2,
		},
		Cluster: ClusterConfig{
			Components: 4,
			Clusters:   4,
			Seed:       42,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}
