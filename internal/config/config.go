// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the merged configuration of the finance tracker client.
// It is populated from environment variables (optionally seeded by a .env
// file), command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds client behaviour settings: entry URL, guest mode, paging and
	// logging.
	App App `envPrefix:"APP_"`

	// Adapter holds the backend address and outbound request settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local durable storage settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds background job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// EnvFilePath is the optional path to a dotenv file loaded into the
	// process environment before env variables are parsed.
	// Populated via the ENV_FILE environment variable or the -env-file flag.
	EnvFilePath string `env:"ENV_FILE"`
}

// App holds client-level behaviour settings.
type App struct {
	// EntryURL is the URL the client was "opened" with. A guest=true query
	// parameter forces guest mode on startup.
	// Env: APP_ENTRY_URL
	EntryURL string `env:"ENTRY_URL"`

	// Guest forces guest mode on startup, same as guest=true in EntryURL.
	// Env: APP_GUEST
	Guest bool `env:"GUEST"`

	// DemoDelay is the artificial latency applied to guest-mode demo data.
	// Env: APP_DEMO_DELAY
	DemoDelay time.Duration `env:"DEMO_DELAY"`

	// PageLimit is the number of records requested per list page.
	// Env: APP_PAGE_LIMIT
	PageLimit int `env:"PAGE_LIMIT"`

	// LogFile is the path of the client log file.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Adapter holds outbound HTTP settings.
type Adapter struct {
	// HTTPAddress is the base URL of the finance backend
	// (e.g. "http://localhost:3000").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RateLimit is the sustained number of requests per second the client
	// may send.
	// Env: ADAPTER_RATE_LIMIT
	RateLimit float64 `env:"RATE_LIMIT"`

	// RateBurst is the burst size of the outbound rate limiter.
	// Env: ADAPTER_RATE_BURST
	RateBurst int `env:"RATE_BURST"`
}

// Storage groups local storage settings.
type Storage struct {
	// DB holds the sqlite settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds the local sqlite database settings.
type DB struct {
	// DSN is the sqlite database file path (e.g. "finance_client.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Workers holds background job settings.
type Workers struct {
	// RefreshInterval is how often the token refresh job checks the access
	// token.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`

	// RefreshThreshold is how close to expiry an access token must be for
	// the job to refresh it.
	// Env: WORKERS_REFRESH_THRESHOLD
	RefreshThreshold time.Duration `env:"REFRESH_THRESHOLD"`
}

// Defaults returns the configuration used for every field no source sets.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			DemoDelay: 300 * time.Millisecond,
			PageLimit: 10,
			LogFile:   "finance_client.log",
		},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:3000",
			RequestTimeout: 15 * time.Second,
			RateLimit:      10,
			RateBurst:      20,
		},
		Storage: Storage{
			DB: DB{DSN: "finance_client.db"},
		},
		Workers: Workers{
			RefreshInterval:  time.Minute,
			RefreshThreshold: 2 * time.Minute,
		},
	}
}

// GetStructuredConfig loads and merges the configuration from all sources.
// Flags win over environment variables, which win over the JSON file, which
// wins over [Defaults]. The JSON path is resolved from flags and env.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(args).
		withDotEnv().
		withEnv().
		withJSON().
		build()
}
