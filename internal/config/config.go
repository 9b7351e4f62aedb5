// Package config provides configuration loading and management for the sync pipeline.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultEndpoint is the base URL of the clinicaltrials.gov v2 API
	DefaultEndpoint = "https://clinicaltrials.gov/api/v2"

	// DefaultSponsorClass restricts the sync to industry-sponsored trials
	DefaultSponsorClass = "INDUSTRY"

	// DefaultPageSize is the number of studies requested per page
	DefaultPageSize = 1000

	// MaxPageSize is the largest page size the registry accepts
	MaxPageSize = 1000

	// DefaultLookback is the watermark fallback window for an empty store
	DefaultLookback = 7 * 24 * time.Hour

	// DefaultRequestTimeout bounds a single registry API call
	DefaultRequestTimeout = 30 * time.Second
)

// Option defines the interface for configuration options
type Option func(*loaderConfig) error

// loaderConfig defines the configuration for loading a configuration
type loaderConfig struct {
	path string
}

// WithConfigPath loads configuration from a YAML file
func WithConfigPath(path string) Option {
	return func(cfg *loaderConfig) error {
		if path == "" {
			return fmt.Errorf("path is required")
		}

		// Resolve symlinks to prevent symlink attacks.
		// Note that this calls filepath.Clean internally.
		realPath, err := filepath.EvalSymlinks(path)
		if err != nil {
			return fmt.Errorf("failed to evaluate symlinks: %w", err)
		}

		// Validate the path to prevent path traversal attacks
		if !filepath.IsAbs(realPath) {
			if !filepath.IsLocal(realPath) {
				return fmt.Errorf("path is not local or contains invalid traversal: %s", path)
			}
		}

		cfg.path = realPath
		return nil
	}
}

// Config represents the root configuration structure
type Config struct {
	Registry RegistryConfig  `yaml:"registry"`
	Sync     SyncConfig      `yaml:"sync,omitempty"`
	Database *DatabaseConfig `yaml:"database"`
}

// RegistryConfig defines the trial registry API source settings
type RegistryConfig struct {
	// Endpoint is the base API URL (without path), e.g. https://clinicaltrials.gov/api/v2
	Endpoint string `yaml:"endpoint,omitempty"`

	// SponsorClass filters trials by lead sponsor class (e.g. INDUSTRY)
	SponsorClass string `yaml:"sponsorClass,omitempty"`

	// PageSize is the number of studies requested per page (bounded by MaxPageSize)
	PageSize int `yaml:"pageSize,omitempty"`

	// Timeout bounds a single API request (e.g. "30s")
	Timeout string `yaml:"timeout,omitempty"`
}

// SyncConfig defines synchronization settings
type SyncConfig struct {
	// Lookback is the watermark window used when the store is empty (e.g. "168h")
	Lookback string `yaml:"lookback,omitempty"`

	// Interval is the period between runs in daemon mode (e.g. "24h")
	Interval string `yaml:"interval,omitempty"`
}

// DatabaseConfig defines database connection settings
type DatabaseConfig struct {
	// Host is the database server hostname or IP address
	Host string `yaml:"host"`

	// Port is the database server port
	Port int `yaml:"port"`

	// User is the database username
	User string `yaml:"user"`

	// PasswordFile is the path to a file containing the database password.
	// This is the recommended approach for production deployments.
	PasswordFile string `yaml:"passwordFile,omitempty"`

	// Database is the database name
	Database string `yaml:"database"`

	// SSLMode is the SSL mode for the connection (disable, require, verify-ca, verify-full)
	SSLMode string `yaml:"sslMode,omitempty"`

	// MaxOpenConns is the maximum number of open connections to the database
	MaxOpenConns int32 `yaml:"maxOpenConns,omitempty"`

	// ConnMaxLifetime is the maximum lifetime of a connection (e.g., "1h", "30m")
	ConnMaxLifetime string `yaml:"connMaxLifetime,omitempty"`
}

// GetEndpoint returns the registry endpoint with the trailing slash trimmed,
// defaulting to the public clinicaltrials.gov v2 API.
func (r *RegistryConfig) GetEndpoint() string {
	if r.Endpoint == "" {
		return DefaultEndpoint
	}
	return strings.TrimRight(r.Endpoint, "/")
}

// GetSponsorClass returns the configured sponsor class filter.
func (r *RegistryConfig) GetSponsorClass() string {
	if r.SponsorClass == "" {
		return DefaultSponsorClass
	}
	return r.SponsorClass
}

// GetPageSize returns the configured page size clamped to the registry maximum.
func (r *RegistryConfig) GetPageSize() int {
	if r.PageSize <= 0 {
		return DefaultPageSize
	}
	if r.PageSize > MaxPageSize {
		return MaxPageSize
	}
	return r.PageSize
}

// GetTimeout returns the per-request timeout.
func (r *RegistryConfig) GetTimeout() time.Duration {
	if r.Timeout == "" {
		return DefaultRequestTimeout
	}
	d, err := time.ParseDuration(r.Timeout)
	if err != nil {
		return DefaultRequestTimeout
	}
	return d
}

// GetLookback returns the empty-store watermark window.
func (s *SyncConfig) GetLookback() time.Duration {
	if s.Lookback == "" {
		return DefaultLookback
	}
	d, err := time.ParseDuration(s.Lookback)
	if err != nil {
		return DefaultLookback
	}
	return d
}

// GetInterval returns the daemon-mode sync interval, or zero if not configured.
func (s *SyncConfig) GetInterval() time.Duration {
	if s.Interval == "" {
		return 0
	}
	d, err := time.ParseDuration(s.Interval)
	if err != nil {
		return 0
	}
	return d
}

// GetPassword returns the database password using the following priority:
// 1. Read from PasswordFile if specified
// 2. Read from CTGOV_DATABASE_PASSWORD environment variable
//
// The password from file will have leading/trailing whitespace trimmed.
func (d *DatabaseConfig) GetPassword() (string, error) {
	// Priority 1: Read from file if specified
	if d.PasswordFile != "" {
		// Use filepath.Clean to prevent path traversal attacks
		cleanPath := filepath.Clean(d.PasswordFile)

		data, err := os.ReadFile(cleanPath)
		if err != nil {
			return "", fmt.Errorf("failed to read password from file %s: %w", d.PasswordFile, err)
		}

		// Trim whitespace (including newlines) from file content
		return strings.TrimSpace(string(data)), nil
	}

	// Priority 2: Check environment variable
	if envPassword := os.Getenv("CTGOV_DATABASE_PASSWORD"); envPassword != "" {
		return envPassword, nil
	}

	return "", fmt.Errorf(
		"no database password configured: set passwordFile or CTGOV_DATABASE_PASSWORD environment variable",
	)
}

// GetConnectionString builds a PostgreSQL connection string with proper password handling.
// The password is URL-escaped to handle special characters safely.
func (d *DatabaseConfig) GetConnectionString() (string, error) {
	password, err := d.GetPassword()
	if err != nil {
		return "", err
	}

	sslMode := d.SSLMode
	if sslMode == "" {
		sslMode = "require"
	}

	// URL-escape the password to handle special characters
	escapedPassword := url.QueryEscape(password)

	connString := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User,
		escapedPassword,
		d.Host,
		d.Port,
		d.Database,
		sslMode,
	)

	return connString, nil
}

// LoadConfig loads and parses configuration from a YAML file
func LoadConfig(opts ...Option) (*Config, error) {
	loaderCfg := &loaderConfig{}
	for _, opt := range opts {
		if err := opt(loaderCfg); err != nil {
			return nil, err
		}
	}

	// As of now, this is required because there's no other options to load
	// configuration. Once we add more options, we can remove this check.
	if loaderCfg.path == "" {
		return nil, fmt.Errorf("path is required")
	}

	// Read the entire file into memory
	data, err := os.ReadFile(loaderCfg.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML content
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}

	// Validate the config
	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	if c == nil {
		return fmt.Errorf("config cannot be nil")
	}

	if err := c.validateRegistry(); err != nil {
		return err
	}

	if err := c.validateSync(); err != nil {
		return err
	}

	return c.validateDatabase()
}

func (c *Config) validateRegistry() error {
	if c.Registry.Endpoint != "" {
		parsed, err := url.Parse(c.Registry.Endpoint)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("registry.endpoint must be an absolute URL, got %q", c.Registry.Endpoint)
		}
	}

	if c.Registry.PageSize < 0 {
		return fmt.Errorf("registry.pageSize must be positive, got %d", c.Registry.PageSize)
	}
	if c.Registry.PageSize > MaxPageSize {
		return fmt.Errorf("registry.pageSize must not exceed %d, got %d", MaxPageSize, c.Registry.PageSize)
	}

	if c.Registry.Timeout != "" {
		if _, err := time.ParseDuration(c.Registry.Timeout); err != nil {
			return fmt.Errorf("registry.timeout must be a valid duration (e.g. '30s'): %w", err)
		}
	}

	return nil
}

func (c *Config) validateSync() error {
	if c.Sync.Lookback != "" {
		if _, err := time.ParseDuration(c.Sync.Lookback); err != nil {
			return fmt.Errorf("sync.lookback must be a valid duration (e.g. '168h'): %w", err)
		}
	}
	if c.Sync.Interval != "" {
		if _, err := time.ParseDuration(c.Sync.Interval); err != nil {
			return fmt.Errorf("sync.interval must be a valid duration (e.g. '24h'): %w", err)
		}
	}
	return nil
}

func (c *Config) validateDatabase() error {
	if c.Database == nil {
		return fmt.Errorf("database configuration is required")
	}
	if c.Database.Host == "" {
		return fmt.Errorf("database.host is required")
	}
	if c.Database.Port == 0 {
		return fmt.Errorf("database.port is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("database.user is required")
	}
	if c.Database.Database == "" {
		return fmt.Errorf("database.database is required")
	}
	if c.Database.ConnMaxLifetime != "" {
		if _, err := time.ParseDuration(c.Database.ConnMaxLifetime); err != nil {
			return fmt.Errorf("database.connMaxLifetime must be a valid duration: %w", err)
		}
	}
	return nil
}
