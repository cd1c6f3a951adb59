// Package config loads the server configuration from a TOML file.
package config

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the full server configuration.
type Config struct {
	Addr     string         `toml:"addr"`
	Database DatabaseConfig `toml:"database"`
	Auth     AuthConfig     `toml:"auth"`
	Exchange ExchangeConfig `toml:"exchange"`
}

// DatabaseConfig holds the paths of the two store files.
type DatabaseConfig struct {
	RecordsPath string `toml:"records_path"`
	MediaPath   string `toml:"media_path"`
}

// AuthConfig holds the signing key, token lifetime and the fixed user list.
type AuthConfig struct {
	JWTSecret string `toml:"jwt_secret"`
	Users     []User `toml:"users"`

	AccessTTL time.Duration `toml:"-"`
	// Raw string value for TOML unmarshaling.
	AccessTTLRaw string `toml:"access_ttl"`
}

// User is one back-office login. Credentials are compared in plaintext; the
// list is mutable in memory only for the lifetime of the process.
type User struct {
	ID       string `toml:"id"`
	Username string `toml:"username"`
	Password string `toml:"password"`
	Name     string `toml:"name"`
	Role     string `toml:"role"`
}

// ExchangeConfig holds the GBP->BRL rate lookup settings.
type ExchangeConfig struct {
	URL          string  `toml:"url"`
	FallbackRate float64 `toml:"fallback_rate"`

	CacheTTL time.Duration `toml:"-"`
	// Raw string value for TOML unmarshaling.
	CacheTTLRaw string `toml:"cache_ttl"`
}

// Load reads a configuration file, expands ${VAR} environment references,
// applies defaults and validates.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal([]byte(expandEnvVars(string(data))), cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.finish(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the configuration used before the file overrides it.
func Default() *Config {
	return &Config{
		Addr: ":8080",
		Database: DatabaseConfig{
			RecordsPath: "data/flats.db",
			MediaPath:   "data/media.db",
		},
		Auth: AuthConfig{AccessTTLRaw: "12h"},
		Exchange: ExchangeConfig{
			URL:          "https://api.exchangerate-api.com/v4/latest/GBP",
			FallbackRate: 7.2,
			CacheTTLRaw:  "1h",
		},
	}
}

func (c *Config) finish() error {
	ttl, err := time.ParseDuration(c.Auth.AccessTTLRaw)
	if err != nil {
		return fmt.Errorf("parsing auth.access_ttl: %w", err)
	}
	c.Auth.AccessTTL = ttl

	cache, err := time.ParseDuration(c.Exchange.CacheTTLRaw)
	if err != nil {
		return fmt.Errorf("parsing exchange.cache_ttl: %w", err)
	}
	c.Exchange.CacheTTL = cache

	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret is required")
	}
	if len(c.Auth.Users) == 0 {
		return fmt.Errorf("auth.users must list at least one user")
	}
	seen := map[string]bool{}
	for i, u := range c.Auth.Users {
		if u.ID == "" || u.Username == "" || u.Password == "" {
			return fmt.Errorf("auth.users[%d]: id, username and password are required", i)
		}
		if seen[u.ID] {
			return fmt.Errorf("auth.users[%d]: duplicate id %q", i, u.ID)
		}
		seen[u.ID] = true
	}
	return nil
}

var envVarPattern = regexp.MustCompile(`\$\{(\w+)\}`)

// expandEnvVars replaces ${VAR_NAME} references with environment values.
func expandEnvVars(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		name := envVarPattern.FindStringSubmatch(match)[1]
		if v, ok := os.LookupEnv(name); ok {
			return v
		}
		return match
	})
}
