package config

import (
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/edublog/internal/common"
)

// Config holds runtime settings for the EduBlog CLI.
//
// Fields:
//   - LatencyScale: multiplier for every simulated operation delay; 0 turns
//     suspension off.
//   - DefaultTeacherPassword: password given to teachers created at runtime.
//   - SessionSecret: HMAC key for session tokens (HS256). Empty means a
//     random key per process.
//   - SessionTTL: session token lifetime; 0 means sessions never expire.
//   - Seed: load the demo school at startup.
//   - LogLevel / LogFormat / LogBackend: see package logging.
type Config struct {
	LatencyScale           float64
	DefaultTeacherPassword string
	SessionSecret          string
	SessionTTL             time.Duration
	Seed                   bool
	LogLevel               string
	LogFormat              string
	LogBackend             string
}

// LoadDefaults populates c with development defaults.
func (c *Config) LoadDefaults() {
	c.LatencyScale = 1
	c.DefaultTeacherPassword = common.DefaultTeacherPassword
	c.SessionSecret = "edublog-dev-secret"
	c.SessionTTL = 0
	c.Seed = true
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.LogBackend = "slog"
}

// LoadConfig builds a Config from the process command line and environment.
func LoadConfig() (*Config, error) {
	return Load(os.Args[1:], os.LookupEnv)
}

// Load applies defaults, then the config file named by -c/-config, then the
// .env file and EDUBLOG_* variables, then flags. Later sources win.
// lookup reads the real environment; it takes precedence over .env.
func Load(args []string, lookup func(string) (string, bool)) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseFile(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, dotEnvFile, lookup); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.LatencyScale < 0 {
		return fmt.Errorf("latency scale must not be negative, got %v", c.LatencyScale)
	}
	if c.SessionTTL < 0 {
		return fmt.Errorf("session ttl must not be negative, got %s", c.SessionTTL)
	}
	switch c.LogBackend {
	case "slog", "zerolog":
	default:
		return fmt.Errorf("unknown log backend %q", c.LogBackend)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	return nil
}
