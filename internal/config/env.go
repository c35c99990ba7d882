package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	envPrefix  = "EDUBLOG_"
	dotEnvFile = ".env"
)

// parseEnv overlays cfg with EDUBLOG_* variables. Values come from lookup
// first and from the dotenv file second; a missing dotenv file is fine.
func parseEnv(cfg *Config, dotenvPath string, lookup func(string) (string, bool)) error {
	fileVars, err := godotenv.Read(dotenvPath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("read %s: %w", dotenvPath, err)
	}

	get := func(key string) (string, bool) {
		key = envPrefix + key
		if v, ok := lookup(key); ok {
			return v, true
		}
		v, ok := fileVars[key]
		return v, ok
	}

	if v, ok := get("LATENCY_SCALE"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%sLATENCY_SCALE: %w", envPrefix, err)
		}
		cfg.LatencyScale = f
	}
	if v, ok := get("DEFAULT_TEACHER_PASSWORD"); ok {
		cfg.DefaultTeacherPassword = v
	}
	if v, ok := get("SESSION_SECRET"); ok {
		cfg.SessionSecret = v
	}
	if v, ok := get("SESSION_TTL"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%sSESSION_TTL: %w", envPrefix, err)
		}
		cfg.SessionTTL = d
	}
	if v, ok := get("SEED"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sSEED: %w", envPrefix, err)
		}
		cfg.Seed = b
	}
	if v, ok := get("LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := get("LOG_FORMAT"); ok {
		cfg.LogFormat = v
	}
	if v, ok := get("LOG_BACKEND"); ok {
		cfg.LogBackend = v
	}
	return nil
}
