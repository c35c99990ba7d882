package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/edublog/internal/flagx"
	"github.com/dmitrijs2005/edublog/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is the DTO for JSON and YAML config files. Absent keys leave
// the current value untouched.
type FileConfig struct {
	LatencyScale           *float64        `json:"latency_scale" yaml:"latency_scale"`
	DefaultTeacherPassword *string         `json:"default_teacher_password" yaml:"default_teacher_password"`
	SessionSecret          *string         `json:"session_secret" yaml:"session_secret"`
	SessionTTL             *timex.Duration `json:"session_ttl" yaml:"session_ttl"`
	Seed                   *bool           `json:"seed" yaml:"seed"`
	LogLevel               *string         `json:"log_level" yaml:"log_level"`
	LogFormat              *string         `json:"log_format" yaml:"log_format"`
	LogBackend             *string         `json:"log_backend" yaml:"log_backend"`
}

// parseFile overlays cfg with the file named by -c/-config, if any.
func parseFile(cfg *Config, args []string) error {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	fc.apply(cfg)
	return nil
}

func (fc *FileConfig) apply(cfg *Config) {
	if fc.LatencyScale != nil {
		cfg.LatencyScale = *fc.LatencyScale
	}
	if fc.DefaultTeacherPassword != nil {
		cfg.DefaultTeacherPassword = *fc.DefaultTeacherPassword
	}
	if fc.SessionSecret != nil {
		cfg.SessionSecret = *fc.SessionSecret
	}
	if fc.SessionTTL != nil {
		cfg.SessionTTL = fc.SessionTTL.Duration
	}
	if fc.Seed != nil {
		cfg.Seed = *fc.Seed
	}
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}
	if fc.LogFormat != nil {
		cfg.LogFormat = *fc.LogFormat
	}
	if fc.LogBackend != nil {
		cfg.LogBackend = *fc.LogBackend
	}
}
