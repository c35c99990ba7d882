package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	dir := t.TempDir()
	dotenv := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(dotenv, []byte(
		"# local overrides\nEDUBLOG_LATENCY_SCALE=0\nEDUBLOG_SESSION_TTL=5m\nEDUBLOG_SEED=false\nOTHER=1\n"), 0o600))

	cfg := defaults()
	err := parseEnv(&cfg, dotenv, envMap(map[string]string{
		"EDUBLOG_LATENCY_SCALE":            "2",
		"EDUBLOG_DEFAULT_TEACHER_PASSWORD": "env-pw",
	}))
	require.NoError(t, err)

	assert.Equal(t, 2.0, cfg.LatencyScale)
	assert.Equal(t, "env-pw", cfg.DefaultTeacherPassword)
	assert.Equal(t, 5*time.Minute, cfg.SessionTTL)
	assert.False(t, cfg.Seed)
}

func TestParseEnv_MissingDotenv(t *testing.T) {
	cfg := defaults()
	require.NoError(t, parseEnv(&cfg, filepath.Join(t.TempDir(), ".env"), noEnv))
	assert.Equal(t, defaults(), cfg)
}
