package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("json", func(t *testing.T) {
		path := writeTempJSON(t, dir, "blog.json", map[string]any{
			"latency_scale":            0.25,
			"default_teacher_password": "abc",
			"session_ttl":              "90s",
			"seed":                     false,
			"log_format":               "json",
		})

		cfg := defaults()
		require.NoError(t, parseFile(&cfg, []string{"-config", path}))

		assert.Equal(t, 0.25, cfg.LatencyScale)
		assert.Equal(t, "abc", cfg.DefaultTeacherPassword)
		assert.Equal(t, 90*time.Second, cfg.SessionTTL)
		assert.False(t, cfg.Seed)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "edublog-dev-secret", cfg.SessionSecret, "absent keys keep their value")
	})

	t.Run("yml with nanoseconds", func(t *testing.T) {
		path := filepath.Join(dir, "blog.yml")
		require.NoError(t, os.WriteFile(path, []byte("session_ttl: 2000000000\nlog_backend: zerolog\n"), 0o600))

		cfg := defaults()
		require.NoError(t, parseFile(&cfg, []string{"-c", path}))

		assert.Equal(t, 2*time.Second, cfg.SessionTTL)
		assert.Equal(t, "zerolog", cfg.LogBackend)
	})

	t.Run("no flag, no changes", func(t *testing.T) {
		cfg := defaults()
		require.NoError(t, parseFile(&cfg, []string{"-l", "0"}))
		assert.Equal(t, defaults(), cfg)
	})

	t.Run("invalid json", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		cfg := defaults()
		require.Error(t, parseFile(&cfg, []string{"-config", bad}))
	})
}
