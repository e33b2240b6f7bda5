package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[upstream]
base_url = "https://survey.example.com"
token = "secret"
timeout = 5

[logs]
level = "debug"

[rate_limit]
rps = 2.5
burst = 5
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "https://survey.example.com", cfg.Upstream.BaseURL)
	assert.Equal(t, "secret", cfg.Upstream.Token)
	assert.Equal(t, 5, cfg.Upstream.Timeout)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.Equal(t, 2.5, cfg.RateLimit.RPS)

	// Не заданные секции получают значения по умолчанию
	assert.Equal(t, 15, cfg.Server.ReadTimeout)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 10, cfg.Surveyors.Count)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{name: "bad port", content: "[server]\nhttp_port = 0\n"},
		{name: "bad upstream timeout", content: "[upstream]\ntimeout = -1\n"},
		{name: "bad surveyor count", content: "[surveyors]\ncount = 0\n"},
		{name: "bad rate limit", content: "[rate_limit]\nrps = 0.0\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.content))
			assert.Error(t, err)
		})
	}
}
