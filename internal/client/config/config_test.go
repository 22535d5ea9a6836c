package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"cmd"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func writeTempToml(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "client.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	c := &Config{}
	c.LoadDefaults()

	want := &Config{
		ServerURL:      "http://127.0.0.1:3000/api",
		RequestTimeout: 10 * time.Second,
		HistoryLimit:   50,
	}
	assert.Empty(t, cmp.Diff(want, c))
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		expected    *Config
		expectPanic bool
	}{
		{
			name:     "all flags",
			args:     []string{"-a", "http://10.0.0.2:3000/api", "-t", "3", "-n"},
			expected: &Config{ServerURL: "http://10.0.0.2:3000/api", RequestTimeout: 3 * time.Second, HistoryLimit: 50, NoColor: true},
		},
		{
			name:     "no flags keeps current values",
			args:     []string{"-c", "client.toml"},
			expected: &Config{ServerURL: "http://127.0.0.1:3000/api", RequestTimeout: 10 * time.Second, HistoryLimit: 50},
		},
		{
			name:        "bad timeout",
			args:        []string{"-t", "abc"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withArgs(t, tt.args...)

			cfg := &Config{}
			cfg.LoadDefaults()

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(cfg) })
				return
			}
			require.NotPanics(t, func() { parseFlags(cfg) })
			assert.Empty(t, cmp.Diff(tt.expected, cfg))
		})
	}
}

func TestParseToml(t *testing.T) {
	path := writeTempToml(t, `
server_url = "https://solar.example.com/api"
request_timeout = "1500ms"
no_color = true
`)
	withArgs(t, "-c", path)

	cfg := &Config{}
	cfg.LoadDefaults()
	parseToml(cfg)

	assert.Equal(t, "https://solar.example.com/api", cfg.ServerURL)
	assert.Equal(t, 1500*time.Millisecond, cfg.RequestTimeout)
	assert.Equal(t, 50, cfg.HistoryLimit, "absent key keeps default")
	assert.True(t, cfg.NoColor)
}

func TestParseToml_NoFile(t *testing.T) {
	withArgs(t)

	cfg := &Config{}
	cfg.LoadDefaults()
	parseToml(cfg)

	assert.Equal(t, "http://127.0.0.1:3000/api", cfg.ServerURL)
}

func TestParseToml_Invalid(t *testing.T) {
	withArgs(t, "-config", writeTempToml(t, `history_limit = "many"`))
	require.Panics(t, func() { parseToml(&Config{}) })

	withArgs(t, "-c", filepath.Join(t.TempDir(), "missing.toml"))
	require.Panics(t, func() { parseToml(&Config{}) })
}

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	path := writeTempToml(t, `
server_url = "https://from-file/api"
history_limit = 5
`)
	withArgs(t, "-c", path, "-a", "https://from-flag/api")

	cfg := LoadConfig()

	assert.Equal(t, "https://from-flag/api", cfg.ServerURL)
	assert.Equal(t, 5, cfg.HistoryLimit)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}
