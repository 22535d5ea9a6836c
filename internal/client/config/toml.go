package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/dmitrijs2005/solarplan/internal/flagx"
	"github.com/dmitrijs2005/solarplan/internal/timex"
)

// TomlConfig is the on-disk shape of the config file. Absent keys leave
// the current value alone.
type TomlConfig struct {
	ServerURL      *string         `toml:"server_url"`
	RequestTimeout *timex.Duration `toml:"request_timeout"`
	HistoryLimit   *int            `toml:"history_limit"`
	NoColor        *bool           `toml:"no_color"`
}

// parseToml overlays cfg with the file named by -c/-config. Unreadable or
// invalid files panic.
func parseToml(cfg *Config) {
	path := flagx.ConfigFileFlag(os.Args[1:])
	if path == "" {
		return
	}

	var tc TomlConfig
	if _, err := toml.DecodeFile(path, &tc); err != nil {
		panic(err)
	}

	if tc.ServerURL != nil {
		cfg.ServerURL = *tc.ServerURL
	}
	if tc.RequestTimeout != nil {
		cfg.RequestTimeout = tc.RequestTimeout.Duration
	}
	if tc.HistoryLimit != nil {
		cfg.HistoryLimit = *tc.HistoryLimit
	}
	if tc.NoColor != nil {
		cfg.NoColor = *tc.NoColor
	}
}
