package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/solarplan/internal/flagx"
	"github.com/dmitrijs2005/solarplan/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Durations
// accept "5s"-style strings or integer nanoseconds. Absent keys leave the
// current value alone.
type JsonConfig struct {
	EndpointAddrHTTP        *string         `json:"endpoint_addr_http"`
	DatabaseDSN             *string         `json:"database_dsn"`
	DatabaseTLSMode         *string         `json:"database_tls_mode"`
	DatabaseCAFile          *string         `json:"database_ca_file"`
	DatabaseMaxConns        *int            `json:"database_max_conns"`
	DatabaseMaxIdleConns    *int            `json:"database_max_idle_conns"`
	DatabaseConnMaxLifetime *timex.Duration `json:"database_conn_max_lifetime"`
	QueryTimeout            *timex.Duration `json:"query_timeout"`
	ShutdownTimeout         *timex.Duration `json:"shutdown_timeout"`
	LogLevel                *string         `json:"log_level"`
}

// parseJson overlays config with the file named by -c/-config. Nothing
// happens when neither flag is given. Unreadable or invalid files panic.
func parseJson(config *Config) {
	path := flagx.ConfigFileFlag(os.Args[1:])
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var c JsonConfig
	if err := json.Unmarshal(data, &c); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.DatabaseTLSMode, c.DatabaseTLSMode)
	setString(&config.DatabaseCAFile, c.DatabaseCAFile)
	setString(&config.LogLevel, c.LogLevel)

	if c.DatabaseMaxConns != nil {
		config.DatabaseMaxConns = *c.DatabaseMaxConns
	}
	if c.DatabaseMaxIdleConns != nil {
		config.DatabaseMaxIdleConns = *c.DatabaseMaxIdleConns
	}
	if c.DatabaseConnMaxLifetime != nil {
		config.DatabaseConnMaxLifetime = c.DatabaseConnMaxLifetime.Duration
	}
	if c.QueryTimeout != nil {
		config.QueryTimeout = c.QueryTimeout.Duration
	}
	if c.ShutdownTimeout != nil {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
