package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// envFile is loaded into the process environment when present. Variables
// already set in the environment are not overridden.
var envFile = ".env"

// parseEnv overlays config with environment variables:
//
//	SERVER_ADDRESS   bind address
//	DATABASE_URL     PostgreSQL DSN
//	DB_TLS_MODE      verify | insecure
//	DB_CA_FILE       PEM bundle path
//	DB_MAX_CONNS     pool size
//	LOG_LEVEL        debug | info | warn | error
//
// A malformed DB_MAX_CONNS panics, like a malformed flag would. An unknown
// DB_TLS_MODE is rejected by LoadConfig once every layer is applied.
func parseEnv(config *Config) {
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			panic(err)
		}
	}

	if v, ok := os.LookupEnv("SERVER_ADDRESS"); ok && v != "" {
		config.EndpointAddrHTTP = v
	}
	if v, ok := os.LookupEnv("DATABASE_URL"); ok && v != "" {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("DB_TLS_MODE"); ok && v != "" {
		config.DatabaseTLSMode = v
	}
	if v, ok := os.LookupEnv("DB_CA_FILE"); ok && v != "" {
		config.DatabaseCAFile = v
	}
	if v, ok := os.LookupEnv("DB_MAX_CONNS"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			panic(err)
		}
		config.DatabaseMaxConns = n
	}
	if v, ok := os.LookupEnv("LOG_LEVEL"); ok && v != "" {
		config.LogLevel = v
	}
}
