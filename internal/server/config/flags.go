package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/solarplan/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
//	-a string   HTTP bind address (e.g. ":3000")
//	-d string   PostgreSQL DSN
//	-k string   database TLS mode: verify | insecure
//	-r string   CA bundle (PEM) for the database server certificate
//	-m int      maximum open database connections
//	-q int      per-request query timeout, seconds
//	-t int      shutdown drain timeout, seconds
//	-l string   log level
//
// Only these flags are taken from os.Args, so -c/-config and test flags
// pass through untouched.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-k", "-r", "-m", "-q", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.DatabaseTLSMode, "k", config.DatabaseTLSMode, "database TLS mode (verify|insecure)")
	fs.StringVar(&config.DatabaseCAFile, "r", config.DatabaseCAFile, "database CA bundle file")
	fs.IntVar(&config.DatabaseMaxConns, "m", config.DatabaseMaxConns, "max open database connections")

	queryTimeout := fs.Int("q", int(config.QueryTimeout.Seconds()), "query timeout (in seconds)")
	shutdownTimeout := fs.Int("t", int(config.ShutdownTimeout.Seconds()), "shutdown timeout (in seconds)")

	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// Durations given as sub-second values in JSON survive unless the flag
	// was actually passed.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "q":
			config.QueryTimeout = time.Duration(*queryTimeout) * time.Second
		case "t":
			config.ShutdownTimeout = time.Duration(*shutdownTimeout) * time.Second
		}
	})
}
