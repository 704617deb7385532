// Package config provides functionality for managing configuration
// options for the application using command-line flags, environment
// variables and an optional .env file.
package config

import (
	"flag"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Options holds the configuration values for the application.
type Options struct {
	// Port defines the server's listening address (ip:port).
	Port string

	// ResultHostname is the base URL used for result links.
	ResultHostname string

	// DatabaseDSN holds the postgres connection string. Empty selects
	// the in-memory store.
	DatabaseDSN string

	// RedisAddr enables the resolver cache when set.
	RedisAddr string

	// RedisPassword is the password for the resolver cache.
	RedisPassword string

	// JWTSecret signs the identity cookies.
	JWTSecret string

	// TrustedSubnet is the CIDR allowed to reach internal endpoints.
	TrustedSubnet string

	// EnablePprof indicates whether to enable pprof for performance profiling.
	EnablePprof bool

	// EnableHTTPS indicates whether to enable https.
	EnableHTTPS bool
}

// options holds the current configuration values.
var options = &Options{}

// init initializes command-line flags and sets default values.
func init() {
	flag.StringVar(&options.Port, "a", "localhost:8080", "run on ip:port server")
	flag.StringVar(&options.ResultHostname, "b", "http://localhost:8080", "result base url")
	flag.StringVar(&options.DatabaseDSN, "d", "", "db address")
	flag.StringVar(&options.RedisAddr, "r", "", "redis address for the resolver cache")
	flag.StringVar(&options.TrustedSubnet, "t", "", "trusted subnet for internal endpoints")
	flag.BoolVar(&options.EnablePprof, "p", false, "enable pprof")
	flag.BoolVar(&options.EnableHTTPS, "s", false, "enable https")
}

// Parse parses the command-line flags and environment variables to set
// configuration values. A .env file in the working directory is loaded
// first when present. Environment variables win over flags.
func Parse() *Options {
	_ = godotenv.Load()

	flag.Parse()

	if serverAddress := os.Getenv("SERVER_ADDRESS"); serverAddress != "" {
		options.Port = serverAddress
	}

	if baseURL := os.Getenv("BASE_URL"); baseURL != "" {
		options.ResultHostname = baseURL
	}

	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		options.DatabaseDSN = dsn
	}

	if redisAddr := os.Getenv("REDIS_ADDR"); redisAddr != "" {
		options.RedisAddr = redisAddr
	}

	options.RedisPassword = os.Getenv("REDIS_PASSWORD")

	options.JWTSecret = os.Getenv("JWT_SECRET")
	if options.JWTSecret == "" {
		options.JWTSecret = "supersecretkey"
	}

	if subnet := os.Getenv("TRUSTED_SUBNET"); subnet != "" {
		options.TrustedSubnet = subnet
	}

	if enableHTTPS := os.Getenv("ENABLE_HTTPS"); enableHTTPS != "" {
		httpMode, err := strconv.ParseBool(enableHTTPS)
		if err != nil {
			options.EnableHTTPS = false
		}

		options.EnableHTTPS = httpMode
	}

	return options
}
