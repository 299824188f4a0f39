// Package config loads application configuration from environment
// variables.
package config

import (
    "log"
    "os"
)

// Config holds the runtime configuration values.  Each field
// corresponds to an environment variable.
type Config struct {
    Env                string // application environment (e.g. "dev", "prod")
    Port               string // HTTP port to listen on
    MinReservationDays int    // earliest bookable day, relative to today
    MaxReservationDays int    // latest bookable day, relative to today
}

// Load reads configuration from the environment and returns a Config.
// Required variables are enforced by must(); missing values cause the
// program to exit with a fatal log message.  The booking window
// defaults to tomorrow through one week out (1 and 7 days) when
// unset.
func Load() Config {
    return Config{
        Env:                must("APP_ENV"),
        Port:               must("APP_PORT"),
        MinReservationDays: envInt("RESERVATION_MIN_DAYS", 1),
        MaxReservationDays: envInt("RESERVATION_MAX_DAYS", 7),
    }
}

// must retrieves the value of a required environment variable.  If
// the variable is unset or empty, the application logs a fatal error
// and exits.
func must(key string) string {
    v, ok := os.LookupEnv(key)
    if !ok || v == "" {
        log.Fatalf("missing required env var: %s", key)
    }
    return v
}
