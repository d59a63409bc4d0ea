// Package appconf loads the gateway configuration from the environment.
package appconf

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Environment int

const (
	Development Environment = iota
	Test
	Production
)

func (e Environment) String() string {
	switch e {
	case Test:
		return "test"
	case Production:
		return "production"
	default:
		return "development"
	}
}

// ParseEnvironment maps an ENV value to an Environment. Unknown values are
// treated as development.
func ParseEnvironment(value string) Environment {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "production", "prod":
		return Production
	case "test":
		return Test
	default:
		return Development
	}
}

const (
	DefaultNSAPIURL          = "https://gateway.apiportal.ns.nl/reisinformatie-api"
	DefaultSelectionStrategy = "next"
	DefaultTimezone          = "Europe/Amsterdam"
)

// Config holds the gateway configuration.
type Config struct {
	Address           string
	Port              int
	Token             string
	NSToken           string
	NSAPIURL          string
	SelectionStrategy string
	Location          *time.Location
	Env               Environment
	Verbose           bool
}

// Addr is the host:port the server binds to.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Address, c.Port)
}

// MissingVariableError reports a required environment variable that is unset.
type MissingVariableError struct {
	Name string
}

func (e *MissingVariableError) Error() string {
	return fmt.Sprintf("required environment variable %s is not set", e.Name)
}

// LoadDotEnv loads the given .env files into the process environment, keeping
// variables that are already set. Missing files are skipped.
func LoadDotEnv(paths ...string) error {
	for _, path := range paths {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
	}
	return nil
}

// LoadFromEnv builds a Config from getenv. Every required variable that is
// missing is reported; the returned error joins all of them.
func LoadFromEnv(getenv func(string) string) (Config, error) {
	var errs []error

	required := func(name string) string {
		value := strings.TrimSpace(getenv(name))
		if value == "" {
			errs = append(errs, &MissingVariableError{Name: name})
		}
		return value
	}

	cfg := Config{
		Address:           required("ADDRESS"),
		Token:             required("TOKEN"),
		NSToken:           required("NS_TOKEN"),
		NSAPIURL:          strings.TrimRight(getenvDefault(getenv, "NS_API_URL", DefaultNSAPIURL), "/"),
		SelectionStrategy: getenvDefault(getenv, "SELECTION_STRATEGY", DefaultSelectionStrategy),
		Env:               ParseEnvironment(getenv("ENV")),
	}

	if port := required("PORT"); port != "" {
		parsed, err := strconv.ParseUint(port, 10, 16)
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid PORT %q: %w", port, err))
		}
		cfg.Port = int(parsed)
	}

	location, err := time.LoadLocation(getenvDefault(getenv, "TIMEZONE", DefaultTimezone))
	if err != nil {
		errs = append(errs, fmt.Errorf("invalid TIMEZONE: %w", err))
	}
	cfg.Location = location

	if verbose := getenv("VERBOSE"); verbose != "" {
		parsed, err := strconv.ParseBool(verbose)
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid VERBOSE %q: %w", verbose, err))
		}
		cfg.Verbose = parsed
	}

	if len(errs) > 0 {
		return Config{}, errors.Join(errs...)
	}
	return cfg, nil
}

func getenvDefault(getenv func(string) string, name, fallback string) string {
	if value := strings.TrimSpace(getenv(name)); value != "" {
		return value
	}
	return fallback
}
