// Package config loads service settings from the environment.
package config

import (
	"io/fs"
	"net/url"
	"time"

	"github.com/go-faster/errors"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// ErrInvalid is matched by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds every runtime setting of the service. Defaults reproduce the
// behaviour of an unconfigured deployment.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port string `env:"PORT" env-default:"3000" env-description:"HTTP listen port"`
	// LogLevel is the minimum zap level name.
	LogLevel string `env:"LOG_LEVEL" env-default:"info" env-description:"minimum log level"`
	// ServerURL is advertised in the OpenAPI servers list. Empty disables the entry.
	ServerURL string `env:"SERVER_URL" env-default:"https://dictapi-jtjj.onrender.com" env-description:"public server URL"`
	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"10s" env-description:"graceful shutdown timeout"`

	Dictionary Dictionary
}

// Dictionary configures the upstream dictionary client.
type Dictionary struct {
	// BaseURL is the entry URL prefix; the escaped word is appended to it.
	BaseURL string `env:"DICTIONARY_BASE_URL" env-default:"https://api.dictionaryapi.dev/api/v2/entries/en/" env-description:"upstream entry URL prefix"`
	// Timeout bounds a single upstream lookup, including reading the body.
	Timeout time.Duration `env:"DICTIONARY_TIMEOUT" env-default:"10s" env-description:"upstream request timeout"`
}

// Load reads the optional dotenv files (".env" when none are given) and then the
// process environment. Variables already present in the environment win over
// dotenv values. Missing dotenv files are ignored.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(err, "load dotenv")
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, errors.Wrap(err, "read environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports settings that would make the service unusable.
func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.Wrap(ErrInvalid, "PORT must not be empty")
	}
	if c.ShutdownTimeout <= 0 {
		return errors.Wrapf(ErrInvalid, "SHUTDOWN_TIMEOUT must be positive, got %s", c.ShutdownTimeout)
	}
	if c.Dictionary.Timeout <= 0 {
		return errors.Wrapf(ErrInvalid, "DICTIONARY_TIMEOUT must be positive, got %s", c.Dictionary.Timeout)
	}
	u, err := url.Parse(c.Dictionary.BaseURL)
	if err != nil {
		return errors.Wrapf(ErrInvalid, "DICTIONARY_BASE_URL: %v", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.Wrapf(ErrInvalid, "DICTIONARY_BASE_URL must be an absolute http(s) URL, got %q", c.Dictionary.BaseURL)
	}
	return nil
}

// Addr returns the listen address for net/http.
func (c *Config) Addr() string {
	return ":" + c.Port
}
