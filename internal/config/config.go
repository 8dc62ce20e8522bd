package config

import (
	"errors"
	"fmt"
	"furl/internal/furl"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	// DedupAdjacent merges URLs that are neighbors after sorting.
	DedupAdjacent = "adjacent"
	// DedupCluster merges every URL reachable through a chain of equal URLs.
	DedupCluster = "cluster"
)

// Config represents the application configuration structure.
// It contains settings for the environment, domain policy, dedup behavior,
// input handling and the optional HTTP server.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"FURL_ENVIRONMENT" env-default:"production" yaml:"environment"`
	// LogLevel overrides the environment's default log level when set (debug, info, warn, error)
	LogLevel string `env:"FURL_LOG_LEVEL" env-default:"warn" yaml:"logLevel"`

	// Domain controls how hosts are classified against the public suffix list
	Domain struct {
		// Strict drops URLs whose host is not a registrable ICANN or private domain
		Strict bool `env:"FURL_DOMAIN_STRICT" env-default:"false" yaml:"strict"`
		// PrivateNeedsRoot requires an apex below private suffixes too
		PrivateNeedsRoot bool `env:"FURL_DOMAIN_PRIVATE_NEEDS_ROOT" env-default:"false" yaml:"privateNeedsRoot"`
		// SuffixMode selects the tld field: "last-label" or "public"
		SuffixMode string `env:"FURL_DOMAIN_SUFFIX_MODE" env-default:"last-label" yaml:"suffixMode"`
	} `yaml:"domain"`

	// Dedup controls the dedup pattern
	Dedup struct {
		// Mode is "adjacent" (neighbors after sorting) or "cluster" (transitive)
		Mode string `env:"FURL_DEDUP_MODE" env-default:"adjacent" yaml:"mode"`
	} `yaml:"dedup"`

	// Input controls how tokens are read
	Input struct {
		// Stdin enables reading tokens from standard input when it is not a terminal
		Stdin bool `env:"FURL_INPUT_STDIN" env-default:"true" yaml:"stdin"`
		// MaxTokenSize is the longest token accepted from standard input, in bytes
		MaxTokenSize int `env:"FURL_INPUT_MAX_TOKEN_SIZE" env-default:"1048576" yaml:"maxTokenSize"`
	} `yaml:"input"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"FURL_HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"FURL_HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"FURL_HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"FURL_HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"FURL_HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"FURL_HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"FURL_HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MaxBodyBytes limits the size of a render request body
		MaxBodyBytes int64 `env:"FURL_HTTP_MAX_BODY_BYTES" env-default:"4194304" yaml:"maxBodyBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"FURL_HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"FURL_GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
// A missing file is not an error: settings then come from the environment only.
func Load(configPath string) (*Config, error) {
	var cfg Config

	_, statErr := os.Stat(configPath)
	switch {
	case configPath == "" || errors.Is(statErr, fs.ErrNotExist):
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("could not read config from environment: %w", err)
		}
	default:
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			return nil, fmt.Errorf("could not read config: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	switch c.Dedup.Mode {
	case DedupAdjacent, DedupCluster:
	default:
		return fmt.Errorf("invalid dedup mode %q", c.Dedup.Mode)
	}

	if _, err := furl.ParseSuffixMode(c.Domain.SuffixMode); err != nil {
		return fmt.Errorf("invalid domain settings: %w", err)
	}

	if c.Input.MaxTokenSize <= 0 {
		return fmt.Errorf("invalid max token size %d", c.Input.MaxTokenSize)
	}

	return nil
}
