package main

import (
	"cmp"
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	defaultDir             = "viz"
	defaultHost            = "127.0.0.1"
	defaultPort            = 5000
	defaultShutdownTimeout = 5 * time.Second
)

type Config struct {
	Dir             string        `toml:"dir"`
	Host            string        `toml:"host"`
	Port            int           `toml:"port"`
	Strict          bool          `toml:"strict"`
	Verbose         bool          `toml:"verbose"`
	RateLimit       float64       `toml:"rate_limit"`
	RateBurst       int           `toml:"rate_burst"`
	ShutdownTimeout time.Duration `toml:"shutdown_timeout"`
}

func defaultConfig() Config {
	return Config{
		Dir:             defaultDir,
		Host:            defaultHost,
		Port:            defaultPort,
		ShutdownTimeout: defaultShutdownTimeout,
	}
}

// loadConfig layers an optional TOML file and the PORT environment variable
// over the defaults. Flags are applied by the caller afterwards.
func loadConfig(filePath string, getenv func(string) string) (Config, error) {
	config := defaultConfig()
	if filePath != "" {
		buf, err := os.ReadFile(filePath)
		if err != nil {
			return config, fmt.Errorf("failed to read config file: %w", err)
		}
		if _, err := toml.Decode(string(buf), &config); err != nil {
			return config, fmt.Errorf("failed to parse config file %s: %w", filePath, err)
		}
	}
	if port := getenv("PORT"); port != "" {
		n, err := strconv.Atoi(port)
		if err != nil {
			return config, fmt.Errorf("invalid PORT %q: %w", port, err)
		}
		config.Port = n
	}
	return config, nil
}

func (config Config) validate() error {
	var errs []error
	if config.Dir == "" {
		errs = append(errs, errors.New("dir must not be empty"))
	}
	if config.Port < 1 || config.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d out of range", config.Port))
	}
	if config.RateLimit < 0 {
		errs = append(errs, errors.New("rate limit must not be negative"))
	}
	if config.RateBurst < 0 {
		errs = append(errs, errors.New("rate burst must not be negative"))
	}
	if config.ShutdownTimeout < 0 {
		errs = append(errs, errors.New("shutdown timeout must not be negative"))
	}
	return errors.Join(errs...)
}

func (config Config) addr() string {
	return net.JoinHostPort(config.Host, strconv.Itoa(config.Port))
}

func (config Config) burst() int {
	return cmp.Or(config.RateBurst, max(1, int(config.RateLimit)))
}
