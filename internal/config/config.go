// Package config resolves the route calculator's runtime settings from
// command-line flags with environment fallbacks.
package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Environment variables consulted when the matching flag is not given.
const (
	EnvAddr = "ROUTECALC_ADDR"
	EnvSeed = "ROUTECALC_SEED"
)

const (
	defaultAddr    = ":8080"
	defaultMaxArea = 250_000
)

// Config holds all application configuration.
type Config struct {
	Serve        bool          // run the HTTP service instead of the prompt dialogue
	ServerAddr   string        // listen address for Serve
	Seed         int64         // map RNG seed; 0 means time-based
	MaxArea      int           // largest rows×cols accepted by the HTTP service
	WriteTimeout time.Duration // HTTP write timeout
}

// Load parses args (without the program name) and fills unset values from
// the environment.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	fs := flag.NewFlagSet("routecalc", flag.ContinueOnError)
	fs.BoolVar(&cfg.Serve, "serve", false, "run the HTTP route service")
	fs.StringVar(&cfg.ServerAddr, "addr", "", "HTTP listen address (env "+EnvAddr+", default "+defaultAddr+")")
	fs.Int64Var(&cfg.Seed, "seed", 0, "map RNG seed (env "+EnvSeed+", default time-based)")
	fs.IntVar(&cfg.MaxArea, "max-area", defaultMaxArea, "largest grid area the HTTP service accepts")
	fs.DurationVar(&cfg.WriteTimeout, "write-timeout", 10*time.Second, "HTTP write timeout")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.ServerAddr == "" {
		cfg.ServerAddr = os.Getenv(EnvAddr)
	}
	if cfg.ServerAddr == "" {
		cfg.ServerAddr = defaultAddr
	}
	if cfg.Seed == 0 {
		if s := os.Getenv(EnvSeed); s != "" {
			seed, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("config: %s=%q: %w", EnvSeed, s, err)
			}
			cfg.Seed = seed
		}
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.MaxArea <= 0 {
		return nil, fmt.Errorf("config: -max-area must be positive, got %d", cfg.MaxArea)
	}

	return cfg, nil
}
