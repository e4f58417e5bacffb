package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/pavanmanishd/nativelist"
)

// Environment keys; flags override them.
const (
	envN         = "NATIVEBENCH_N"
	envRounds    = "NATIVEBENCH_ROUNDS"
	envAllocator = "NATIVEBENCH_ALLOCATOR"
	envDebug     = "NATIVEBENCH_DEBUG"
)

type config struct {
	n         int
	rounds    int
	allocator string
	debug     bool
	plain     bool
}

// loadEnv merges an optional .env file into the process environment.
// Variables already set win over the file.
func loadEnv(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// parseConfig reads defaults from getenv and applies command line flags.
func parseConfig(args []string, getenv func(string) string, stderr io.Writer) (config, error) {
	cfg := config{n: 100_000, rounds: 5, allocator: "mmap"}

	var err error
	if cfg.n, err = envInt(getenv, envN, cfg.n); err != nil {
		return cfg, err
	}
	if cfg.rounds, err = envInt(getenv, envRounds, cfg.rounds); err != nil {
		return cfg, err
	}
	if v := getenv(envAllocator); v != "" {
		cfg.allocator = v
	}
	if v := getenv(envDebug); v != "" {
		if cfg.debug, err = strconv.ParseBool(v); err != nil {
			return cfg, fmt.Errorf("%s: %w", envDebug, err)
		}
	}

	fset := flag.NewFlagSet("nativebench", flag.ContinueOnError)
	fset.SetOutput(stderr)
	fset.IntVar(&cfg.n, "n", cfg.n, "Elements per workload")
	fset.IntVar(&cfg.rounds, "rounds", cfg.rounds, "Rounds per workload")
	fset.StringVar(&cfg.allocator, "alloc", cfg.allocator, "Allocator: mmap, heap or arena")
	fset.BoolVar(&cfg.debug, "debug", cfg.debug, "Log buffer growth at debug level")
	fset.BoolVar(&cfg.plain, "plain", false, "Disable table styling")
	if err := fset.Parse(args); err != nil {
		return cfg, err
	}

	return cfg, cfg.validate()
}

func (c config) validate() error {
	if c.n <= 0 {
		return fmt.Errorf("n must be positive, got %d", c.n)
	}
	if c.rounds <= 0 {
		return fmt.Errorf("rounds must be positive, got %d", c.rounds)
	}
	switch c.allocator {
	case "mmap", "heap", "arena":
		return nil
	default:
		return fmt.Errorf("unknown allocator %q (want mmap, heap or arena)", c.allocator)
	}
}

// newAllocator returns the allocator named by a validated configuration
// and a function releasing it.
func (c config) newAllocator() (nativelist.Allocator, func() error) {
	switch c.allocator {
	case "heap":
		return nativelist.HeapAllocator{}, func() error { return nil }
	case "arena":
		a := nativelist.NewArenaAllocator(0, nativelist.HeapAllocator{})
		return a, a.Release
	default:
		m := nativelist.NewMmapAllocator()
		return m, m.Close
	}
}

func envInt(getenv func(string) string, key string, def int) (int, error) {
	v := getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
