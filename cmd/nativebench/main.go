// Command nativebench measures nativelist containers against builtin slices.
//
// Usage:
//
//	nativebench [-n 100000] [-rounds 5] [-alloc mmap|heap|arena] [-debug] [-plain]
//
// Defaults are read from NATIVEBENCH_* variables, optionally set in a .env
// file in the working directory.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/pavanmanishd/nativelist"
)

func main() {
	if err := loadEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := parseConfig(os.Args[1:], os.Getenv, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		cfg.plain = true
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config, stdout io.Writer) error {
	logger, err := newLogger(cfg.debug)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	runID := uuid.New().String()
	logger = logger.With(zap.String("run_id", runID))

	nativelist.SetLogger(logger.Named("nativelist"))
	defer nativelist.SetLogger(zap.NewNop())

	alloc, release := cfg.newAllocator()
	defer func() {
		if err := release(); err != nil {
			logger.Warn("release allocator", zap.Error(err))
		}
	}()

	logger.Info("benchmark starting",
		zap.Int("n", cfg.n),
		zap.Int("rounds", cfg.rounds),
		zap.String("allocator", cfg.allocator),
	)

	results, err := measure(ctx, alloc, cfg.n, cfg.rounds)
	if err != nil {
		return fmt.Errorf("measure: %w", err)
	}

	for _, r := range results {
		logger.Debug("workload done",
			zap.String("subject", r.subject),
			zap.String("workload", r.workload),
			zap.Float64("ns_per_op", r.nsPerOp),
			zap.Int64("checksum", r.checksum),
		)
	}

	report(stdout, cfg, runID, results)
	return nil
}

// newLogger builds a development logger with debug enabled, otherwise a
// production logger writing to stderr.
func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
