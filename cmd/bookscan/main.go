// Command bookscan solves book scanning instances with a greedy heuristic.
//
//	bookscan -in data -out solutions -variant fastest a_example b_read_on
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/viant/afs"
	"github.com/viant/bookscan"
	"github.com/viant/bookscan/service/allocator"
	"github.com/viant/bookscan/tracing"
	"go.uber.org/zap"
)

const version = "0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

type options struct {
	config      string
	variant     string
	in          string
	out         string
	workers     int
	parallelism int
	trace       bool
	verbose     bool
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	opts := &options{}
	flags := flag.NewFlagSet("bookscan", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&opts.config, "config", "", "YAML config URL")
	flags.StringVar(&opts.variant, "variant", "", "heuristic: best-score (v1) or fastest (v2)")
	flags.StringVar(&opts.in, "in", "", "instance location (file path or afs URL)")
	flags.StringVar(&opts.out, "out", "", "solution location (file path or afs URL)")
	flags.IntVar(&opts.workers, "workers", 0, "instances solved concurrently")
	flags.IntVar(&opts.parallelism, "parallelism", 0, "goroutines scoring libraries per round")
	flags.BoolVar(&opts.trace, "trace", false, "print OpenTelemetry spans")
	flags.BoolVar(&opts.verbose, "verbose", false, "development logging with per-round detail")
	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: bookscan [flags] [instance ...]\n\nInstances default to %v.\n\n", bookscan.DefaultInstances)
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return err
	}

	config, err := loadConfig(ctx, opts)
	if err != nil {
		return err
	}
	logger, err := newLogger(opts.verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if config.Tracing.Enabled {
		shutdown, err := tracing.Init("bookscan", version, config.Tracing.Output)
		if err != nil {
			return fmt.Errorf("failed to init tracing: %w", err)
		}
		defer shutdown(context.Background())
	}

	srv, err := bookscan.New(ctx, bookscan.WithConfig(config), bookscan.WithLogger(logger))
	if err != nil {
		return err
	}
	result, err := srv.RunBatch(ctx, flags.Args()...)
	if err != nil {
		return err
	}
	for _, report := range result.Reports {
		if report.Failed() {
			fmt.Fprintf(stdout, "%-28s FAILED  %s\n", report.Instance, report.Error)
			continue
		}
		fmt.Fprintf(stdout, "%-28s %12d  libraries=%d books=%d %v\n", report.Instance, report.Score, report.Libraries, report.Books, report.Elapsed)
	}
	fmt.Fprintf(stdout, "%-28s %12d\n", "total", result.Score())
	return nil
}

// loadConfig layers explicitly set flags over the config file (or defaults).
func loadConfig(ctx context.Context, opts *options) (*bookscan.Config, error) {
	config := bookscan.DefaultConfig()
	if opts.config != "" {
		var err error
		if config, err = bookscan.LoadConfig(ctx, afs.New(), opts.config); err != nil {
			return nil, err
		}
	}
	if opts.variant != "" {
		variant, err := allocator.ParseVariant(opts.variant)
		if err != nil {
			return nil, err
		}
		config.Solver.Variant = string(variant)
	}
	if opts.in != "" {
		config.Batch.InputURL = opts.in
	}
	if opts.out != "" {
		config.Batch.OutputURL = opts.out
	}
	if opts.workers != 0 {
		config.Batch.Workers = opts.workers
	}
	if opts.parallelism != 0 {
		config.Solver.Parallelism = opts.parallelism
	}
	if opts.trace {
		config.Tracing.Enabled = true
	}
	return config, config.Validate()
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	config := zap.NewProductionConfig()
	config.OutputPaths = []string{"stderr"}
	return config.Build()
}
