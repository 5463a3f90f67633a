package bookscan

import (
	"context"
	"errors"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/bookscan/internal/expr"
	"github.com/viant/bookscan/service/allocator"
	bstorage "github.com/viant/bookscan/service/storage"
	"gopkg.in/yaml.v3"
)

// DefaultInstances are the Hash Code 2020 qualification instances solved when
// no instance is named.
var DefaultInstances = []string{
	"a_example",
	"b_read_on",
	"c_incunabula",
	"d_tough_choices",
	"e_so_many_books",
	"f_libraries_of_the_world",
}

// Config is a serialisable representation of the solver configuration.
// String values may reference environment variables as ${env.KEY}.
type Config struct {
	Solver  SolverConfig  `json:"solver" yaml:"solver"`
	Batch   BatchConfig   `json:"batch" yaml:"batch"`
	Report  ReportConfig  `json:"report" yaml:"report"`
	Tracing TracingConfig `json:"tracing" yaml:"tracing"`
}

type SolverConfig struct {
	Variant     string `json:"variant" yaml:"variant"`
	Parallelism int    `json:"parallelism" yaml:"parallelism"`
}

type BatchConfig struct {
	InputURL     string   `json:"inputURL" yaml:"inputURL"`
	OutputURL    string   `json:"outputURL" yaml:"outputURL"`
	InputExt     string   `json:"inputExt" yaml:"inputExt"`
	OutputSuffix string   `json:"outputSuffix" yaml:"outputSuffix"`
	Workers      int      `json:"workers" yaml:"workers"`
	Instances    []string `json:"instances" yaml:"instances"`
}

// ReportConfig locates persisted run reports; an empty URL keeps them in memory.
type ReportConfig struct {
	URL string `json:"url" yaml:"url"`
}

// TracingConfig enables the stdout span exporter; Output names a file, stdout when empty.
type TracingConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Output  string `json:"output" yaml:"output"`
}

// DefaultConfig returns a Config reading and writing the working directory
// with the best-score heuristic on a single worker.
func DefaultConfig() *Config {
	return &Config{
		Solver: SolverConfig{
			Variant:     string(allocator.VariantBestScore),
			Parallelism: 1,
		},
		Batch: BatchConfig{
			InputURL:     ".",
			OutputURL:    ".",
			InputExt:     bstorage.DefaultInputExt,
			OutputSuffix: bstorage.DefaultOutputSuffix,
			Workers:      1,
		},
	}
}

// Validate returns aggregated error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	var errs []error
	if _, err := allocator.ParseVariant(c.Solver.Variant); err != nil {
		errs = append(errs, fmt.Errorf("solver.variant: %w", err))
	}
	if c.Solver.Parallelism <= 0 {
		errs = append(errs, fmt.Errorf("solver.parallelism must be > 0"))
	}
	if c.Batch.Workers <= 0 {
		errs = append(errs, fmt.Errorf("batch.workers must be > 0"))
	}
	if c.Batch.InputURL == "" {
		errs = append(errs, fmt.Errorf("batch.inputURL was empty"))
	}
	if c.Batch.OutputURL == "" {
		errs = append(errs, fmt.Errorf("batch.outputURL was empty"))
	}
	return errors.Join(errs...)
}

// Variant returns the parsed solver variant.
func (c *Config) Variant() allocator.Variant {
	variant, _ := allocator.ParseVariant(c.Solver.Variant)
	return variant
}

// ExpandEnv replaces ${env.KEY} references in every string setting.
func (c *Config) ExpandEnv() {
	for _, value := range []*string{
		&c.Solver.Variant,
		&c.Batch.InputURL, &c.Batch.OutputURL, &c.Batch.InputExt, &c.Batch.OutputSuffix,
		&c.Report.URL,
		&c.Tracing.Output,
	} {
		*value = expr.ExpandEnv(*value)
	}
	for i, instance := range c.Batch.Instances {
		c.Batch.Instances[i] = expr.ExpandEnv(instance)
	}
}

// LoadConfig reads a YAML config from URL on top of DefaultConfig.
func LoadConfig(ctx context.Context, fs afs.Service, URL string, options ...storage.Option) (*Config, error) {
	if fs == nil {
		fs = afs.New()
	}
	data, err := fs.DownloadWithURL(ctx, URL, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", URL, err)
	}
	ret := DefaultConfig()
	if err = yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", URL, err)
	}
	ret.ExpandEnv()
	if err = ret.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", URL, err)
	}
	return ret, nil
}
