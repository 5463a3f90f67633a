package allocator

import (
	"context"
	"fmt"
	"strings"

	"github.com/viant/bookscan/model"
	"github.com/viant/bookscan/model/state"
	"go.uber.org/zap"
)

// Variant names a selection heuristic.
type Variant string

const (
	// VariantBestScore selects the library with the best value estimate.
	VariantBestScore Variant = "best-score"
	// VariantFastest selects the library that signs up the quickest.
	VariantFastest Variant = "fastest"
)

// ParseVariant maps a configuration value to a Variant.  Besides the
// canonical names it accepts v1/v2 shorthands.
func ParseVariant(value string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", string(VariantBestScore), "v1", "bestscore":
		return VariantBestScore, nil
	case string(VariantFastest), "v2", "quickest":
		return VariantFastest, nil
	}
	return "", fmt.Errorf("unsupported allocator variant: %q", value)
}

// Allocator produces a solution for a problem.
type Allocator interface {
	// Allocate runs the round loop until a termination condition holds.
	Allocate(ctx context.Context, problem *model.Problem) (*model.Solution, error)
	// Variant returns the heuristic name.
	Variant() Variant
}

// Config represents allocator configuration
type Config struct {
	// Parallelism is the number of goroutines scoring libraries within a
	// round; values below 2 score serially.
	Parallelism int
	// MinParallelLibraries is the instance size below which scoring stays
	// serial regardless of Parallelism.
	MinParallelLibraries int
}

// DefaultConfig returns the default allocator configuration
func DefaultConfig() Config {
	return Config{
		Parallelism:          1,
		MinParallelLibraries: 1024,
	}
}

// Option customises an allocator
type Option func(b *base)

// WithConfig sets the configuration
func WithConfig(config Config) Option {
	return func(b *base) {
		b.config = config
	}
}

// WithParallelism sets the number of scoring goroutines
func WithParallelism(count int) Option {
	return func(b *base) {
		b.config.Parallelism = count
	}
}

// WithLogger sets the logger used for per-round debug output
func WithLogger(logger *zap.Logger) Option {
	return func(b *base) {
		if logger != nil {
			b.logger = logger
		}
	}
}

type base struct {
	config Config
	logger *zap.Logger
}

func newBase(options []Option) base {
	ret := base{config: DefaultConfig(), logger: zap.NewNop()}
	for _, opt := range options {
		opt(&ret)
	}
	return ret
}

// New creates an allocator for the supplied variant
func New(variant Variant, options ...Option) (Allocator, error) {
	switch variant {
	case VariantBestScore:
		return NewBestScore(options...), nil
	case VariantFastest:
		return NewFastest(options...), nil
	}
	return nil, fmt.Errorf("unsupported allocator variant: %q", variant)
}

// capacity returns min(rate*days, count), zero when any argument is not
// positive, without overflowing on large rates or budgets.
func capacity(rate, days, count int) int {
	if rate <= 0 || days <= 0 || count <= 0 {
		return 0
	}
	if days > count/rate {
		return count
	}
	return rate * days
}

// commit appends the selected books to the solution, removes them from
// every library and consumes the chosen library.  A library with no
// selected book is consumed without producing an entry.
func commit(s *state.State, solution *model.Solution, lib int, books []int) {
	if len(books) > 0 {
		solution.Append(lib, books)
	}
	s.RemoveBooks(books)
	s.RemoveLibrary(lib)
}
