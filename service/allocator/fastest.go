package allocator

import (
	"cmp"
	"context"

	"github.com/viant/bookscan/model"
	"github.com/viant/bookscan/model/state"
	"go.uber.org/zap"
)

// Fastest is the fastest-activation-first heuristic.
type Fastest struct {
	base
}

// NewFastest creates a fastest-activation-first allocator
func NewFastest(options ...Option) *Fastest {
	return &Fastest{base: newBase(options)}
}

// Variant returns VariantFastest
func (a *Fastest) Variant() Variant { return VariantFastest }

type rank struct {
	eligible bool
	signup   int
	rate     int
	avg      float64
}

// compare orders by signup ascending, rate descending and average score
// ascending.  quickest scans in index order, so full ties keep the lowest
// library index.
func (r *rank) compare(other *rank) int {
	if c := cmp.Compare(r.signup, other.signup); c != 0 {
		return c
	}
	if c := cmp.Compare(other.rate, r.rate); c != 0 {
		return c
	}
	return cmp.Compare(r.avg, other.avg)
}

// Allocate runs rounds until the budget is spent, no book remains or every
// library has converged to the same signup time and scan rate.
//
// A library whose signup leaves no scanning time is still consumed and its
// signup still charged, but no entry is appended for it: every entry in the
// returned solution lists at least one book.
func (a *Fastest) Allocate(ctx context.Context, problem *model.Problem) (*model.Solution, error) {
	s := state.New(problem)
	solution := model.NewSolution()
	ranks := make([]rank, s.NumLibraries())
	for round := 0; s.Days() > 0 && s.HasRemainingBooks(); round++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := a.rank(ctx, s, ranks); err != nil {
			return nil, err
		}
		lib := quickest(ranks)
		if lib < 0 {
			break
		}
		s.Spend(s.SignupTime(lib))
		books := s.TopBooks(lib, capacity(s.ScanRate(lib), s.Days(), s.RemainingBookCount(lib)))
		a.logger.Debug("round",
			zap.Int("round", round),
			zap.Int("library", lib),
			zap.Int("books", len(books)),
			zap.Int("days", s.Days()))
		commit(s, solution, lib, books)
		s.SetScanRate(lib, s.MinScanRate())
		s.SetSignupTime(lib, s.MaxSignupTime())
		if s.Uniform() {
			break
		}
	}
	return solution, nil
}

func (a *Fastest) rank(ctx context.Context, s *state.State, ranks []rank) error {
	return a.forEachLibrary(ctx, len(ranks), func(lib int) {
		avg, ok := s.AverageScore(lib)
		ranks[lib] = rank{eligible: ok, signup: s.SignupTime(lib), rate: s.ScanRate(lib), avg: avg}
	})
}

// quickest returns the top ranked library holding remaining books, or -1.
func quickest(ranks []rank) int {
	best := -1
	for lib := range ranks {
		candidate := &ranks[lib]
		if !candidate.eligible {
			continue
		}
		if best < 0 || candidate.compare(&ranks[best]) < 0 {
			best = lib
		}
	}
	return best
}
