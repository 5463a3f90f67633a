package allocator

import (
	"context"

	"github.com/viant/bookscan/model"
	"github.com/viant/bookscan/model/state"
	"go.uber.org/zap"
)

// BestScore is the best-score-first heuristic.
type BestScore struct {
	base
}

// NewBestScore creates a best-score-first allocator
func NewBestScore(options ...Option) *BestScore {
	return &BestScore{base: newBase(options)}
}

// Variant returns VariantBestScore
func (a *BestScore) Variant() Variant { return VariantBestScore }

// estimate is a per-round library evaluation.  Libraries that cannot
// contribute are not eligible and never win the argmax.
type estimate struct {
	eligible   bool
	achievable int
	value      float64
}

// Allocate runs rounds until the budget is spent or no library can
// contribute.
func (a *BestScore) Allocate(ctx context.Context, problem *model.Problem) (*model.Solution, error) {
	s := state.New(problem)
	solution := model.NewSolution()
	estimates := make([]estimate, s.NumLibraries())
	for round := 0; s.Days() > 0; round++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := a.estimate(ctx, s, estimates); err != nil {
			return nil, err
		}
		lib := bestEstimate(estimates)
		if lib < 0 {
			break
		}
		books := s.TopBooks(lib, estimates[lib].achievable)
		a.logger.Debug("round",
			zap.Int("round", round),
			zap.Int("library", lib),
			zap.Int("books", len(books)),
			zap.Int("days", s.Days()))
		commit(s, solution, lib, books)
		s.Spend(s.SignupTime(lib))
	}
	return solution, nil
}

func (a *BestScore) estimate(ctx context.Context, s *state.State, estimates []estimate) error {
	days := s.Days()
	return a.forEachLibrary(ctx, len(estimates), func(lib int) {
		estimates[lib] = estimateLibrary(s, lib, days)
	})
}

func estimateLibrary(s *state.State, lib, days int) estimate {
	count := s.RemainingBookCount(lib)
	if count == 0 {
		return estimate{}
	}
	scanDays := days - s.SignupTime(lib)
	achievable := capacity(s.ScanRate(lib), scanDays, count)
	if achievable == 0 {
		return estimate{}
	}
	avg, _ := s.AverageScore(lib)
	return estimate{eligible: true, achievable: achievable, value: avg * float64(achievable)}
}

// bestEstimate returns the eligible library with the highest value, lowest
// index first on ties, or -1.
func bestEstimate(estimates []estimate) int {
	best := -1
	for lib := range estimates {
		candidate := &estimates[lib]
		if !candidate.eligible {
			continue
		}
		if best < 0 || candidate.value > estimates[best].value {
			best = lib
		}
	}
	return best
}
