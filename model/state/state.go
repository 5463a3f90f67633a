// Package state holds the mutable working copy of a book scanning instance.
//
// An allocator owns exactly one State for the duration of a run.  The state
// never aliases mutable data of the underlying model.Problem: remaining
// membership is tracked with a taken-book bitmap, a removed-library bitmap
// and per-library remaining counts and score sums, while signup times and
// scan rates are copied so that ranking heuristics can rewrite them.
package state

import (
	"cmp"
	"slices"

	"github.com/viant/bookscan/model"
)

// State represents remaining books, libraries and day budget.
type State struct {
	problem  *model.Problem
	days     int
	signup   []int
	rate     []int
	taken    []bool
	removed  []bool
	count    []int
	scoreSum []int64
}

// New creates a state initialised from the problem.
func New(problem *model.Problem) *State {
	n := problem.NumLibraries
	ret := &State{
		problem:  problem,
		days:     problem.Days,
		signup:   make([]int, n),
		rate:     make([]int, n),
		taken:    make([]bool, problem.NumBooks),
		removed:  make([]bool, n),
		count:    make([]int, n),
		scoreSum: make([]int64, n),
	}
	for i, library := range problem.Libraries {
		ret.signup[i] = library.SignupTime
		ret.rate[i] = library.ScanRate
		ret.count[i] = len(library.Books)
		for _, book := range library.Books {
			ret.scoreSum[i] += int64(problem.Scores[book])
		}
	}
	return ret
}

// Problem returns the instance the state was built from.
func (s *State) Problem() *model.Problem { return s.problem }

// NumLibraries returns number of libraries.
func (s *State) NumLibraries() int { return len(s.count) }

// Days returns the remaining day budget; it may be negative.
func (s *State) Days() int { return s.days }

// Spend subtracts days from the remaining budget.  Negative values are
// ignored so the budget never rises.
func (s *State) Spend(days int) {
	if days > 0 {
		s.days -= days
	}
}

// SignupTime returns the current (possibly neutralised) signup time.
func (s *State) SignupTime(lib int) int { return s.signup[lib] }

// ScanRate returns the current (possibly neutralised) scan rate.
func (s *State) ScanRate(lib int) int { return s.rate[lib] }

// SetSignupTime overrides the working signup time of a library.
func (s *State) SetSignupTime(lib, value int) { s.signup[lib] = value }

// SetScanRate overrides the working scan rate of a library.
func (s *State) SetScanRate(lib, value int) { s.rate[lib] = value }

// MinScanRate returns the lowest current scan rate over all libraries.
func (s *State) MinScanRate() int {
	if len(s.rate) == 0 {
		return 0
	}
	return slices.Min(s.rate)
}

// MaxSignupTime returns the highest current signup time over all libraries.
func (s *State) MaxSignupTime() int {
	if len(s.signup) == 0 {
		return 0
	}
	return slices.Max(s.signup)
}

// Uniform reports whether every library shares the same signup time and the
// same scan rate.
func (s *State) Uniform() bool {
	for i := 1; i < len(s.signup); i++ {
		if s.signup[i] != s.signup[0] || s.rate[i] != s.rate[0] {
			return false
		}
	}
	return true
}

// RemainingBookCount returns the number of books a library can still scan.
func (s *State) RemainingBookCount(lib int) int { return s.count[lib] }

// RemainingBookCounts returns a copy of every library remaining count.
func (s *State) RemainingBookCounts() []int {
	return slices.Clone(s.count)
}

// HasRemainingBooks reports whether any library still holds a book.
func (s *State) HasRemainingBooks() bool {
	for _, c := range s.count {
		if c > 0 {
			return true
		}
	}
	return false
}

// RemainingScore returns the score sum of a library remaining books.
func (s *State) RemainingScore(lib int) int64 { return s.scoreSum[lib] }

// AverageScore returns the mean score of a library remaining books; ok is
// false when the library has none left.
func (s *State) AverageScore(lib int) (avg float64, ok bool) {
	if s.count[lib] == 0 {
		return 0, false
	}
	return float64(s.scoreSum[lib]) / float64(s.count[lib]), true
}

// IsRemoved reports whether the library was already consumed.
func (s *State) IsRemoved(lib int) bool { return s.removed[lib] }

// IsTaken reports whether the book was already assigned.
func (s *State) IsTaken(book int) bool { return s.taken[book] }

// RemainingBooks returns the library member books not yet assigned, in
// library order.
func (s *State) RemainingBooks(lib int) []int {
	if s.removed[lib] {
		return nil
	}
	books := s.problem.Libraries[lib].Books
	ret := make([]int, 0, s.count[lib])
	for _, book := range books {
		if !s.taken[book] {
			ret = append(ret, book)
		}
	}
	return ret
}

// TopBooks returns up to n remaining books of a library ordered by score
// descending, ties by lowest book index.
func (s *State) TopBooks(lib, n int) []int {
	if n <= 0 {
		return []int{}
	}
	books := s.RemainingBooks(lib)
	scores := s.problem.Scores
	slices.SortFunc(books, func(a, b int) int {
		if c := cmp.Compare(scores[b], scores[a]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	if n < len(books) {
		books = books[:n]
	}
	return books
}

// RemoveBooks clears the supplied books from every library.
func (s *State) RemoveBooks(books []int) {
	for _, book := range books {
		if s.taken[book] {
			continue
		}
		s.taken[book] = true
		score := int64(s.problem.Scores[book])
		for _, lib := range s.problem.BookLibraries(book) {
			if s.removed[lib] {
				continue
			}
			s.count[lib]--
			s.scoreSum[lib] -= score
		}
	}
}

// RemoveLibrary clears the whole membership of a library.  Books it held
// remain available to other libraries.
func (s *State) RemoveLibrary(lib int) {
	s.removed[lib] = true
	s.count[lib] = 0
	s.scoreSum[lib] = 0
}
