package model

import "fmt"

// Entry is one activated library together with the books it scans, in scan
// order.
type Entry struct {
	Library int   `json:"library"`
	Books   []int `json:"books"`
}

// Solution lists entries in activation order.
type Solution struct {
	Entries []*Entry `json:"entries"`
}

// NewSolution creates an empty solution.
func NewSolution() *Solution {
	return &Solution{Entries: []*Entry{}}
}

// Append adds an entry at the end of the activation order.
func (s *Solution) Append(library int, books []int) {
	s.Entries = append(s.Entries, &Entry{Library: library, Books: books})
}

// Len returns the number of activated libraries.
func (s *Solution) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Entries)
}

// BookCount returns the number of scanned books over all entries.
func (s *Solution) BookCount() int {
	total := 0
	for _, entry := range s.Entries {
		total += len(entry.Books)
	}
	return total
}

// Score returns the sum of scores of every scanned book.
func (s *Solution) Score(problem *Problem) int64 {
	var total int64
	for _, entry := range s.Entries {
		for _, book := range entry.Books {
			total += int64(problem.Scores[book])
		}
	}
	return total
}

// Validate checks that every library and every book appears at most once and
// that all indices are within the instance bounds.
func (s *Solution) Validate(problem *Problem) error {
	libraries := make([]bool, problem.NumLibraries)
	books := make([]bool, problem.NumBooks)
	for i, entry := range s.Entries {
		if entry.Library < 0 || entry.Library >= problem.NumLibraries {
			return fmt.Errorf("%w: entry %d: library %d out of range", ErrInvalidSolution, i, entry.Library)
		}
		if libraries[entry.Library] {
			return fmt.Errorf("%w: library %d activated twice", ErrInvalidSolution, entry.Library)
		}
		libraries[entry.Library] = true
		for _, book := range entry.Books {
			if book < 0 || book >= problem.NumBooks {
				return fmt.Errorf("%w: entry %d: book %d out of range", ErrInvalidSolution, i, book)
			}
			if books[book] {
				return fmt.Errorf("%w: book %d scanned twice", ErrInvalidSolution, book)
			}
			books[book] = true
		}
	}
	return nil
}
