package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolution_Validate(t *testing.T) {
	problem, err := NewProblem(3, 2, 5, []int{4, 5, 6}, []*Library{
		{SignupTime: 1, ScanRate: 1, Books: []int{0, 1}},
		{SignupTime: 1, ScanRate: 1, Books: []int{1, 2}},
	})
	require.NoError(t, err)

	testCases := []struct {
		description string
		entries     []*Entry
		expectErr   bool
		score       int64
	}{
		{
			description: "empty",
			entries:     []*Entry{},
		},
		{
			description: "disjoint books",
			entries:     []*Entry{{Library: 1, Books: []int{2, 1}}, {Library: 0, Books: []int{0}}},
			score:       15,
		},
		{
			description: "book scanned twice",
			entries:     []*Entry{{Library: 1, Books: []int{1}}, {Library: 0, Books: []int{1}}},
			expectErr:   true,
		},
		{
			description: "library twice",
			entries:     []*Entry{{Library: 0, Books: []int{0}}, {Library: 0, Books: []int{1}}},
			expectErr:   true,
		},
		{
			description: "library out of range",
			entries:     []*Entry{{Library: 2, Books: []int{0}}},
			expectErr:   true,
		},
	}

	for _, testCase := range testCases {
		solution := &Solution{Entries: testCase.entries}
		err := solution.Validate(problem)
		if testCase.expectErr {
			assert.True(t, errors.Is(err, ErrInvalidSolution), testCase.description)
			continue
		}
		assert.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.score, solution.Score(problem), testCase.description)
	}
}
