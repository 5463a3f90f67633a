package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/bookscan/model"
)

func newProblem(t *testing.T) *model.Problem {
	t.Helper()
	problem, err := model.NewProblem(5, 3, 10, []int{1, 2, 3, 6, 5}, []*model.Library{
		{SignupTime: 2, ScanRate: 2, Books: []int{0, 1, 2, 3}},
		{SignupTime: 3, ScanRate: 1, Books: []int{2, 3, 4}},
		{SignupTime: 2, ScanRate: 1, Books: []int{}},
	})
	require.NoError(t, err)
	return problem
}

func TestState_RemoveBooks(t *testing.T) {
	s := New(newProblem(t))
	assert.Equal(t, []int{4, 3, 0}, s.RemainingBookCounts())

	s.RemoveBooks([]int{2, 3, 3})
	assert.Equal(t, []int{2, 1, 0}, s.RemainingBookCounts())
	assert.Equal(t, int64(3), s.RemainingScore(0))
	assert.Equal(t, int64(5), s.RemainingScore(1))
	assert.Equal(t, []int{0, 1}, s.RemainingBooks(0))
	assert.True(t, s.IsTaken(2))
}

func TestState_RemoveLibrary(t *testing.T) {
	s := New(newProblem(t))
	s.RemoveLibrary(0)
	assert.Equal(t, []int{0, 3, 0}, s.RemainingBookCounts())
	assert.Nil(t, s.RemainingBooks(0))
	assert.Equal(t, []int{2, 3, 4}, s.RemainingBooks(1))

	// removing books held by a consumed library must not touch its count
	s.RemoveBooks([]int{0, 2})
	assert.Equal(t, []int{0, 2, 0}, s.RemainingBookCounts())
	assert.True(t, s.HasRemainingBooks())
}

func TestState_AverageScore(t *testing.T) {
	s := New(newProblem(t))
	avg, ok := s.AverageScore(0)
	assert.True(t, ok)
	assert.Equal(t, 3.0, avg)

	_, ok = s.AverageScore(2)
	assert.False(t, ok)
}

func TestState_TopBooks(t *testing.T) {
	testCases := []struct {
		description string
		scores      []int
		books       []int
		n           int
		expect      []int
	}{
		{description: "score descending", scores: []int{1, 5, 3}, books: []int{0, 1, 2}, n: 3, expect: []int{1, 2, 0}},
		{description: "ties by lowest index", scores: []int{2, 2, 2}, books: []int{2, 0, 1}, n: 2, expect: []int{0, 1}},
		{description: "capped at remaining", scores: []int{1, 2}, books: []int{0, 1}, n: 5, expect: []int{1, 0}},
		{description: "zero capacity", scores: []int{1, 2}, books: []int{0, 1}, n: 0, expect: []int{}},
		{description: "negative capacity", scores: []int{1, 2}, books: []int{0, 1}, n: -3, expect: []int{}},
	}
	for _, testCase := range testCases {
		problem, err := model.NewProblem(len(testCase.scores), 1, 1, testCase.scores, []*model.Library{{ScanRate: 1, Books: testCase.books}})
		require.NoError(t, err)
		s := New(problem)
		assert.Equal(t, testCase.expect, s.TopBooks(0, testCase.n), testCase.description)
	}
}

func TestState_Neutralise(t *testing.T) {
	s := New(newProblem(t))
	assert.Equal(t, 1, s.MinScanRate())
	assert.Equal(t, 3, s.MaxSignupTime())
	assert.False(t, s.Uniform())

	for lib := 0; lib < s.NumLibraries(); lib++ {
		s.SetScanRate(lib, s.MinScanRate())
		s.SetSignupTime(lib, s.MaxSignupTime())
	}
	assert.True(t, s.Uniform())

	s.Spend(4)
	s.Spend(-10)
	assert.Equal(t, 6, s.Days())
}
