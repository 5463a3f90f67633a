package codec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/bookscan/model"
)

func TestEncode(t *testing.T) {
	testCases := []struct {
		description string
		solution    *model.Solution
		expect      string
	}{
		{
			description: "no libraries",
			solution:    model.NewSolution(),
			expect:      "0\n",
		},
		{
			description: "activation order kept",
			solution: &model.Solution{Entries: []*model.Entry{
				{Library: 1, Books: []int{5, 2, 3}},
				{Library: 0, Books: []int{0}},
			}},
			expect: "2\n1 3\n5 2 3\n0 1\n0\n",
		},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, string(Encode(testCase.solution)), testCase.description)
		var buf bytes.Buffer
		assert.NoError(t, Write(&buf, testCase.solution), testCase.description)
		assert.Equal(t, testCase.expect, buf.String(), testCase.description)
	}
}
