package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnv(t *testing.T) {
	testCases := []struct {
		description string
		env         map[string]string
		input       string
		expect      string
	}{
		{description: "no expressions", input: "mem://localhost/in", expect: "mem://localhost/in"},
		{description: "single expression", env: map[string]string{"BOOKSCAN_DATA": "/data"}, input: "file://${env.BOOKSCAN_DATA}/in", expect: "file:///data/in"},
		{description: "repeated expressions", env: map[string]string{"A": "1", "B": "2"}, input: "${env.A}-${env.B}-${env.A}", expect: "1-2-1"},
		{description: "unset variable becomes empty", input: "out=${env.BOOKSCAN_UNSET}/sol", expect: "out=/sol"},
		{description: "missing closing brace", env: map[string]string{"X": "x"}, input: "start ${env.X and ${env.Y} end", expect: "start ${env.X and  end"},
		{description: "empty key", input: "oops ${env.} done", expect: "oops  done"},
	}

	for _, testCase := range testCases {
		for k, v := range testCase.env {
			t.Setenv(k, v)
		}
		lookup := func(key string) string { return testCase.env[key] }
		assert.Equal(t, testCase.expect, expandWith(testCase.input, lookup), testCase.description)
	}
	t.Setenv("BOOKSCAN_VARIANT", "fastest")
	assert.Equal(t, "fastest", ExpandEnv("${env.BOOKSCAN_VARIANT}"))
}
