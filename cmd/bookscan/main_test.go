package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
)

func TestRun(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	input := "6 2 7\n1 2 3 6 5 4\n5 2 2\n0 1 2 3 4\n4 3 1\n3 2 5 0\n"
	require.NoError(t, fs.Upload(ctx, "mem://localhost/cmd_test/in/a_example.txt", file.DefaultFileOsMode, strings.NewReader(input)))

	testCases := []struct {
		description string
		args        []string
		expectErr   bool
		expectOut   []string
	}{
		{
			description: "fastest with missing instance",
			args:        []string{"-variant", "v2", "-in", "mem://localhost/cmd_test/in", "-out", "mem://localhost/cmd_test/out", "a_example", "b_read_on"},
			expectOut:   []string{"a_example", "17", "b_read_on", "FAILED", "total"},
		},
		{
			description: "unknown variant",
			args:        []string{"-variant", "v9", "a_example"},
			expectErr:   true,
		},
		{
			description: "invalid workers",
			args:        []string{"-workers", "-1", "a_example"},
			expectErr:   true,
		},
		{
			description: "unknown flag",
			args:        []string{"-bogus"},
			expectErr:   true,
		},
	}
	for _, testCase := range testCases {
		var stdout, stderr bytes.Buffer
		err := run(ctx, testCase.args, &stdout, &stderr)
		if testCase.expectErr {
			assert.Error(t, err, testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		for _, fragment := range testCase.expectOut {
			assert.Contains(t, stdout.String(), fragment, testCase.description)
		}
	}

	data, err := fs.DownloadWithURL(ctx, "mem://localhost/cmd_test/out/a_example_sol.txt")
	require.NoError(t, err)
	assert.Equal(t, "1\n0 5\n3 4 2 1 0\n", string(data))
}
