package bookscan

import (
	"context"
	"embed"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	_ "github.com/viant/afs/embed"
	"github.com/viant/bookscan/service/allocator"
)

//go:embed testdata/config.yaml
var configFS embed.FS

func TestLoadConfig(t *testing.T) {
	t.Setenv("BOOKSCAN_TEST_OUT", "solutions")
	config, err := LoadConfig(context.Background(), afs.New(), "embed:///testdata/config.yaml", &configFS)
	require.NoError(t, err)
	assert.Equal(t, allocator.VariantFastest, config.Variant())
	assert.Equal(t, 4, config.Solver.Parallelism)
	assert.Equal(t, "mem://localhost/solutions", config.Batch.OutputURL)
	assert.Equal(t, 2, config.Batch.Workers)
	assert.Equal(t, []string{"a_example", "malformed"}, config.Batch.Instances)
	assert.Equal(t, ".txt", config.Batch.InputExt)
	assert.Equal(t, "_sol.txt", config.Batch.OutputSuffix)
	assert.False(t, config.Tracing.Enabled)

	_, err = LoadConfig(context.Background(), afs.New(), "embed:///testdata/missing.yaml", &configFS)
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		description string
		adjust      func(c *Config)
		expectErr   bool
	}{
		{description: "defaults", adjust: func(c *Config) {}},
		{description: "v2 shorthand", adjust: func(c *Config) { c.Solver.Variant = "v2" }},
		{description: "unknown variant", adjust: func(c *Config) { c.Solver.Variant = "random" }, expectErr: true},
		{description: "no workers", adjust: func(c *Config) { c.Batch.Workers = 0 }, expectErr: true},
		{description: "no parallelism", adjust: func(c *Config) { c.Solver.Parallelism = 0 }, expectErr: true},
		{description: "no input", adjust: func(c *Config) { c.Batch.InputURL = "" }, expectErr: true},
		{description: "no output", adjust: func(c *Config) { c.Batch.OutputURL = "" }, expectErr: true},
	}
	for _, testCase := range testCases {
		config := DefaultConfig()
		testCase.adjust(config)
		err := config.Validate()
		if testCase.expectErr {
			assert.Error(t, err, testCase.description)
			continue
		}
		assert.NoError(t, err, testCase.description)
	}
}
