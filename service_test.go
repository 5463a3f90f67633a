package bookscan_test

import (
	"context"
	"embed"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	_ "github.com/viant/afs/embed"
	"github.com/viant/bookscan"
	"github.com/viant/bookscan/model"
	"github.com/viant/bookscan/service/allocator"
	"github.com/viant/bookscan/service/codec"
	"github.com/viant/bookscan/service/dao"
	"github.com/viant/bookscan/tracing"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

//go:embed testdata/*
var embedFS embed.FS

func TestService_Solve(t *testing.T) {
	ctx := context.Background()
	data, err := embedFS.ReadFile("testdata/a_example.txt")
	require.NoError(t, err)
	problem, err := codec.Decode(data)
	require.NoError(t, err)

	testCases := []struct {
		description string
		variant     allocator.Variant
		expect      []*model.Entry
		score       int64
	}{
		{
			description: "best score",
			variant:     allocator.VariantBestScore,
			expect:      []*model.Entry{{Library: 0, Books: []int{3, 4, 2, 1, 0}}, {Library: 1, Books: []int{5}}},
			score:       21,
		},
		{
			description: "fastest",
			variant:     allocator.VariantFastest,
			expect:      []*model.Entry{{Library: 0, Books: []int{3, 4, 2, 1, 0}}},
			score:       17,
		},
	}
	for _, testCase := range testCases {
		srv, err := bookscan.New(ctx, bookscan.WithVariant(testCase.variant))
		require.NoError(t, err, testCase.description)
		solution, err := srv.Solve(ctx, problem)
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expect, solution.Entries, testCase.description)
		assert.Equal(t, testCase.score, solution.Score(problem), testCase.description)
		assert.NoError(t, solution.Validate(problem), testCase.description)
	}

	srv, err := bookscan.New(ctx)
	require.NoError(t, err)
	_, err = srv.Solve(ctx, nil)
	assert.Error(t, err)
}

func TestService_RunBatch(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	outputURL := "mem://localhost/bookscan_test/batch"
	srv, err := bookscan.New(ctx,
		bookscan.WithFS(fs),
		bookscan.WithFsOptions(&embedFS),
		bookscan.WithInputURL("embed:///testdata"),
		bookscan.WithOutputURL(outputURL),
		bookscan.WithWorkers(2),
	)
	require.NoError(t, err)

	run, err := srv.RunBatch(ctx, "a_example", "b_read_on", "malformed")
	require.NoError(t, err)
	require.Len(t, run.Reports, 3)
	assert.NotEmpty(t, run.ID)
	assert.EqualValues(t, 21, run.Score())
	assert.Len(t, run.Failed(), 2)
	assert.Equal(t, 3, run.Progress.Total)
	assert.Equal(t, 1, run.Progress.Completed)
	assert.Equal(t, 2, run.Progress.Failed)

	first, err := fs.DownloadWithURL(ctx, outputURL+"/a_example_sol.txt")
	require.NoError(t, err)
	assert.Equal(t, "2\n0 5\n3 4 2 1 0\n1 1\n5\n", string(first))

	_, err = srv.RunBatch(ctx, "a_example")
	require.NoError(t, err)
	second, err := fs.DownloadWithURL(ctx, outputURL+"/a_example_sol.txt")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	stored, err := srv.Reports().List(ctx, dao.NewParameter(dao.ParamRunID, run.ID))
	require.NoError(t, err)
	assert.Len(t, stored, 3)
}

func TestService_SolveInstance(t *testing.T) {
	ctx := context.Background()
	srv, err := bookscan.New(ctx,
		bookscan.WithFsOptions(&embedFS),
		bookscan.WithInputURL("embed:///testdata"),
		bookscan.WithOutputURL("mem://localhost/bookscan_test/single"),
	)
	require.NoError(t, err)

	report, err := srv.SolveInstance(ctx, "a_example")
	require.NoError(t, err)
	assert.Equal(t, "a_example", report.Instance)
	assert.Equal(t, 2, report.Libraries)
	assert.Equal(t, 6, report.Books)
	assert.Equal(t, "mem://localhost/bookscan_test/single/a_example_sol.txt", report.Output)

	report, err = srv.SolveInstance(ctx, "malformed")
	var parseErr *model.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 4, parseErr.Line)
	assert.True(t, report.Failed())
}

func TestService_Tracing(t *testing.T) {
	ctx := context.Background()
	exporter := tracetest.NewInMemoryExporter()
	shutdown, err := tracing.InitWithExporter("bookscan", "test", exporter)
	require.NoError(t, err)
	defer shutdown(ctx)

	srv, err := bookscan.New(ctx,
		bookscan.WithFsOptions(&embedFS),
		bookscan.WithInputURL("embed:///testdata"),
		bookscan.WithOutputURL("mem://localhost/bookscan_test/traced"),
	)
	require.NoError(t, err)
	_, err = srv.RunBatch(ctx, "a_example")
	require.NoError(t, err)

	var names []string
	for _, span := range exporter.GetSpans() {
		names = append(names, span.Name)
	}
	assert.Equal(t, []string{"bookscan.Solve", "bookscan.Batch"}, names)
}

func TestNew_InvalidConfig(t *testing.T) {
	_, err := bookscan.New(context.Background(), bookscan.WithVariant("v3"), bookscan.WithWorkers(0))
	assert.Error(t, err)
}
