package bookscan

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/bookscan/internal/idgen"
	"github.com/viant/bookscan/model"
	"github.com/viant/bookscan/progress"
	"github.com/viant/bookscan/service/allocator"
	"github.com/viant/bookscan/service/dao"
	rfs "github.com/viant/bookscan/service/dao/report/fs"
	rmemory "github.com/viant/bookscan/service/dao/report/memory"
	mmemory "github.com/viant/bookscan/service/messaging/memory"
	"github.com/viant/bookscan/service/processor"
	bstorage "github.com/viant/bookscan/service/storage"
	"go.uber.org/zap"
)

// Service solves single problems, named instances and batches of instances.
type Service struct {
	config    *Config
	logger    *zap.Logger
	fs        afs.Service
	fsOptions []storage.Option
	reports   dao.Service[string, model.Report]
	allocator allocator.Allocator
	storage   *bstorage.Service
}

// Run summarises one batch.
type Run struct {
	ID       string
	Reports  []*model.Report
	Progress progress.Progress
}

// Failed returns the reports of instances that could not be solved.
func (r *Run) Failed() []*model.Report {
	var ret []*model.Report
	for _, report := range r.Reports {
		if report.Failed() {
			ret = append(ret, report)
		}
	}
	return ret
}

// Score returns the total score of the solved instances.
func (r *Run) Score() int64 {
	var total int64
	for _, report := range r.Reports {
		total += report.Score
	}
	return total
}

// New creates a Service; the configuration is validated after all options apply.
func New(ctx context.Context, options ...Option) (*Service, error) {
	ret := &Service{config: DefaultConfig()}
	for _, option := range options {
		option(ret)
	}
	if err := ret.config.Validate(); err != nil {
		return nil, err
	}
	if err := ret.ensureBaseSetup(ctx); err != nil {
		return nil, err
	}
	return ret, nil
}

func (s *Service) ensureBaseSetup(ctx context.Context) error {
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.fs == nil {
		s.fs = afs.New()
	}
	if s.reports == nil {
		if URL := s.config.Report.URL; URL != "" {
			reports, err := rfs.New(ctx, s.fs, URL, s.logger)
			if err != nil {
				return err
			}
			s.reports = reports
		} else {
			s.reports = rmemory.New()
		}
	}
	alloc, err := allocator.New(s.config.Variant(),
		allocator.WithParallelism(s.config.Solver.Parallelism),
		allocator.WithLogger(s.logger))
	if err != nil {
		return err
	}
	s.allocator = alloc
	batch := s.config.Batch
	s.storage = bstorage.New(s.fs, bstorage.Config{
		InputURL:     batch.InputURL,
		OutputURL:    batch.OutputURL,
		InputExt:     batch.InputExt,
		OutputSuffix: batch.OutputSuffix,
	}, s.fsOptions...)
	return nil
}

// Config returns the effective configuration.
func (s *Service) Config() *Config {
	return s.config
}

// Reports returns the report store.
func (s *Service) Reports() dao.Service[string, model.Report] {
	return s.reports
}

// Solve runs the configured heuristic on an in-memory problem.
func (s *Service) Solve(ctx context.Context, problem *model.Problem) (*model.Solution, error) {
	if problem == nil {
		return nil, fmt.Errorf("problem was nil")
	}
	return s.allocator.Allocate(ctx, problem)
}

func (s *Service) processor(workers int) (*processor.Service, *mmemory.Queue[processor.Job], error) {
	queue := mmemory.NewQueue[processor.Job](mmemory.DefaultConfig())
	srv, err := processor.New(
		processor.WithMessageQueue(queue),
		processor.WithAllocator(s.allocator),
		processor.WithStorage(s.storage),
		processor.WithReportDAO(s.reports),
		processor.WithWorkers(workers),
		processor.WithLogger(s.logger),
	)
	return srv, queue, err
}

// SolveInstance downloads, solves and writes back the named instance.
func (s *Service) SolveInstance(ctx context.Context, name string) (*model.Report, error) {
	srv, _, err := s.processor(1)
	if err != nil {
		return nil, err
	}
	return srv.Process(ctx, &processor.Job{RunID: idgen.New(), Instance: name})
}

// RunBatch solves every named instance (configured or default names when none
// are given).  A failing instance is reported and the batch continues.
func (s *Service) RunBatch(ctx context.Context, names ...string) (*Run, error) {
	if len(names) == 0 {
		names = s.config.Batch.Instances
	}
	if len(names) == 0 {
		names = DefaultInstances
	}
	srv, queue, err := s.processor(s.config.Batch.Workers)
	if err != nil {
		return nil, err
	}
	runID := idgen.New()
	ctx, tracker := progress.WithNewTracker(ctx, runID, func(p progress.Progress) {
		s.logger.Debug("batch progress",
			zap.String("run", p.RunID),
			zap.Int("total", p.Total),
			zap.Int("completed", p.Completed),
			zap.Int("failed", p.Failed),
			zap.Int("running", p.Running))
	})
	s.logger.Info("batch started", zap.String("run", runID), zap.String("variant", string(s.allocator.Variant())), zap.Strings("instances", names))
	reports, err := srv.Run(ctx, runID, names...)
	if err != nil {
		return nil, fmt.Errorf("batch %s: %w", runID, err)
	}
	run := &Run{ID: runID, Reports: reports, Progress: tracker.Snapshot()}
	s.logger.Info("batch finished",
		zap.String("run", runID),
		zap.Int("completed", run.Progress.Completed),
		zap.Int("failed", run.Progress.Failed),
		zap.Int("deadLetters", queue.DLQSize()),
		zap.Int64("score", run.Score()))
	return run, nil
}
