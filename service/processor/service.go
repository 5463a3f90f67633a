package processor

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/viant/bookscan/internal/clock"
	"github.com/viant/bookscan/internal/idgen"
	"github.com/viant/bookscan/model"
	"github.com/viant/bookscan/progress"
	"github.com/viant/bookscan/service/allocator"
	"github.com/viant/bookscan/service/dao"
	"github.com/viant/bookscan/service/messaging"
	"github.com/viant/bookscan/service/storage"
	"github.com/viant/bookscan/tracing"
	"go.uber.org/zap"
)

// Config represents processor configuration
type Config struct {
	// WorkerCount is the number of instances solved concurrently
	WorkerCount int
}

// DefaultConfig returns the default processor configuration
func DefaultConfig() Config {
	return Config{WorkerCount: 1}
}

// Job is one instance of a batch run.
type Job struct {
	RunID    string
	Seq      int
	Instance string
}

// Service solves batches of instances
type Service struct {
	config    Config
	queue     messaging.Queue[Job]
	allocator allocator.Allocator
	storage   *storage.Service
	reports   dao.Service[string, model.Report]
	logger    *zap.Logger
}

// New creates a processor; queue, allocator, storage and report DAO are required.
func New(options ...Option) (*Service, error) {
	s := &Service{
		config: DefaultConfig(),
		logger: zap.NewNop(),
	}
	for _, opt := range options {
		opt(s)
	}
	if s.config.WorkerCount < 1 {
		s.config.WorkerCount = 1
	}
	if s.queue == nil {
		return nil, fmt.Errorf("message queue is required")
	}
	if s.allocator == nil {
		return nil, fmt.Errorf("allocator is required")
	}
	if s.storage == nil {
		return nil, fmt.Errorf("storage is required")
	}
	if s.reports == nil {
		return nil, fmt.Errorf("report DAO is required")
	}
	return s, nil
}

type batch struct {
	mu      sync.Mutex
	reports []*model.Report
	pending sync.WaitGroup
}

// record stores the first report of each job; redeliveries are ignored.
func (b *batch) record(seq int, report *model.Report) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if seq < 0 || seq >= len(b.reports) || b.reports[seq] != nil {
		return
	}
	b.reports[seq] = report
	b.pending.Done()
}

// Run solves instances in runID and returns one report per instance in input order.
// Instance failures are recorded in their reports; the returned error is only set
// when ctx ends before the batch completes.
func (s *Service) Run(ctx context.Context, runID string, instances ...string) (reports []*model.Report, err error) {
	ctx, span := tracing.StartSpan(ctx, "bookscan.Batch", "INTERNAL")
	defer func() { tracing.EndSpan(span, err) }()
	span.WithAttributes(map[string]string{"run.id": runID, "variant": string(s.allocator.Variant())})
	span.WithInt("instances", int64(len(instances)))

	b := &batch{reports: make([]*model.Report, len(instances))}
	b.pending.Add(len(instances))
	progress.UpdateCtx(ctx, progress.Delta{Total: len(instances)})

	workerCtx, cancel := context.WithCancel(ctx)
	var workers sync.WaitGroup
	for i := 0; i < s.config.WorkerCount; i++ {
		workers.Add(1)
		go func(id int) {
			defer workers.Done()
			s.work(workerCtx, id, b)
		}(i)
	}
	defer func() {
		cancel()
		workers.Wait()
	}()

	for i, instance := range instances {
		if err = s.queue.Publish(ctx, &Job{RunID: runID, Seq: i, Instance: instance}); err != nil {
			return nil, fmt.Errorf("failed to enqueue %s: %w", instance, err)
		}
	}

	done := make(chan struct{})
	go func() {
		b.pending.Wait()
		close(done)
	}()
	select {
	case <-done:
		return b.reports, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (s *Service) work(ctx context.Context, id int, b *batch) {
	for {
		msg, err := s.queue.Consume(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return
			}
			s.logger.Warn("consume failed", zap.Int("worker", id), zap.Error(err))
			time.Sleep(10 * time.Millisecond)
			continue
		}
		if msg == nil {
			continue
		}
		job := msg.T()
		report, pErr := s.Process(ctx, job)
		if pErr != nil {
			err = msg.Nack(pErr)
		} else {
			err = msg.Ack()
		}
		if err != nil {
			s.logger.Warn("failed to settle message", zap.String("message", msg.ID()), zap.Error(err))
		}
		b.record(job.Seq, report)
	}
}

// Process solves a single job and persists its report.  The report is never nil;
// the error is the instance failure, also recorded in report.Error.
func (s *Service) Process(ctx context.Context, job *Job) (*model.Report, error) {
	variant := string(s.allocator.Variant())
	report := &model.Report{
		ID:        idgen.New(),
		RunID:     job.RunID,
		Instance:  job.Instance,
		Variant:   variant,
		StartedAt: clock.Now(),
	}
	progress.UpdateCtx(ctx, progress.Delta{Running: 1})

	spanCtx, span := tracing.StartSpan(ctx, "bookscan.Solve", "INTERNAL")
	span.WithAttributes(map[string]string{"instance": job.Instance, "variant": variant})
	solution, score, location, err := s.solve(spanCtx, job.Instance)
	report.Elapsed = clock.Since(report.StartedAt)
	if err != nil {
		report.Error = err.Error()
		progress.UpdateCtx(ctx, progress.Delta{Running: -1, Failed: 1})
		s.logger.Error("instance failed",
			zap.String("instance", job.Instance),
			zap.String("variant", variant),
			zap.Duration("elapsed", report.Elapsed),
			zap.Error(err))
	} else {
		report.Libraries = solution.Len()
		report.Books = solution.BookCount()
		report.Score = score
		report.Output = location
		span.WithAttributes(map[string]string{"libraries": strconv.Itoa(report.Libraries)}).WithInt("score", score)
		progress.UpdateCtx(ctx, progress.Delta{Running: -1, Completed: 1})
		s.logger.Info("instance solved",
			zap.String("instance", job.Instance),
			zap.String("variant", variant),
			zap.Int("libraries", report.Libraries),
			zap.Int64("score", score),
			zap.Duration("elapsed", report.Elapsed))
	}
	tracing.EndSpan(span, err)

	if daoErr := s.reports.Save(ctx, report); daoErr != nil {
		s.logger.Warn("failed to save report", zap.String("instance", job.Instance), zap.Error(daoErr))
	}
	return report, err
}

func (s *Service) solve(ctx context.Context, instance string) (solution *model.Solution, score int64, location string, err error) {
	defer func() {
		if r := recover(); r != nil {
			solution, score, location = nil, 0, ""
			err = fmt.Errorf("failed to solve %s: panic: %v", instance, r)
		}
	}()
	problem, err := s.storage.Download(ctx, instance)
	if err != nil {
		return nil, 0, "", err
	}
	solution, err = s.allocator.Allocate(ctx, problem)
	if err != nil {
		return nil, 0, "", fmt.Errorf("failed to allocate %s: %w", instance, err)
	}
	if err = solution.Validate(problem); err != nil {
		return nil, 0, "", fmt.Errorf("allocator produced invalid solution for %s: %w", instance, err)
	}
	location, err = s.storage.Upload(ctx, instance, solution)
	if err != nil {
		return nil, 0, "", err
	}
	return solution, solution.Score(problem), location, nil
}
