package bookscan

import (
	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/bookscan/model"
	"github.com/viant/bookscan/service/allocator"
	"github.com/viant/bookscan/service/dao"
	"go.uber.org/zap"
)

// Option customises the Service
type Option func(s *Service)

// WithConfig replaces the whole configuration; later options still apply on top.
func WithConfig(config *Config) Option {
	return func(s *Service) {
		if config != nil {
			s.config = config
		}
	}
}

// WithLogger sets the structured logger; defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithFS sets the file system used for instances, solutions and reports.
func WithFS(fs afs.Service) Option {
	return func(s *Service) {
		s.fs = fs
	}
}

// WithFsOptions passes storage options (e.g. an embed.FS) to every instance read.
func WithFsOptions(options ...storage.Option) Option {
	return func(s *Service) {
		s.fsOptions = options
	}
}

// WithReportDAO overrides the report store selected by report.url.
func WithReportDAO(reports dao.Service[string, model.Report]) Option {
	return func(s *Service) {
		s.reports = reports
	}
}

// WithVariant selects the heuristic.
func WithVariant(variant allocator.Variant) Option {
	return func(s *Service) {
		s.config.Solver.Variant = string(variant)
	}
}

// WithParallelism sets the number of goroutines scoring libraries per round.
func WithParallelism(count int) Option {
	return func(s *Service) {
		s.config.Solver.Parallelism = count
	}
}

// WithWorkers sets the number of instances solved concurrently in a batch.
func WithWorkers(count int) Option {
	return func(s *Service) {
		s.config.Batch.Workers = count
	}
}

// WithInputURL sets the instance location.
func WithInputURL(URL string) Option {
	return func(s *Service) {
		s.config.Batch.InputURL = URL
	}
}

// WithOutputURL sets the solution location.
func WithOutputURL(URL string) Option {
	return func(s *Service) {
		s.config.Batch.OutputURL = URL
	}
}
