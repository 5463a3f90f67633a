package processor

import (
	"github.com/viant/bookscan/model"
	"github.com/viant/bookscan/service/allocator"
	"github.com/viant/bookscan/service/dao"
	"github.com/viant/bookscan/service/messaging"
	"github.com/viant/bookscan/service/storage"
	"go.uber.org/zap"
)

// Option customises the processor
type Option func(*Service)

// WithMessageQueue sets the job queue implementation
func WithMessageQueue(queue messaging.Queue[Job]) Option {
	return func(s *Service) {
		s.queue = queue
	}
}

// WithAllocator sets the heuristic used to solve every job
func WithAllocator(alloc allocator.Allocator) Option {
	return func(s *Service) {
		s.allocator = alloc
	}
}

// WithStorage sets the instance/solution store
func WithStorage(store *storage.Service) Option {
	return func(s *Service) {
		s.storage = store
	}
}

// WithReportDAO sets the report store implementation
func WithReportDAO(reports dao.Service[string, model.Report]) Option {
	return func(s *Service) {
		s.reports = reports
	}
}

// WithWorkers sets the number of worker goroutines
func WithWorkers(count int) Option {
	return func(s *Service) {
		s.config.WorkerCount = count
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithConfig sets the configuration for the service
func WithConfig(config Config) Option {
	return func(s *Service) {
		s.config = config
	}
}
