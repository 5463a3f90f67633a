package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"strings"
	"sync"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/option"
	"github.com/viant/afs/url"
	"github.com/viant/bookscan/model"
	"github.com/viant/bookscan/service/dao"
	"github.com/viant/bookscan/service/dao/criteria"
	"go.uber.org/zap"
)

// Service stores each run report as a JSON document under baseURL.
type Service struct {
	baseURL string
	fs      afs.Service
	logger  *zap.Logger
	mu      sync.RWMutex
}

// Ensure Service implements dao.Service
var _ dao.Service[string, model.Report] = (*Service)(nil)

// Save persists a report
func (s *Service) Save(ctx context.Context, report *model.Report) error {
	if report == nil {
		return dao.ErrNilEntity
	}
	if report.ID == "" {
		return dao.ErrInvalidID
	}

	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report %s: %w", report.ID, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	location := s.reportURL(report.ID)
	if err = s.fs.Upload(ctx, location, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to save report to %s: %w", location, err)
	}
	return nil
}

// Load retrieves a report
func (s *Service) Load(ctx context.Context, id string) (*model.Report, error) {
	if id == "" {
		return nil, dao.ErrInvalidID
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	location := s.reportURL(id)
	exists, err := s.fs.Exists(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("failed to check if report %s exists: %w", id, err)
	}
	if !exists {
		return nil, fmt.Errorf("report %s: %w", id, dao.ErrNotFound)
	}

	data, err := s.fs.DownloadWithURL(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("failed to read report %s: %w", id, err)
	}
	report := &model.Report{}
	if err := json.Unmarshal(data, report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report %s: %w", id, err)
	}
	return report, nil
}

// Delete removes a report
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return dao.ErrInvalidID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	location := s.reportURL(id)
	exists, err := s.fs.Exists(ctx, location)
	if err != nil {
		return fmt.Errorf("failed to check if report %s exists: %w", id, err)
	}
	if !exists {
		return fmt.Errorf("report %s: %w", id, dao.ErrNotFound)
	}
	if err := s.fs.Delete(ctx, location); err != nil {
		return fmt.Errorf("failed to delete report %s: %w", id, err)
	}
	return nil
}

// List returns the stored reports matching parameters, oldest first
func (s *Service) List(ctx context.Context, parameters ...*dao.Parameter) ([]*model.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	objects, err := s.fs.List(ctx, s.baseURL, option.NewRecursive(true))
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	var reports []*model.Report
	for _, object := range objects {
		if object.IsDir() || !strings.HasSuffix(object.Name(), ".json") {
			continue
		}
		data, err := s.fs.Download(ctx, object)
		if err != nil {
			s.logger.Warn("skipping unreadable report", zap.String("url", object.URL()), zap.Error(err))
			continue
		}
		report := &model.Report{}
		if err := json.Unmarshal(data, report); err != nil {
			s.logger.Warn("skipping malformed report", zap.String("url", object.URL()), zap.Error(err))
			continue
		}
		if !criteria.MatchReport(report, parameters) {
			continue
		}
		reports = append(reports, report)
	}
	criteria.SortReports(reports)
	return reports, nil
}

func (s *Service) reportURL(id string) string {
	return url.Join(s.baseURL, path.Base(id)+".json")
}

// New creates a report store rooted at baseURL, creating the location when missing.
func New(ctx context.Context, fs afs.Service, baseURL string, logger *zap.Logger) (*Service, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("report base URL was empty")
	}
	if fs == nil {
		fs = afs.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	baseURL = url.Normalize(baseURL, file.Scheme)
	exists, _ := fs.Exists(ctx, baseURL)
	if !exists {
		if err := fs.Create(ctx, baseURL, file.DefaultDirOsMode, true); err != nil {
			return nil, fmt.Errorf("failed to create report location %s: %w", baseURL, err)
		}
	}
	return &Service{baseURL: baseURL, fs: fs, logger: logger}, nil
}
