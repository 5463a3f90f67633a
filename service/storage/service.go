// Package storage moves instance and solution files through afs so that
// inputs and outputs may live on the local disk, in memory or in an
// embedded file system.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"
	"github.com/viant/bookscan/model"
	"github.com/viant/bookscan/service/codec"
)

const (
	// DefaultInputExt is appended to an instance name to form its input file name.
	DefaultInputExt = ".txt"
	// DefaultOutputSuffix is appended to an instance name to form its solution file name.
	DefaultOutputSuffix = "_sol.txt"
)

// Config locates instance inputs and solution outputs.
type Config struct {
	InputURL     string
	OutputURL    string
	InputExt     string
	OutputSuffix string
}

// Service provides instance download and solution upload using viant/afs
type Service struct {
	fs        afs.Service
	config    Config
	fsOptions []storage.Option
}

// New creates a storage service; fsOptions are passed to every read (e.g. an embed.FS).
func New(fs afs.Service, config Config, fsOptions ...storage.Option) *Service {
	if fs == nil {
		fs = afs.New()
	}
	if config.InputExt == "" {
		config.InputExt = DefaultInputExt
	}
	if config.OutputSuffix == "" {
		config.OutputSuffix = DefaultOutputSuffix
	}
	config.InputURL = normalize(config.InputURL)
	config.OutputURL = normalize(config.OutputURL)
	return &Service{fs: fs, config: config, fsOptions: fsOptions}
}

func normalize(location string) string {
	if location == "" {
		return location
	}
	return url.Normalize(location, file.Scheme)
}

// InstanceURL returns the input location of the named instance.
func (s *Service) InstanceURL(name string) string {
	return url.Join(s.config.InputURL, name+s.config.InputExt)
}

// SolutionURL returns the output location of the named instance.
func (s *Service) SolutionURL(name string) string {
	return url.Join(s.config.OutputURL, name+s.config.OutputSuffix)
}

// Download reads and parses the named instance.
func (s *Service) Download(ctx context.Context, name string) (*model.Problem, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("instance name was empty")
	}
	location := s.InstanceURL(name)
	exists, err := s.fs.Exists(ctx, location, s.fsOptions...)
	if err != nil {
		return nil, fmt.Errorf("failed to check if %s exists: %w", location, err)
	}
	if !exists {
		return nil, fmt.Errorf("instance does not exist: %s", location)
	}
	data, err := s.fs.DownloadWithURL(ctx, location, s.fsOptions...)
	if err != nil {
		return nil, fmt.Errorf("failed to download %s: %w", location, err)
	}
	problem, err := codec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", location, err)
	}
	return problem, nil
}

// Upload encodes the solution and writes it to the named instance output, returning its URL.
func (s *Service) Upload(ctx context.Context, name string, solution *model.Solution) (string, error) {
	if solution == nil {
		return "", fmt.Errorf("solution for %s was nil", name)
	}
	location := s.SolutionURL(name)
	if err := s.fs.Upload(ctx, location, file.DefaultFileOsMode, bytes.NewReader(codec.Encode(solution))); err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", location, err)
	}
	return location, nil
}
