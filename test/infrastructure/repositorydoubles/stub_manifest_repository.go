//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/reqgen/internal/domain/repositories"
)

// StubManifestRepository is a stub implementation of repositories.ManifestRepository.
type StubManifestRepository struct {
	Lines   []string
	ReadErr error
	// spy: paths that were requested
	ReadPaths []string
}

var _ repositories.ManifestRepository = (*StubManifestRepository)(nil)

func (s *StubManifestRepository) ReadLines(path string) ([]string, error) {
	s.ReadPaths = append(s.ReadPaths, path)
	if s.ReadErr != nil {
		return nil, s.ReadErr
	}
	return s.Lines, nil
}
