//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/reqgen/internal/domain/repositories"
)

// SpyDocumentRepository records every Write call.
type SpyDocumentRepository struct {
	WriteErr error
	// spy: inputs received
	WriteCalls []WriteCall
}

// WriteCall records a single invocation of Write.
type WriteCall struct {
	Path  string
	Lines []string
}

var _ repositories.DocumentRepository = (*SpyDocumentRepository)(nil)

func (s *SpyDocumentRepository) Write(path string, lines []string) error {
	s.WriteCalls = append(s.WriteCalls, WriteCall{Path: path, Lines: lines})
	return s.WriteErr
}
