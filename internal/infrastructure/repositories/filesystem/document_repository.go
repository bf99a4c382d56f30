package filesystem

import (
	"os"
	"strings"

	"github.com/rios0rios0/reqgen/internal/domain/entities"
	"github.com/rios0rios0/reqgen/internal/domain/repositories"
)

const (
	opWrite          = "write"
	documentFileMode = 0o644
)

// DocumentRepository writes generated documents to the local filesystem.
type DocumentRepository struct{}

var _ repositories.DocumentRepository = (*DocumentRepository)(nil)

// NewDocumentRepository creates a filesystem-backed DocumentRepository.
func NewDocumentRepository() *DocumentRepository {
	return &DocumentRepository{}
}

func (r *DocumentRepository) Write(path string, lines []string) error {
	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	if err := os.WriteFile(path, []byte(sb.String()), documentFileMode); err != nil {
		return &entities.FileAccessError{Op: opWrite, Path: path, Err: err}
	}
	return nil
}
