package filesystem

import (
	"bufio"
	"os"
	"strings"

	"github.com/rios0rios0/reqgen/internal/domain/entities"
	"github.com/rios0rios0/reqgen/internal/domain/repositories"
)

const opRead = "read"

// ManifestRepository reads manifests from the local filesystem.
type ManifestRepository struct{}

var _ repositories.ManifestRepository = (*ManifestRepository)(nil)

// NewManifestRepository creates a filesystem-backed ManifestRepository.
func NewManifestRepository() *ManifestRepository {
	return &ManifestRepository{}
}

func (r *ManifestRepository) ReadLines(path string) ([]string, error) {
	file, err := os.Open(path) //nolint:gosec // path comes from the operator
	if err != nil {
		return nil, &entities.FileAccessError{Op: opRead, Path: path, Err: err}
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if scanErr := scanner.Err(); scanErr != nil {
		return nil, &entities.FileAccessError{Op: opRead, Path: path, Err: scanErr}
	}

	return lines, nil
}
