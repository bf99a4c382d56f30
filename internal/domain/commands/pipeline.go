package commands

import (
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/reqgen/internal/domain/entities"
	"github.com/rios0rios0/reqgen/internal/domain/repositories"
)

// manifestSummary is what the front half of the pipeline produces.
type manifestSummary struct {
	Dependencies  []entities.Dependency
	IndirectCount int
}

// loadDependencies reads the manifest, extracts the require block, drops
// indirect lines and parses the rest. Any failure aborts the whole load.
func loadDependencies(
	manifestRepo repositories.ManifestRepository,
	markers entities.BlockMarkers,
	path string,
) (*manifestSummary, error) {
	lines, err := manifestRepo.ReadLines(path)
	if err != nil {
		return nil, err
	}
	logger.Debugf("Read %d lines from %s", len(lines), path)

	block, err := entities.ExtractBlock(lines, markers)
	if err != nil {
		return nil, err
	}

	direct := entities.FilterIndirect(block)
	deps, err := entities.ParseDependencies(direct)
	if err != nil {
		return nil, err
	}

	for _, dep := range deps {
		if !dep.HasCanonicalVersion() {
			logger.Warnf("Dependency %s has a non-semver version %q", dep.Path, dep.Version)
		}
	}

	return &manifestSummary{
		Dependencies:  deps,
		IndirectCount: len(block) - len(direct),
	}, nil
}
