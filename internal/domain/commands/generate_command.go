package commands

import (
	"context"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/reqgen/internal/domain/entities"
	"github.com/rios0rios0/reqgen/internal/domain/repositories"
)

// Generate is the interface for the generate command.
type Generate interface {
	Execute(ctx context.Context, opts GenerateOptions) (*GenerateResult, error)
}

// GenerateOptions holds runtime options for a single generation.
type GenerateOptions struct {
	Settings *entities.Settings
	DryRun   bool
}

// GenerateResult summarises a finished generation.
type GenerateResult struct {
	ManifestPath  string
	OutputPath    string
	DirectCount   int
	IndirectCount int
	Written       bool
}

// GenerateCommand renders the direct dependencies of a manifest into the
// requirements document.
type GenerateCommand struct {
	manifestRepo repositories.ManifestRepository
	documentRepo repositories.DocumentRepository
	markers      entities.BlockMarkers
}

// NewGenerateCommand creates a new GenerateCommand.
func NewGenerateCommand(
	manifestRepo repositories.ManifestRepository,
	documentRepo repositories.DocumentRepository,
	markers entities.BlockMarkers,
) *GenerateCommand {
	return &GenerateCommand{
		manifestRepo: manifestRepo,
		documentRepo: documentRepo,
		markers:      markers,
	}
}

// Execute runs the whole read-transform-write sequence. The output file is
// only touched once every dependency line has been parsed.
func (it *GenerateCommand) Execute(ctx context.Context, opts GenerateOptions) (*GenerateResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	settings := opts.Settings
	if settings == nil {
		settings = entities.DefaultSettings()
	}

	summary, err := loadDependencies(it.manifestRepo, it.markers, settings.Manifest)
	if err != nil {
		return nil, err
	}

	result := &GenerateResult{
		ManifestPath:  settings.Manifest,
		OutputPath:    settings.Output,
		DirectCount:   len(summary.Dependencies),
		IndirectCount: summary.IndirectCount,
	}
	logger.Infof(
		"Found %d direct and %d indirect dependencies in %s",
		result.DirectCount, result.IndirectCount, settings.Manifest,
	)

	document := entities.RenderDocument(summary.Dependencies)

	if opts.DryRun {
		logger.Infof("[DRY RUN] Would write %s:\n%s", settings.Output, strings.Join(document, "\n"))
		return result, nil
	}

	if err = ctx.Err(); err != nil {
		return nil, err
	}
	if err = it.documentRepo.Write(settings.Output, document); err != nil {
		return nil, err
	}

	result.Written = true
	logger.Infof("Wrote %s", settings.Output)
	return result, nil
}
