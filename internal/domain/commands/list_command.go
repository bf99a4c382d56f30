package commands

import (
	"context"

	"github.com/rios0rios0/reqgen/internal/domain/entities"
	"github.com/rios0rios0/reqgen/internal/domain/repositories"
)

// List is the interface for the list command.
type List interface {
	Execute(ctx context.Context, settings *entities.Settings) ([]entities.Dependency, error)
}

// ListCommand returns the direct dependencies of a manifest without writing
// anything.
type ListCommand struct {
	manifestRepo repositories.ManifestRepository
	markers      entities.BlockMarkers
}

// NewListCommand creates a new ListCommand.
func NewListCommand(
	manifestRepo repositories.ManifestRepository,
	markers entities.BlockMarkers,
) *ListCommand {
	return &ListCommand{
		manifestRepo: manifestRepo,
		markers:      markers,
	}
}

func (it *ListCommand) Execute(ctx context.Context, settings *entities.Settings) ([]entities.Dependency, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if settings == nil {
		settings = entities.DefaultSettings()
	}

	summary, err := loadDependencies(it.manifestRepo, it.markers, settings.Manifest)
	if err != nil {
		return nil, err
	}
	return summary.Dependencies, nil
}
