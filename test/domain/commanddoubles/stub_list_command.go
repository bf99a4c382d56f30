//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/reqgen/internal/domain/commands"
	"github.com/rios0rios0/reqgen/internal/domain/entities"
)

// StubListCommand is a stub implementation of commands.List.
type StubListCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Dependencies     []entities.Dependency
	LastSettings     *entities.Settings
}

var _ commands.List = (*StubListCommand)(nil)

func (s *StubListCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
) ([]entities.Dependency, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	return s.Dependencies, s.ExecuteErr
}
