//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/reqgen/internal/domain/commands"
)

// StubGenerateCommand is a stub implementation of commands.Generate.
type StubGenerateCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Result           *commands.GenerateResult
	LastOpts         commands.GenerateOptions
}

var _ commands.Generate = (*StubGenerateCommand)(nil)

func (s *StubGenerateCommand) Execute(
	_ context.Context,
	opts commands.GenerateOptions,
) (*commands.GenerateResult, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	if s.ExecuteErr != nil {
		return nil, s.ExecuteErr
	}
	return s.Result, nil
}
