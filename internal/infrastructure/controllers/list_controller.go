package controllers

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/reqgen/internal/domain/commands"
	"github.com/rios0rios0/reqgen/internal/domain/entities"
)

// ListController handles the "list" subcommand.
type ListController struct {
	command commands.List
}

// NewListController creates a new ListController.
func NewListController(command commands.List) *ListController {
	return &ListController{command: command}
}

// GetBind returns the Cobra command metadata for the list controller.
func (it *ListController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "list",
		Short: "Print the direct dependencies without writing any file",
		Long:  `Print one rendered markdown line per direct dependency of the manifest.`,
	}
}

// Execute prints the rendered dependencies to the command output.
func (it *ListController) Execute(cmd *cobra.Command, _ []string) error {
	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	deps, err := it.command.Execute(context.Background(), settings)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, dep := range deps {
		if _, printErr := fmt.Fprintln(out, dep.Markdown()); printErr != nil {
			return printErr
		}
	}
	return nil
}
