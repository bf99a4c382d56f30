package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/reqgen/internal/domain/commands"
	"github.com/rios0rios0/reqgen/internal/domain/entities"
)

// GenerateController handles the "generate" subcommand and the bare root command.
type GenerateController struct {
	command commands.Generate
}

// NewGenerateController creates a new GenerateController.
func NewGenerateController(command commands.Generate) *GenerateController {
	return &GenerateController{command: command}
}

// GetBind returns the Cobra command metadata for the generate controller.
func (it *GenerateController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "generate",
		Short: "Write the direct dependencies into the requirements document",
		Long: `Read the require block of the manifest, drop indirect dependencies,
and overwrite the requirements document with one markdown bullet per module.`,
	}
}

// Execute runs a single generation.
func (it *GenerateController) Execute(cmd *cobra.Command, _ []string) error {
	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")

	_, err = it.command.Execute(context.Background(), commands.GenerateOptions{
		Settings: settings,
		DryRun:   dryRun,
	})
	return err
}
