package main

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/reqgen/internal"
	"github.com/rios0rios0/reqgen/internal/domain/entities"
)

func buildRootCommand(appContext *internal.AppInternal) *cobra.Command {
	defaultController := appContext.GetDefaultController()
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "reqgen",
		Short: "Render the direct Go module dependencies as a markdown list",
		Long: `Reads the require block of a go.mod file, drops the dependencies
tagged "// indirect", and overwrites the requirements document with one
markdown link per direct module.

Running without a subcommand is the same as "reqgen generate" with the
default paths (./go.mod -> ./docs/requirements-be.md).`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(command *cobra.Command, _ []string) {
			if verbose, _ := command.Flags().GetBool("verbose"); verbose {
				logger.SetLevel(logger.DebugLevel)
			}
		},
		RunE: defaultController.Execute,
	}

	// Global persistent flags
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: auto-detect)")
	cmd.PersistentFlags().StringP("manifest", "m", "",
		"Manifest to read (default: "+entities.DefaultManifestPath+")")
	cmd.PersistentFlags().StringP("output", "o", "",
		"Document to overwrite (default: "+entities.DefaultOutputPath+")")
	cmd.PersistentFlags().Bool("dry-run", false,
		"Show the document that would be written without writing it")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")

	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Args:  cobra.NoArgs,
			RunE:  controller.Execute,
		}
		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	appContext := injectAppContext()
	cobraRoot := buildRootCommand(appContext)
	addSubcommands(cobraRoot, appContext)

	if err := cobraRoot.Execute(); err != nil {
		logger.Fatalf("Error executing 'reqgen': %s", err)
	}
}
