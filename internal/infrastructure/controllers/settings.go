package controllers

import (
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/reqgen/internal/domain/entities"
)

// resolveSettings builds the settings from, in increasing precedence, the
// defaults, the config file and the --manifest/--output flags.
func resolveSettings(cmd *cobra.Command) (*entities.Settings, error) {
	configPath, _ := cmd.Flags().GetString("config")
	manifestPath, _ := cmd.Flags().GetString("manifest")
	outputPath, _ := cmd.Flags().GetString("output")

	if configPath == "" {
		if found, err := entities.FindConfigFile(); err == nil {
			configPath = found
		}
	}

	settings := entities.DefaultSettings()
	if configPath != "" {
		logger.Debugf("Using config file: %s", configPath)

		var err error
		settings, err = entities.NewSettings(configPath)
		if err != nil {
			return nil, err
		}
	}

	if err := settings.Override(manifestPath, outputPath); err != nil {
		return nil, err
	}
	return settings, nil
}
