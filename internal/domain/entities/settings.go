package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	DefaultManifestPath = "./go.mod"
	DefaultOutputPath   = "./docs/requirements-be.md"
)

// Settings holds the paths the generator reads from and writes to.
type Settings struct {
	Manifest string `yaml:"manifest"`
	Output   string `yaml:"output"`
}

// DefaultSettings returns the settings used when no config file is present.
func DefaultSettings() *Settings {
	return &Settings{
		Manifest: DefaultManifestPath,
		Output:   DefaultOutputPath,
	}
}

// NewSettings reads a YAML config file on top of the defaults.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	settings := DefaultSettings()
	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	if validateErr := validateSettings(settings); validateErr != nil {
		return nil, validateErr
	}

	return settings, nil
}

// Override replaces the configured paths with non-empty values.
func (s *Settings) Override(manifest, output string) error {
	if manifest != "" {
		s.Manifest = manifest
	}
	if output != "" {
		s.Output = output
	}
	return validateSettings(s)
}

// FindConfigFile searches for a configuration file in standard locations.
func FindConfigFile() (string, error) {
	locations := []string{
		".",
		".config",
		"configs",
	}

	patterns := []string{
		".reqgen.yaml",
		".reqgen.yml",
		"reqgen.yaml",
		"reqgen.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

func validateSettings(s *Settings) error {
	if s.Manifest == "" {
		return errors.New("manifest path is required")
	}
	if s.Output == "" {
		return errors.New("output path is required")
	}
	if filepath.Clean(s.Manifest) == filepath.Clean(s.Output) {
		return fmt.Errorf("output path %q must differ from the manifest path", s.Output)
	}
	return nil
}
