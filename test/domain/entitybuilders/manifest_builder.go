//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"strings"

	"github.com/rios0rios0/reqgen/internal/domain/entities"
)

// ManifestBuilder assembles go.mod style manifest content.
type ManifestBuilder struct {
	module   string
	required []string
	indirect []string
}

// NewManifestBuilder creates a manifest with a module directive and no requirements.
func NewManifestBuilder() *ManifestBuilder {
	return &ManifestBuilder{module: "github.com/test/project"}
}

// WithDependency appends a line to the first require block.
func (b *ManifestBuilder) WithDependency(dep *DependencyBuilder) *ManifestBuilder {
	b.required = append(b.required, dep.BuildLine())
	return b
}

// WithIndirectBlock appends a line to a second require block after the first.
func (b *ManifestBuilder) WithIndirectBlock(dep *DependencyBuilder) *ManifestBuilder {
	b.indirect = append(b.indirect, dep.BuildLine())
	return b
}

// BuildLines returns the manifest already split and trimmed, as a
// ManifestRepository would return it.
func (b *ManifestBuilder) BuildLines() []string {
	lines := strings.Split(b.BuildContent(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return lines
}

// BuildContent returns the raw manifest text with tab-indented requirements.
func (b *ManifestBuilder) BuildContent() string {
	var sb strings.Builder
	sb.WriteString("module " + b.module + "\n\ngo 1.26.1\n\n")
	writeBlock(&sb, b.required)
	if len(b.indirect) > 0 {
		sb.WriteString("\n")
		writeBlock(&sb, b.indirect)
	}
	return sb.String()
}

func writeBlock(sb *strings.Builder, lines []string) {
	sb.WriteString(entities.DefaultStartMarker + "\n")
	for _, line := range lines {
		sb.WriteString("\t" + line + "\n")
	}
	sb.WriteString(entities.DefaultEndMarker + "\n")
}
