//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/reqgen/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// DependencyBuilder helps create test dependencies with a fluent interface.
type DependencyBuilder struct {
	*testkit.BaseBuilder
	path     string
	version  string
	indirect bool
}

// NewDependencyBuilder creates a new dependency builder with sensible defaults.
func NewDependencyBuilder() *DependencyBuilder {
	return &DependencyBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		path:        "github.com/test/dep",
		version:     "v1.0.0",
	}
}

// WithPath sets the module path as written in the manifest.
func (b *DependencyBuilder) WithPath(path string) *DependencyBuilder {
	b.path = path
	return b
}

// WithVersion sets the version.
func (b *DependencyBuilder) WithVersion(version string) *DependencyBuilder {
	b.version = version
	return b
}

// AsIndirect tags the manifest line as an indirect dependency.
func (b *DependencyBuilder) AsIndirect() *DependencyBuilder {
	b.indirect = true
	return b
}

// BuildLine returns the require-block line for the dependency.
func (b *DependencyBuilder) BuildLine() string {
	line := b.path + " " + b.version
	if b.indirect {
		line += " " + entities.IndirectTag
	}
	return line
}

// Build creates the dependency (satisfies testkit.Builder interface).
func (b *DependencyBuilder) Build() interface{} {
	return b.BuildDependency()
}

// BuildDependency parses the built line into a dependency. It panics if the
// builder was configured with a malformed line.
func (b *DependencyBuilder) BuildDependency() entities.Dependency {
	dep, err := entities.NewDependency(b.path + " " + b.version)
	if err != nil {
		panic(err)
	}
	return dep
}

// Reset clears the builder state, allowing it to be reused.
func (b *DependencyBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.path = "github.com/test/dep"
	b.version = "v1.0.0"
	b.indirect = false
	return b
}

// Clone creates a deep copy of the DependencyBuilder.
func (b *DependencyBuilder) Clone() testkit.Builder {
	return &DependencyBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		path:        b.path,
		version:     b.version,
		indirect:    b.indirect,
	}
}
