//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/rios0rios0/reqgen/internal/domain/entities"
	"github.com/rios0rios0/reqgen/test/domain/entitybuilders"
)

// bulletShape is what a rendered bullet looks like once parsed as markdown.
type bulletShape struct {
	topLevel    ast.NodeKind
	destination string
	label       string
	links       int
	codeSpans   int
}

func parseBullet(t *testing.T, line string) bulletShape {
	t.Helper()

	src := []byte(line)
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	shape := bulletShape{topLevel: doc.FirstChild().Kind()}
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Link:
			shape.links++
			shape.destination = string(node.Destination)
			if label, ok := node.FirstChild().(*ast.Text); ok {
				shape.label = string(label.Segment.Value(src))
			}
		case *ast.CodeSpan:
			shape.codeSpans++
		}
		return ast.WalkContinue, nil
	})
	require.NoError(t, err)
	return shape
}

func TestParseDependencies(t *testing.T) {
	t.Parallel()

	t.Run("should parse every line in order", func(t *testing.T) {
		t.Parallel()

		// given
		lines := []string{"github.com/spf13/cobra v1.10.2", "go.uber.org/dig v1.19.0"}

		// when
		deps, err := entities.ParseDependencies(lines)

		// then
		require.NoError(t, err)
		require.Len(t, deps, 2)
		assert.Equal(t, "spf13/cobra", deps[0].DisplayName)
		assert.Equal(t, "go.uber.org/dig", deps[1].DisplayName)
	})

	t.Run("should stop at the first malformed line", func(t *testing.T) {
		t.Parallel()

		// given
		lines := []string{"github.com/spf13/cobra v1.10.2", "broken", "go.uber.org/dig v1.19.0"}

		// when
		deps, err := entities.ParseDependencies(lines)

		// then
		require.ErrorIs(t, err, entities.ErrTooFewFields)
		assert.Nil(t, deps)
	})
}

func TestRenderDocument(t *testing.T) {
	t.Parallel()

	t.Run("should emit only the header when there are no dependencies", func(t *testing.T) {
		t.Parallel()

		// when
		lines := entities.RenderDocument(nil)

		// then
		assert.Equal(t, []string{"<!-- insert:REQUIREMENTS_BE -->"}, lines)
	})

	t.Run("should emit one bullet per dependency after the header", func(t *testing.T) {
		t.Parallel()

		// given
		deps := []entities.Dependency{
			entitybuilders.NewDependencyBuilder().WithPath("example.com/org/pkg/v2").WithVersion("v2.3.1").BuildDependency(),
			entitybuilders.NewDependencyBuilder().WithPath("github.com/stretchr/testify").WithVersion("v1.11.1").BuildDependency(),
		}

		// when
		lines := entities.RenderDocument(deps)

		// then
		assert.Equal(t, []string{
			"<!-- insert:REQUIREMENTS_BE -->",
			"- [org/pkg](https://example.com/org/pkg) `(v2.3.1)`",
			"- [stretchr/testify](https://github.com/stretchr/testify) `(v1.11.1)`",
		}, lines)
	})

	t.Run("should render bullets that parse as a list item with one link", func(t *testing.T) {
		t.Parallel()

		// given
		dep := entitybuilders.NewDependencyBuilder().
			WithPath("github.com/go-git/go-git/v5").
			WithVersion("v5.17.2").
			BuildDependency()

		// when
		lines := entities.RenderDocument([]entities.Dependency{dep})
		shape := parseBullet(t, lines[1])

		// then
		assert.Equal(t, ast.KindList, shape.topLevel)
		assert.Equal(t, 1, shape.links)
		assert.Equal(t, 1, shape.codeSpans)
		assert.Equal(t, "https://github.com/go-git/go-git", shape.destination)
		assert.Equal(t, "go-git/go-git", shape.label)
	})
}
