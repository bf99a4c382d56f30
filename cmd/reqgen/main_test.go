//go:build integration

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/reqgen/internal/domain/entities"
	"github.com/rios0rios0/reqgen/test/domain/entitybuilders"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	appContext := injectAppContext()
	root := buildRootCommand(appContext)
	addSubcommands(root, appContext)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeManifest(t *testing.T, dir string) string {
	t.Helper()

	content := entitybuilders.NewManifestBuilder().
		WithDependency(entitybuilders.NewDependencyBuilder().WithPath("example.com/org/pkg/v2").WithVersion("v2.3.1")).
		WithDependency(entitybuilders.NewDependencyBuilder().WithPath("example.com/org/other").WithVersion("v1.0.0").AsIndirect()).
		WithDependency(entitybuilders.NewDependencyBuilder().WithPath("github.com/sirupsen/logrus").WithVersion("v1.9.4")).
		WithIndirectBlock(entitybuilders.NewDependencyBuilder().WithPath("golang.org/x/sys").WithVersion("v0.42.0").AsIndirect()).
		BuildContent()

	path := filepath.Join(dir, "go.mod")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRootCommand(t *testing.T) {
	t.Parallel()

	t.Run("should generate the requirements document from the root command", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		manifest := writeManifest(t, dir)
		output := filepath.Join(dir, "requirements-be.md")

		// when
		_, err := runCLI(t, "--manifest", manifest, "--output", output)

		// then
		require.NoError(t, err)
		data, readErr := os.ReadFile(output)
		require.NoError(t, readErr)
		assert.Equal(t,
			"<!-- insert:REQUIREMENTS_BE -->\n"+
				"- [org/pkg](https://example.com/org/pkg) `(v2.3.1)`\n"+
				"- [sirupsen/logrus](https://github.com/sirupsen/logrus) `(v1.9.4)`\n",
			string(data),
		)
	})

	t.Run("should be idempotent across runs", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		manifest := writeManifest(t, dir)
		output := filepath.Join(dir, "requirements-be.md")

		// when
		_, err := runCLI(t, "generate", "-m", manifest, "-o", output)
		require.NoError(t, err)
		first, err := os.ReadFile(output)
		require.NoError(t, err)
		_, err = runCLI(t, "generate", "-m", manifest, "-o", output)
		require.NoError(t, err)
		second, err := os.ReadFile(output)
		require.NoError(t, err)

		// then
		assert.Equal(t, first, second)
	})

	t.Run("should leave the output untouched when the start marker is missing", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		manifest := filepath.Join(dir, "go.mod")
		require.NoError(t, os.WriteFile(manifest, []byte("module x\n\nrequire a/b v1.0.0\n"), 0o600))
		output := filepath.Join(dir, "requirements-be.md")
		require.NoError(t, os.WriteFile(output, []byte("previous\n"), 0o600))

		// when
		_, err := runCLI(t, "-m", manifest, "-o", output)

		// then
		require.ErrorIs(t, err, entities.ErrStartMarkerNotFound)
		data, readErr := os.ReadFile(output)
		require.NoError(t, readErr)
		assert.Equal(t, "previous\n", string(data))
	})

	t.Run("should list dependencies without creating the output", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		manifest := writeManifest(t, dir)
		output := filepath.Join(dir, "requirements-be.md")

		// when
		out, err := runCLI(t, "list", "-m", manifest, "-o", output)

		// then
		require.NoError(t, err)
		assert.Equal(t,
			"[org/pkg](https://example.com/org/pkg) `(v2.3.1)`\n"+
				"[sirupsen/logrus](https://github.com/sirupsen/logrus) `(v1.9.4)`\n",
			out,
		)
		assert.NoFileExists(t, output)
	})

	t.Run("should reject positional arguments", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := runCLI(t, "unexpected")

		// then
		require.Error(t, err)
	})
}
