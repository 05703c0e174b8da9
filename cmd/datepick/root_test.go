package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/datepick/internal/ui/components"
	dperrors "github.com/alexisbeaulieu97/datepick/pkg/errors"
)

func TestRootRegistersCommands(t *testing.T) {
	root := newRootCmd()
	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"pick", "grid", "pages", "serve", "version"} {
		assert.True(t, names[want], want)
	}
	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
	assert.NotNil(t, root.PersistentFlags().Lookup("verbose"))
}

func TestBrokenConfigIsReported(t *testing.T) {
	path := writeConfig(t, "format: [1, 2]\n")
	_, _, err := execute(t, "--config", path, "pages", "1", "2")

	var perr *dperrors.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 1, perr.Line)
}

func TestMissingExplicitConfigIsAnError(t *testing.T) {
	_, _, err := execute(t, "--config", "does-not-exist.yaml", "pages", "1", "2")
	require.Error(t, err)
}

func TestVerboseEnablesDebugLogging(t *testing.T) {
	path := writeConfig(t, "log:\n  level: warn\n  human_readable: false\n")

	_, stderr, err := execute(t, "--config", path, "pages", "1", "2")
	require.NoError(t, err)
	assert.NotContains(t, stderr, "configuration loaded")

	_, stderr, err = execute(t, "--config", path, "--verbose", "pages", "1", "2")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"message":"configuration loaded"`)
	assert.Contains(t, stderr, `"command":"pages"`)
}

func TestThemeFlagInstallsTheme(t *testing.T) {
	original := components.GetTheme()
	t.Cleanup(func() { components.SetTheme(original) })

	_, _, err := execute(t, "grid", "--month", "2024-02", "--theme", "dark", "--json")
	require.NoError(t, err)
	assert.Equal(t, components.ThemeDark, components.GetTheme().Name)

	_, _, err = execute(t, "grid", "--theme", "neon")
	require.Error(t, err)
}
