package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	dperrors "github.com/alexisbeaulieu97/datepick/pkg/errors"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "datepick.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestParseConfig(t *testing.T) {
	t.Parallel()

	validYAML := `format: "DD.MM.YYYY"
placeholder: "Pick a day"
min_date: "2024-04-10"
max_date: "2024-04-20"
theme: dark
log:
  level: debug
server:
  addr: ":9090"
  allowed_origins:
    - "https://app.example"
`

	invalidYAML := `format: [1, 2]
theme: dark
`

	badLayout := `format: "DD/MM"
`

	badDate := `min_date: "2024-02-30"
`

	reversed := `min_date: "2024-05-01"
max_date: "2024-04-01"
`

	badAddr := `server:
  addr: "localhost"
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, cfg *Config, err error)
	}{
		{
			name:     "valid configuration is parsed",
			contents: validYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.NotNil(t, cfg)
				require.Equal(t, "DD.MM.YYYY", cfg.Format)
				require.Equal(t, "Pick a day", cfg.Placeholder)
				require.Equal(t, "dark", cfg.Theme)
				require.Equal(t, "debug", cfg.Log.Level)
				require.True(t, cfg.Log.HumanReadable, "omitted keys keep defaults")
				require.Equal(t, 1, cfg.PageSiblings)
				require.Equal(t, ":9090", cfg.Server.Addr)
				require.Equal(t, []string{"https://app.example"}, cfg.Server.AllowedOrigins)

				bounds, err := cfg.Bounds()
				require.NoError(t, err)
				require.NotNil(t, bounds.Min)
				require.NotNil(t, bounds.Max)
				require.Equal(t, "2024-04-10", bounds.Min.String())
				require.Equal(t, "2024-04-20", bounds.Max.String())
			},
		},
		{
			name:     "yaml syntax errors carry the line",
			contents: invalidYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Nil(t, cfg)
				var parseErr *dperrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Equal(t, 1, parseErr.Line)
			},
		},
		{
			name:     "layout without year is rejected",
			contents: badLayout,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *dperrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "format", validationErr.Field)
				require.Contains(t, validationErr.Message, "date_layout")
			},
		},
		{
			name:     "impossible date is rejected",
			contents: badDate,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *dperrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "min_date", validationErr.Field)
			},
		},
		{
			name:     "max before min is rejected",
			contents: reversed,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *dperrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "max_date", validationErr.Field)
				require.Contains(t, validationErr.Message, "before min_date")
			},
		},
		{
			name:     "listen address needs a port",
			contents: badAddr,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *dperrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "server.addr", validationErr.Field)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := ParseConfig(writeConfig(t, tc.contents))
			tc.assert(t, cfg, err)
		})
	}
}

func TestParseConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	var parseErr *dperrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, 0, parseErr.Line)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), *cfg)

	_, err = Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)

	path := writeConfig(t, "theme: light\n")
	cfg, err = Load(path)
	require.NoError(t, err)
	require.Equal(t, "light", cfg.Theme)
	require.Equal(t, Default().Format, cfg.Format)
}
