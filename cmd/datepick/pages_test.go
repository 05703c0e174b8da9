package main

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPagesCommand(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{name: "default siblings", args: []string{"pages", "5", "10"}, want: "1 ... 4 [5] 6 ... 10\n"},
		{name: "no siblings", args: []string{"pages", "5", "10", "--siblings", "0"}, want: "1 ... [5] ... 10\n"},
		{name: "first page", args: []string{"pages", "1", "3"}, want: "[1] 2 3\n"},
		{name: "single page", args: []string{"pages", "1", "1"}, want: "\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stdout, _, err := execute(t, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, stdout)
		})
	}
}

func TestPagesUsesConfiguredSiblings(t *testing.T) {
	path := writeConfig(t, "page_siblings: 2\n")
	stdout, _, err := execute(t, "--config", path, "pages", "6", "12")
	require.NoError(t, err)
	assert.Equal(t, "1 ... 4 5 [6] 7 8 ... 12\n", stdout)
}

func TestPagesStyled(t *testing.T) {
	stdout, _, err := execute(t, "pages", "2", "12", "--styled")
	require.NoError(t, err)
	assert.Contains(t, ansi.Strip(stdout), "12")
	assert.Contains(t, ansi.Strip(stdout), "›")
}

func TestPagesRejectsBadArguments(t *testing.T) {
	for _, args := range [][]string{
		{"pages", "x", "10"},
		{"pages", "1", "y"},
		{"pages", "0", "10"},
		{"pages", "11", "10"},
		{"pages", "1"},
	} {
		_, _, err := execute(t, args...)
		assert.Error(t, err, args)
	}
}
