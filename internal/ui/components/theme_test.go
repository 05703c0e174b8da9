package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	assert.Equal(t, ThemeDefault, theme.Name)
	assert.Equal(t, "#16a34a", theme.Palette.Primary.Base.Light)
	assert.Equal(t, "#4ade80", theme.Palette.Primary.Base.Dark)
	assert.Equal(t, lipgloss.RoundedBorder(), theme.Borders.Rounded)
	assert.True(t, theme.Typography.Title.GetBold(), "title typography should be bold")
	assert.True(t, theme.Typography.Muted.GetFaint())
}

func TestPinnedThemes(t *testing.T) {
	light := LightTheme()
	dark := DarkTheme()

	assert.Equal(t, light.Palette.Primary.Base.Light, light.Palette.Primary.Base.Dark)
	assert.Equal(t, dark.Palette.Primary.Base.Light, dark.Palette.Primary.Base.Dark)
	assert.NotEqual(t, light.Palette.Surface.Base, dark.Palette.Surface.Base)
	assert.NotEqual(t, light.Typography.Body.GetForeground(), dark.Typography.Body.GetForeground())
}

func TestThemeByName(t *testing.T) {
	cases := map[string]string{
		"":        ThemeDefault,
		"default": ThemeDefault,
		" Light ": ThemeLight,
		"DARK":    ThemeDark,
	}
	for name, want := range cases {
		theme, ok := ThemeByName(name)
		require.True(t, ok, name)
		assert.Equal(t, want, theme.Name)
	}

	_, ok := ThemeByName("neon")
	assert.False(t, ok)
}

func TestSetGetTheme(t *testing.T) {
	original := GetTheme()
	defer SetTheme(original)

	custom := DefaultTheme()
	custom.Palette.Primary.Base = lipgloss.AdaptiveColor{Light: "#0000ff", Dark: "#1e3a8a"}
	SetTheme(custom)

	assert.Equal(t, "#0000ff", GetTheme().Palette.Primary.Base.Light)
}

func TestStyleWithAppliesInOrder(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	style := StyleWith(theme, lipgloss.NewStyle(),
		Background(PalettePrimary),
		nil,
		Border(BorderVariantRounded),
		BorderColour(PaletteNeutral),
		PaddingX(2),
		Modifier(func(s lipgloss.Style) lipgloss.Style { return s.Italic(true) }),
	)

	assert.Equal(t, theme.Palette.Primary.Base, style.GetBackground())
	assert.Equal(t, theme.Palette.Primary.OnBase, style.GetForeground())
	assert.Equal(t, lipgloss.RoundedBorder(), style.GetBorderStyle())
	assert.Equal(t, theme.Palette.Neutral.Base, style.GetBorderTopForeground())
	assert.Equal(t, 2, style.GetPaddingLeft())
	assert.Equal(t, 2, style.GetPaddingRight())
	assert.True(t, style.GetItalic())

	plain := StyleWith(theme, lipgloss.NewStyle().Border(lipgloss.NormalBorder()), Border(BorderVariantNone))
	assert.False(t, plain.GetBorderTop())
}

func TestTypographyInheritKeepsExplicitColours(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	style := StyleWith(theme, lipgloss.NewStyle(), Background(PalettePrimary), Typography(TypographyVariantEmphasis))

	assert.True(t, style.GetBold())
	assert.Equal(t, theme.Palette.Primary.OnBase, style.GetForeground())
}
