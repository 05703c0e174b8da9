package components

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme names accepted by ThemeByName and the configuration file.
const (
	ThemeDefault = "default"
	ThemeLight   = "light"
	ThemeDark    = "dark"
)

type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantRounded
	BorderVariantThick
)

type TypographyVariant int

const (
	TypographyVariantBody TypographyVariant = iota
	TypographyVariantTitle
	TypographyVariantEmphasis
	TypographyVariantMuted
)

type AlertVariant int

const (
	AlertVariantInfo AlertVariant = iota
	AlertVariantSuccess
	AlertVariantWarning
	AlertVariantError
)

// ColourSet represents a semantic colour with its base, the colour drawn on
// top of it, and a quieter muted shade.
type ColourSet struct {
	Base   lipgloss.AdaptiveColor
	OnBase lipgloss.AdaptiveColor
	Muted  lipgloss.AdaptiveColor
}

// Palette describes semantic colour slots used by components.
type Palette struct {
	Primary ColourSet
	Surface ColourSet
	Success ColourSet
	Warning ColourSet
	Danger  ColourSet
	Info    ColourSet
	Neutral ColourSet
}

// BorderSet groups reusable border definitions.
type BorderSet struct {
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
}

// TypographyScale contains the text presets used by the calendar widgets.
type TypographyScale struct {
	Body     lipgloss.Style
	Title    lipgloss.Style
	Emphasis lipgloss.Style
	Muted    lipgloss.Style
}

// Theme represents the styling shared by all components.
type Theme struct {
	Name       string
	Palette    Palette
	Borders    BorderSet
	Typography TypographyScale
}

// ThemeManager coordinates access to a Theme instance.
type ThemeManager struct {
	mu    sync.RWMutex
	theme Theme
}

// NewThemeManager allocates a ThemeManager with the provided theme.
func NewThemeManager(theme Theme) *ThemeManager {
	return &ThemeManager{theme: theme}
}

// SetTheme replaces the managed theme.
func (m *ThemeManager) SetTheme(theme Theme) {
	m.mu.Lock()
	m.theme = theme
	m.mu.Unlock()
}

// Theme returns the managed theme.
func (m *ThemeManager) Theme() Theme {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.theme
}

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

// DefaultTheme returns the green-accented theme that adapts to the
// terminal background.
func DefaultTheme() Theme {
	palette := Palette{
		Primary: ColourSet{
			Base:   ac("#16a34a", "#4ade80"),
			OnBase: ac("#f8fafc", "#052e16"),
			Muted:  ac("#15803d", "#166534"),
		},
		Surface: ColourSet{
			Base:   ac("#f9fafb", "#111827"),
			OnBase: ac("#111827", "#f9fafb"),
			Muted:  ac("#e2e8f0", "#1f2937"),
		},
		Success: ColourSet{
			Base:   ac("#22c55e", "#4ade80"),
			OnBase: ac("#052e16", "#022c22"),
			Muted:  ac("#16a34a", "#15803d"),
		},
		Warning: ColourSet{
			Base:   ac("#eab308", "#facc15"),
			OnBase: ac("#422006", "#422006"),
			Muted:  ac("#ca8a04", "#a16207"),
		},
		Danger: ColourSet{
			Base:   ac("#ef4444", "#f87171"),
			OnBase: ac("#f8fafc", "#450a0a"),
			Muted:  ac("#dc2626", "#b91c1c"),
		},
		Info: ColourSet{
			Base:   ac("#06b6d4", "#22d3ee"),
			OnBase: ac("#083344", "#04121a"),
			Muted:  ac("#0891b2", "#0e7490"),
		},
		Neutral: ColourSet{
			Base:   ac("#64748b", "#94a3b8"),
			OnBase: ac("#f1f5f9", "#0f172a"),
			Muted:  ac("#cbd5e1", "#475569"),
		},
	}

	return Theme{
		Name:    ThemeDefault,
		Palette: palette,
		Borders: BorderSet{
			Normal:  lipgloss.NormalBorder(),
			Rounded: lipgloss.RoundedBorder(),
			Thick:   lipgloss.ThickBorder(),
		},
		Typography: defaultTypography(palette),
	}
}

func defaultTypography(p Palette) TypographyScale {
	body := lipgloss.NewStyle().Foreground(p.Surface.OnBase)
	return TypographyScale{
		Body:     body,
		Title:    body.Bold(true),
		Emphasis: body.Bold(true),
		Muted:    lipgloss.NewStyle().Foreground(p.Neutral.Base).Faint(true),
	}
}

// LightTheme pins the default palette to its light-background shades.
func LightTheme() Theme {
	theme := DefaultTheme()
	theme.Name = ThemeLight
	theme.Palette = pinPalette(theme.Palette, func(c lipgloss.AdaptiveColor) string { return c.Light })
	theme.Typography = defaultTypography(theme.Palette)
	return theme
}

// DarkTheme pins the default palette to its dark-background shades.
func DarkTheme() Theme {
	theme := DefaultTheme()
	theme.Name = ThemeDark
	theme.Palette = pinPalette(theme.Palette, func(c lipgloss.AdaptiveColor) string { return c.Dark })
	theme.Typography = defaultTypography(theme.Palette)
	return theme
}

func pinPalette(p Palette, pick func(lipgloss.AdaptiveColor) string) Palette {
	pin := func(cs ColourSet) ColourSet {
		return ColourSet{
			Base:   ac(pick(cs.Base), pick(cs.Base)),
			OnBase: ac(pick(cs.OnBase), pick(cs.OnBase)),
			Muted:  ac(pick(cs.Muted), pick(cs.Muted)),
		}
	}
	return Palette{
		Primary: pin(p.Primary),
		Surface: pin(p.Surface),
		Success: pin(p.Success),
		Warning: pin(p.Warning),
		Danger:  pin(p.Danger),
		Info:    pin(p.Info),
		Neutral: pin(p.Neutral),
	}
}

// ThemeByName resolves a configured theme name.
func ThemeByName(name string) (Theme, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", ThemeDefault:
		return DefaultTheme(), true
	case ThemeLight:
		return LightTheme(), true
	case ThemeDark:
		return DarkTheme(), true
	default:
		return Theme{}, false
	}
}

var defaultThemeManager = NewThemeManager(DefaultTheme())

// SetTheme sets the global theme
func SetTheme(theme Theme) {
	defaultThemeManager.SetTheme(theme)
}

// GetTheme returns the current global theme
func GetTheme() Theme {
	return defaultThemeManager.Theme()
}

// StyleApplier represents a function that can apply styling to a lipgloss.Style
type StyleApplier interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// StyleFunc implements StyleApplier for a function type
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

func (fn StyleFunc) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	return fn(base, theme)
}

// Style applies a series of modifiers using the global theme.
func Style(base lipgloss.Style, appliers ...StyleApplier) lipgloss.Style {
	return StyleWith(GetTheme(), base, appliers...)
}

// StyleWith applies a series of modifiers using theme.
func StyleWith(theme Theme, base lipgloss.Style, appliers ...StyleApplier) lipgloss.Style {
	for _, applier := range appliers {
		if applier != nil {
			base = applier.Apply(base, theme)
		}
	}
	return base
}

// PaletteSlot provides access to a semantic colour slot.
type PaletteSlot func(Palette) ColourSet

var (
	PalettePrimary PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSurface PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteSuccess PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteWarning PaletteSlot = func(p Palette) ColourSet { return p.Warning }
	PaletteDanger  PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteInfo    PaletteSlot = func(p Palette) ColourSet { return p.Info }
	PaletteNeutral PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
)

// Background applies a semantic background colour and matching foreground.
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a semantic foreground colour.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

// BorderColour sets the border foreground to a semantic colour.
func BorderColour(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.BorderForeground(slot(theme.Palette).Base)
	}
}

func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		switch variant {
		case BorderVariantNormal:
			return base.Border(theme.Borders.Normal)
		case BorderVariantRounded:
			return base.Border(theme.Borders.Rounded)
		case BorderVariantThick:
			return base.Border(theme.Borders.Thick)
		default:
			return base.Border(lipgloss.Border{}, false)
		}
	}
}

func PaddingX(n int) StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.PaddingLeft(n).PaddingRight(n)
	}
}

// Typography applies a typography preset.
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		typo := theme.Typography
		switch variant {
		case TypographyVariantTitle:
			return base.Inherit(typo.Title)
		case TypographyVariantEmphasis:
			return base.Inherit(typo.Emphasis)
		case TypographyVariantMuted:
			return base.Inherit(typo.Muted)
		default:
			return base.Inherit(typo.Body)
		}
	}
}

// Modifier wraps a plain lipgloss transformation as an applier.
func Modifier(fn func(lipgloss.Style) lipgloss.Style) StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return fn(base)
	}
}
