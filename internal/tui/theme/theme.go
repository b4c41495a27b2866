// Package theme defines color themes for the dashboard.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name          string
	Background    lipgloss.Color // Main app background
	Surface       lipgloss.Color // Card/panel backgrounds
	SurfaceBright lipgloss.Color // Highlighted surface (selected row)
	Border        lipgloss.Color // Subtle borders
	BorderAccent  lipgloss.Color // Accent-colored borders for focus states
	TextDim       lipgloss.Color // Lowest contrast text (hints, disabled)
	TextMuted     lipgloss.Color // Secondary text (labels, metadata)
	TextPrimary   lipgloss.Color // Primary content text
	Accent        lipgloss.Color // Primary accent
	AccentBright  lipgloss.Color // Brighter accent for emphasis
	Green         lipgloss.Color
	GreenBright   lipgloss.Color
	Orange        lipgloss.Color
	Red           lipgloss.Color
	Blue          lipgloss.Color
	Yellow        lipgloss.Color
	Magenta       lipgloss.Color
	Cyan          lipgloss.Color
}

// Active is the currently selected theme.
var Active = FlexokiDark

// FlexokiDark is the default theme - warm, paper-inspired dark theme.
var FlexokiDark = Theme{
	Name:          "flexoki-dark",
	Background:    lipgloss.Color("#100F0F"),
	Surface:       lipgloss.Color("#1C1B1A"),
	SurfaceBright: lipgloss.Color("#343331"),
	Border:        lipgloss.Color("#403E3C"),
	BorderAccent:  lipgloss.Color("#3AA99F"),
	TextDim:       lipgloss.Color("#575653"),
	TextMuted:     lipgloss.Color("#878580"),
	TextPrimary:   lipgloss.Color("#FFFCF0"),
	Accent:        lipgloss.Color("#3AA99F"),
	AccentBright:  lipgloss.Color("#5BC8BE"),
	Green:         lipgloss.Color("#879A39"),
	GreenBright:   lipgloss.Color("#A3B859"),
	Orange:        lipgloss.Color("#DA702C"),
	Red:           lipgloss.Color("#D14D41"),
	Blue:          lipgloss.Color("#4385BE"),
	Yellow:        lipgloss.Color("#D0A215"),
	Magenta:       lipgloss.Color("#CE5D97"),
	Cyan:          lipgloss.Color("#24837B"),
}

// Nord is a cool arctic blue theme.
var Nord = Theme{
	Name:          "nord",
	Background:    lipgloss.Color("#2E3440"),
	Surface:       lipgloss.Color("#3B4252"),
	SurfaceBright: lipgloss.Color("#434C5E"),
	Border:        lipgloss.Color("#4C566A"),
	BorderAccent:  lipgloss.Color("#88C0D0"),
	TextDim:       lipgloss.Color("#4C566A"),
	TextMuted:     lipgloss.Color("#D8DEE9"),
	TextPrimary:   lipgloss.Color("#ECEFF4"),
	Accent:        lipgloss.Color("#88C0D0"),
	AccentBright:  lipgloss.Color("#8FBCBB"),
	Green:         lipgloss.Color("#A3BE8C"),
	GreenBright:   lipgloss.Color("#B5CE9F"),
	Orange:        lipgloss.Color("#D08770"),
	Red:           lipgloss.Color("#BF616A"),
	Blue:          lipgloss.Color("#81A1C1"),
	Yellow:        lipgloss.Color("#EBCB8B"),
	Magenta:       lipgloss.Color("#B48EAD"),
	Cyan:          lipgloss.Color("#8FBCBB"),
}

// GruvboxDark is a retro warm theme with earthy colors.
var GruvboxDark = Theme{
	Name:          "gruvbox-dark",
	Background:    lipgloss.Color("#282828"),
	Surface:       lipgloss.Color("#3C3836"),
	SurfaceBright: lipgloss.Color("#504945"),
	Border:        lipgloss.Color("#665C54"),
	BorderAccent:  lipgloss.Color("#8EC07C"),
	TextDim:       lipgloss.Color("#7C6F64"),
	TextMuted:     lipgloss.Color("#A89984"),
	TextPrimary:   lipgloss.Color("#EBDBB2"),
	Accent:        lipgloss.Color("#8EC07C"),
	AccentBright:  lipgloss.Color("#B8DA9F"),
	Green:         lipgloss.Color("#B8BB26"),
	GreenBright:   lipgloss.Color("#D5D85E"),
	Orange:        lipgloss.Color("#FE8019"),
	Red:           lipgloss.Color("#FB4934"),
	Blue:          lipgloss.Color("#83A598"),
	Yellow:        lipgloss.Color("#FABD2F"),
	Magenta:       lipgloss.Color("#D3869B"),
	Cyan:          lipgloss.Color("#8EC07C"),
}

// Terminal uses ANSI 16 colors only - maximum compatibility.
var Terminal = Theme{
	Name:          "terminal",
	Background:    lipgloss.Color("0"),
	Surface:       lipgloss.Color("0"),
	SurfaceBright: lipgloss.Color("8"),
	Border:        lipgloss.Color("8"),
	BorderAccent:  lipgloss.Color("6"),
	TextDim:       lipgloss.Color("8"),
	TextMuted:     lipgloss.Color("7"),
	TextPrimary:   lipgloss.Color("15"),
	Accent:        lipgloss.Color("6"),
	AccentBright:  lipgloss.Color("14"),
	Green:         lipgloss.Color("2"),
	GreenBright:   lipgloss.Color("10"),
	Orange:        lipgloss.Color("3"),
	Red:           lipgloss.Color("1"),
	Blue:          lipgloss.Color("4"),
	Yellow:        lipgloss.Color("3"),
	Magenta:       lipgloss.Color("5"),
	Cyan:          lipgloss.Color("6"),
}

// All available themes.
var All = []Theme{FlexokiDark, Nord, GruvboxDark, Terminal}

// ByName returns a theme by its name, defaulting to FlexokiDark.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return FlexokiDark
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}
