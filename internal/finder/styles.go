package finder

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	savedColor   = lipgloss.Color("10") // Green
	missingColor = lipgloss.Color("11") // Yellow
	errorColor   = lipgloss.Color("9")  // Red
	dimColor     = lipgloss.Color("8")  // Gray
)

// styles holds the console styles bound to one renderer
type styles struct {
	saved   lipgloss.Style
	missing lipgloss.Style
	errored lipgloss.Style
	title   lipgloss.Style
	banner  lipgloss.Style
	dim     lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		saved: r.NewStyle().
			Foreground(savedColor),
		missing: r.NewStyle().
			Foreground(missingColor),
		errored: r.NewStyle().
			Foreground(errorColor),
		title: r.NewStyle().
			Foreground(errorColor).
			Bold(true),
		banner: r.NewStyle().
			Bold(true),
		dim: r.NewStyle().
			Foreground(dimColor),
	}
}
