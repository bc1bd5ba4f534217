package render

import "github.com/charmbracelet/lipgloss"

// Colors used by the terminal view.
var (
	colorCyan    = lipgloss.Color("#00FFFF")
	colorGreen   = lipgloss.Color("#00FF00")
	colorYellow  = lipgloss.Color("#FFFF00")
	colorRed     = lipgloss.Color("#FF0000")
	colorGray    = lipgloss.Color("#666666")
	colorDimGray = lipgloss.Color("#444444")
	colorMagenta = lipgloss.Color("#FF00FF")
)

// styles are bound to one lipgloss renderer so color support is detected
// for the writer the Terminal prints to, not for os.Stdout.
type styles struct {
	header    lipgloss.Style
	milestone lipgloss.Style
	marker    lipgloss.Style
	detail    lipgloss.Style
	source    lipgloss.Style
	timestamp lipgloss.Style
	duration  lipgloss.Style
	url       lipgloss.Style
	query     lipgloss.Style
	domain    lipgloss.Style
	divider   lipgloss.Style
	done      lipgloss.Style
	errorText lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		header: r.NewStyle().
			Bold(true).
			Foreground(colorCyan),
		milestone: r.NewStyle().
			Bold(true),
		marker: r.NewStyle().
			Bold(true).
			Foreground(colorGreen),
		detail: r.NewStyle().
			Foreground(colorGray),
		source: r.NewStyle().
			Foreground(colorCyan),
		timestamp: r.NewStyle().
			Foreground(colorGray),
		duration: r.NewStyle().
			Foreground(colorYellow),
		url: r.NewStyle().
			Foreground(colorCyan).
			Underline(true),
		query: r.NewStyle().
			Foreground(colorMagenta),
		domain: r.NewStyle().
			Foreground(colorYellow),
		divider: r.NewStyle().
			Foreground(colorDimGray),
		done: r.NewStyle().
			Bold(true).
			Foreground(colorGreen),
		errorText: r.NewStyle().
			Foreground(colorRed),
	}
}
