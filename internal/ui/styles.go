package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, grab handles
	ColorHighlight = "205" // Magenta - for selected and lifted items
	ColorDanger    = "196" // Red - for delete handles, warnings
	ColorMuted     = "241" // Gray - for hints, placeholders
	ColorText      = "252" // Light gray - for normal text
	ColorLifted    = "236" // Dark gray - background of the lifted item
	ColorWarning   = "208" // Orange - for warning details
)

// Styles contains shared style definitions used across views and modals.
var Styles = struct {
	// Title styles
	Title        lipgloss.Style // Bold accent color - for main titles
	TitleWarning lipgloss.Style // Bold danger color - for warning titles

	// Box styles
	BoxDanger lipgloss.Style // Confirmation box (danger border)

	// Row styles
	Normal      lipgloss.Style // Item content
	Selected    lipgloss.Style // Keyboard-selected item
	Lifted      lipgloss.Style // Item being dragged
	Placeholder lipgloss.Style // Landing slot of the dragged item
	Grip        lipgloss.Style // Grab handle
	Delete      lipgloss.Style // Delete handle

	// Text styles
	Hint    lipgloss.Style // Help/hint text (muted color)
	Status  lipgloss.Style // Status line (accent color)
	Empty   lipgloss.Style // Empty state text (muted, italic)
	Label   lipgloss.Style // Modal label/content (default)
	Details lipgloss.Style // Warning details (warning color)
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	TitleWarning: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDanger)),
	BoxDanger: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDanger)).
		Padding(1, 2).
		Margin(1),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Lifted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Background(lipgloss.Color(ColorLifted)).
		Bold(true),
	Placeholder: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Grip: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Delete: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Label: lipgloss.NewStyle(),
	Details: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning)),
}

// Glyphs drawn for the handles and the placeholder.
const (
	GripGlyph        = "⠿"
	DeleteGlyph      = "✕"
	PlaceholderGlyph = "╌"
)
