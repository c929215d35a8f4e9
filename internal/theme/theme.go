package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes the Lip Gloss styles used by the menu view.
type Styles struct {
	Indicator     *lipgloss.Style
	Primary       *lipgloss.Style
	Secondary     *lipgloss.Style
	Breadcrumb    *lipgloss.Style
	Value         *lipgloss.Style
	EditableValue *lipgloss.Style
	Flags         *lipgloss.Style
	Footer        *lipgloss.Style
}

var defaultStyles = Styles{
	Indicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
	Primary: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	Secondary: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Breadcrumb: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Value: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	EditableValue: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	Flags: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
