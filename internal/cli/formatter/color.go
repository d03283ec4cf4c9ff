package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/handyops/proserve/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// JobStatusStyle returns the style used for a job lifecycle state.
func JobStatusStyle(s domain.JobStatus) lipgloss.Style {
	switch s {
	case domain.JobScheduled:
		return StyleBlue
	case domain.JobInProgress:
		return StyleYellow
	case domain.JobCompleted:
		return StyleGreen
	case domain.JobPaid:
		return StylePurple
	default:
		return StyleDim
	}
}

// JobStatusPill renders a colored status label such as "● In Progress".
func JobStatusPill(s domain.JobStatus) string {
	return JobStatusStyle(s).Render("● " + string(s))
}

// ClientStatusPill renders a colored client status label.
func ClientStatusPill(s domain.ClientStatus) string {
	switch s {
	case domain.ClientActive:
		return StyleGreen.Render("● Active")
	case domain.ClientLead:
		return StyleYellow.Render("● Lead")
	case domain.ClientInactive:
		return StyleDim.Render("● Inactive")
	default:
		return StyleDim.Render("● " + string(s))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
