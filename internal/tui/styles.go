package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ecf0f1")).
			Background(lipgloss.Color("#2c3e50")).
			Padding(0, 1)
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#34495e")).
			Padding(0, 1)
	passwordStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f1c40f"))
	checkedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#16a085"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f8c8d"))
	infoStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#27ae60"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#e74c3c"))

	labelStyles = map[string]lipgloss.Style{
		"Weak":   lipgloss.NewStyle().Foreground(lipgloss.Color("#e74c3c")),
		"Medium": lipgloss.NewStyle().Foreground(lipgloss.Color("#f39c12")),
		"Strong": lipgloss.NewStyle().Foreground(lipgloss.Color("#2ecc71")),
	}
)
