package viz

import "github.com/charmbracelet/lipgloss"

var (
	canvasStyle  lipgloss.Style
	statsStyle   lipgloss.Style
	headerStyle  lipgloss.Style
	labelStyle   lipgloss.Style
	valueStyle   lipgloss.Style
	runningStyle lipgloss.Style
	pausedStyle  lipgloss.Style
	errorStyle   lipgloss.Style
	graphStyle   lipgloss.Style
	helpStyle    lipgloss.Style
)

func init() {
	applyTheme(ThemeDefault)
}

func applyTheme(t Theme) {
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(t.Muted).Padding(1, 2).Width(42)
	headerStyle = lipgloss.NewStyle().Foreground(t.Header).Bold(true).MarginBottom(1)
	labelStyle = lipgloss.NewStyle().Foreground(t.Label).Width(10)
	valueStyle = lipgloss.NewStyle().Foreground(t.Value)
	runningStyle = lipgloss.NewStyle().Foreground(t.Running).Bold(true)
	pausedStyle = lipgloss.NewStyle().Foreground(t.Paused).Bold(true)
	errorStyle = lipgloss.NewStyle().Foreground(t.Error).Bold(true)
	graphStyle = lipgloss.NewStyle().Foreground(t.Graph).Padding(1, 0)
	helpStyle = lipgloss.NewStyle().Foreground(t.Muted).MarginTop(1)
}
