package viz

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	wallStyle   = lipgloss.NewStyle().Padding(0, 2)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("236"))
)

// heatRamp is the cold-to-hot palette for wall cells.
var heatRamp = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("17")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("24")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("31")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("38")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("45")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
}

// heatCell renders one wall cell: ratio in [0,1] picks the ramp
// color, zero renders as background dots.
func heatCell(ratio float64, active bool) string {
	if active {
		return activeStyle.Render("█")
	}
	if ratio <= 0 {
		return emptyStyle.Render("·")
	}
	if ratio > 1 {
		ratio = 1
	}
	idx := int(ratio * float64(len(heatRamp)-1))
	return heatRamp[idx].Render("█")
}
