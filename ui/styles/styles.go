package styles

import "github.com/charmbracelet/lipgloss"

var (
	sosColor   = lipgloss.Color("197")
	safeColor  = lipgloss.Color("42")
	mutedColor = lipgloss.Color("245")
)

func TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("212")).
		Padding(0, 2)
}

func SubtitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(mutedColor).
		Padding(0, 2)
}

// SOSButtonStyle renders the SOS control; armed once a tap run has begun.
func SOSButtonStyle(armed bool) lipgloss.Style {
	style := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("231")).
		Background(sosColor).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(sosColor).
		Padding(1, 6).
		Align(lipgloss.Center)
	if armed {
		style = style.BorderForeground(lipgloss.Color("226"))
	}
	return style
}

func PanelStyle(width int) lipgloss.Style {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(0, 1)
	if width > 4 {
		style = style.Width(width - 4)
	}
	return style
}

func PanelTitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39"))
}

func MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(mutedColor)
}

func ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(sosColor)
}

func SelectedStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("214")).
		Bold(true)
}

func InputStyle(width int) lipgloss.Style {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(0, 1)
	if width > 4 {
		style = style.Width(width - 4)
	}
	return style
}

func ToastStyle(destructive bool, width int) lipgloss.Style {
	color := lipgloss.Color("62")
	if destructive {
		color = sosColor
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(color).
		Padding(0, 1)
	if width > 4 {
		style = style.Width(width - 4)
	}
	return style
}

func SharingBarStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("231")).
		Background(safeColor).
		Padding(0, 1).
		Width(width)
}

func StatusStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Background(lipgloss.Color("235")).
		Padding(0, 1).
		Width(width)
}
