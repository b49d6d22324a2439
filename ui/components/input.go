package components

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/Rorical/SafeHer/internal/models"
	"github.com/Rorical/SafeHer/ui/styles"
)

func RenderInput(mode models.InputMode, input textinput.Model, width int) string {
	label := "Name"
	if mode == models.ModeContactPhone {
		label = "Phone"
	}
	return styles.InputStyle(width).Render(styles.PanelTitleStyle().Render(label) + "\n" + input.View())
}
