package components

import (
	"github.com/Rorical/SafeHer/internal/models"
	"github.com/Rorical/SafeHer/ui/styles"
)

func RenderToast(toast *models.Toast, width int) string {
	if toast == nil {
		return ""
	}
	body := styles.PanelTitleStyle().Render(toast.Title)
	if toast.Description != "" {
		body += "\n" + toast.Description
	}
	return styles.ToastStyle(toast.Severity == models.SeverityDestructive, width).Render(body)
}
