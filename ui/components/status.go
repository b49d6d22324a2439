package components

import (
	"strings"

	"github.com/Rorical/SafeHer/ui/styles"
)

// RenderSharingBar is shown only while a sharing session is active.
func RenderSharingBar(sharing bool, pulse int, width int) string {
	if !sharing {
		return ""
	}
	return styles.SharingBarStyle(width).Render(
		"Sharing your location" + strings.Repeat(".", pulse) + "   [m] I'm safe")
}

func RenderStatus(status string, width int) string {
	statusStyle := styles.StatusStyle(width)
	return statusStyle.Render(status)
}
