package components

import (
	"fmt"
	"strings"

	"github.com/Rorical/SafeHer/internal/geo"
	"github.com/Rorical/SafeHer/ui/styles"
)

// RenderLocation shows the last reading, a loading marker, or the error
// with a retry hint.
func RenderLocation(snap geo.Snapshot, mapURL string, width int) string {
	var b strings.Builder
	b.WriteString(styles.PanelTitleStyle().Render("Your Location"))
	b.WriteString("\n")

	switch {
	case snap.Loading:
		b.WriteString(styles.MutedStyle().Render("Getting your location..."))
	case snap.Location == nil && snap.Error != "":
		b.WriteString(styles.ErrorStyle().Render(snap.Error))
		b.WriteString("\n")
		b.WriteString(styles.MutedStyle().Render("Press r to retry"))
	case snap.Location == nil:
		b.WriteString(styles.MutedStyle().Render("Location not available yet. Press r to refresh"))
	default:
		b.WriteString(fmt.Sprintf("%s, %s", snap.Location.LatString(), snap.Location.LngString()))
		if mapURL != "" {
			b.WriteString("\n")
			b.WriteString(styles.MutedStyle().Render(mapURL))
		}
		if snap.Error != "" {
			b.WriteString("\n")
			b.WriteString(styles.ErrorStyle().Render("Last refresh failed: " + snap.Error))
		}
	}

	return styles.PanelStyle(width).Render(b.String())
}
