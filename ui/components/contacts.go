package components

import (
	"fmt"
	"strings"

	"github.com/Rorical/SafeHer/internal/contacts"
	"github.com/Rorical/SafeHer/ui/styles"
)

func RenderContacts(list []contacts.Contact, selected int, width int) string {
	var b strings.Builder
	b.WriteString(styles.PanelTitleStyle().Render(fmt.Sprintf("Emergency Contacts (%d)", len(list))))
	b.WriteString("\n")

	if len(list) == 0 {
		b.WriteString(styles.MutedStyle().Render("No contacts yet. Press a to add one"))
		return styles.PanelStyle(width).Render(b.String())
	}

	for i, c := range list {
		line := fmt.Sprintf("  %s  %s", c.Name, c.Phone)
		if i == selected {
			line = styles.SelectedStyle().Render("> " + c.Name + "  " + c.Phone)
		}
		b.WriteString(line)
		if i < len(list)-1 {
			b.WriteString("\n")
		}
	}
	return styles.PanelStyle(width).Render(b.String())
}
