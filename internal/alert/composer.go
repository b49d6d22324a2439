// Package alert formats the distress message sent to emergency contacts.
package alert

import (
	"strings"

	"github.com/Rorical/SafeHer/internal/contacts"
	"github.com/Rorical/SafeHer/internal/geo"
)

const (
	DefaultMessageTemplate = "I am in danger. Please help me. My location: {map}"
	DefaultMapURLTemplate  = "https://www.google.com/maps?q={lat},{lng}"
)

// Composer fills the message template. Placeholders:
//
//	{map}       the map link built from the map URL template
//	{lat} {lng} the raw coordinates
//	{contacts}  comma separated contact names
type Composer struct {
	messageTemplate string
	mapURLTemplate  string
}

// NewComposer returns a Composer; empty templates fall back to the defaults.
func NewComposer(messageTemplate, mapURLTemplate string) *Composer {
	if messageTemplate == "" {
		messageTemplate = DefaultMessageTemplate
	}
	if mapURLTemplate == "" {
		mapURLTemplate = DefaultMapURLTemplate
	}
	return &Composer{
		messageTemplate: messageTemplate,
		mapURLTemplate:  mapURLTemplate,
	}
}

// MapURL returns the map link for loc.
func (c *Composer) MapURL(loc geo.Location) string {
	return strings.NewReplacer(
		"{lat}", loc.LatString(),
		"{lng}", loc.LngString(),
	).Replace(c.mapURLTemplate)
}

// Compose builds the distress message. It has no side effects.
func (c *Composer) Compose(loc geo.Location, recipients []contacts.Contact) string {
	names := make([]string, 0, len(recipients))
	for _, r := range recipients {
		names = append(names, r.Name)
	}

	return strings.NewReplacer(
		"{map}", c.MapURL(loc),
		"{lat}", loc.LatString(),
		"{lng}", loc.LngString(),
		"{contacts}", strings.Join(names, ", "),
	).Replace(c.messageTemplate)
}
