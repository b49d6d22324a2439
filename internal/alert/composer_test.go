package alert

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Rorical/SafeHer/internal/contacts"
	"github.com/Rorical/SafeHer/internal/geo"
)

var testContacts = []contacts.Contact{
	{ID: "1", Name: "Jane", Phone: "+15551234"},
	{ID: "2", Name: "Bob", Phone: "+15559999"},
}

func TestComposeDefaultMessage(t *testing.T) {
	c := NewComposer("", "")
	msg := c.Compose(geo.Location{Lat: 28.6139, Lng: 77.209}, testContacts)
	require.Equal(t,
		"I am in danger. Please help me. My location: https://www.google.com/maps?q=28.6139,77.209",
		msg)
}

func TestComposeIsDeterministicAndContainsCoordinates(t *testing.T) {
	c := NewComposer("", "")
	loc := geo.Location{Lat: -33.86882, Lng: 151.20929}

	first := c.Compose(loc, testContacts)
	second := c.Compose(loc, testContacts)
	require.Equal(t, first, second)
	require.Contains(t, first, "-33.86882")
	require.Contains(t, first, "151.20929")
}

func TestComposeCustomTemplates(t *testing.T) {
	c := NewComposer("Help {contacts}! I'm at {lat}/{lng}: {map}", "geo:{lat},{lng}")
	msg := c.Compose(geo.Location{Lat: 1.5, Lng: -2}, testContacts)
	require.Equal(t, "Help Jane, Bob! I'm at 1.5/-2: geo:1.5,-2", msg)
}

func TestMapURL(t *testing.T) {
	c := NewComposer("", "")
	require.Equal(t, "https://www.google.com/maps?q=0,0", c.MapURL(geo.Location{}))
}
