package models

import (
	"github.com/Rorical/SafeHer/internal/contacts"
	"github.com/Rorical/SafeHer/internal/geo"
)

// SafetyState is the core's view pushed to the UI after every change.
type SafetyState struct {
	EmergencyNumber string
	Sharing         bool
	TapCount        int
	TapThreshold    int
	Location        geo.Snapshot
	Contacts        []contacts.Contact
	LastAlert       string
	AlertsSent      int
	LastError       string // Last failed contact edit or notification
}

type Severity int

const (
	SeverityInfo Severity = iota
	SeverityDestructive
)

// Toast is a transient notification shown to the user.
type Toast struct {
	Title       string
	Description string
	Severity    Severity
}
