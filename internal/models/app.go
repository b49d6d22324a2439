package models

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
)

type InputMode int

const (
	ModeNormal InputMode = iota
	ModeContactName
	ModeContactPhone
)

// AppModel represents the UI state - only local UI concerns
type AppModel struct {
	State        SafetyState     // Latest state pushed by core
	Toast        *Toast          // Toast currently on screen
	ToastUntil   time.Time       // When the toast is hidden
	Status       string          // Status bar text
	Width        int             // Terminal width
	Height       int             // Terminal height
	ServiceReady bool            // Whether the safety service is running
	Mode         InputMode       // Add-contact form step
	Input        textinput.Model // Add-contact form field
	PendingName  string          // Name captured before the phone step
	Selected     int             // Highlighted contact
	Pulse        int             // SOS button animation frame
}
