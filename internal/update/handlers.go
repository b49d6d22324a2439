package update

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/SafeHer/internal/eventbus"
	"github.com/Rorical/SafeHer/internal/models"
)

const toastDuration = 4 * time.Second

// NewContactInput builds the text field used by the add-contact form.
func NewContactInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 32
	return ti
}

// HandleKeyMsgWithEventBus handles keyboard input using event bus
func HandleKeyMsgWithEventBus(appModel *models.AppModel, keyMsg tea.KeyMsg, eb *eventbus.EventBus) tea.Cmd {
	if keyMsg.String() == "ctrl+c" {
		return tea.Quit
	}
	if appModel.Mode != models.ModeNormal {
		return handleFormKey(appModel, keyMsg, eb)
	}

	switch keyMsg.String() {
	case "q":
		return tea.Quit
	case " ", "enter":
		send(appModel, eb, eventbus.TapEvent{})
	case "c":
		send(appModel, eb, eventbus.CallEmergencyEvent{})
	case "s":
		send(appModel, eb, eventbus.ShareLocationEvent{})
	case "m":
		// Mark safe is only offered while a session is active.
		if appModel.State.Sharing {
			send(appModel, eb, eventbus.MarkSafeEvent{})
		}
	case "r":
		send(appModel, eb, eventbus.RefreshLocationEvent{})
	case "a":
		appModel.Mode = models.ModeContactName
		appModel.PendingName = ""
		appModel.Input.Reset()
		appModel.Input.Placeholder = "Name"
		appModel.Status = "New contact: enter a name (esc to cancel)"
		return appModel.Input.Focus()
	case "up", "k":
		if appModel.Selected > 0 {
			appModel.Selected--
		}
	case "down", "j":
		if appModel.Selected < len(appModel.State.Contacts)-1 {
			appModel.Selected++
		}
	case "d", "delete":
		if appModel.Selected >= 0 && appModel.Selected < len(appModel.State.Contacts) {
			send(appModel, eb, eventbus.RemoveContactEvent{ID: appModel.State.Contacts[appModel.Selected].ID})
		}
	}
	return nil
}

func handleFormKey(appModel *models.AppModel, keyMsg tea.KeyMsg, eb *eventbus.EventBus) tea.Cmd {
	switch keyMsg.Type {
	case tea.KeyEsc:
		closeForm(appModel)
		appModel.Status = "Ready"
		return nil
	case tea.KeyEnter:
		value := appModel.Input.Value()
		if appModel.Mode == models.ModeContactName {
			appModel.PendingName = value
			appModel.Mode = models.ModeContactPhone
			appModel.Input.Reset()
			appModel.Input.Placeholder = "Phone number"
			appModel.Status = "New contact: enter a phone number"
			return nil
		}
		name := appModel.PendingName
		closeForm(appModel)
		appModel.Status = "Ready"
		send(appModel, eb, eventbus.AddContactEvent{Name: name, Phone: value})
		return nil
	}

	var cmd tea.Cmd
	appModel.Input, cmd = appModel.Input.Update(keyMsg)
	return cmd
}

func closeForm(appModel *models.AppModel) {
	appModel.Mode = models.ModeNormal
	appModel.PendingName = ""
	appModel.Input.Reset()
	appModel.Input.Blur()
}

func send(appModel *models.AppModel, eb *eventbus.EventBus, event eventbus.UIEvent) {
	if !appModel.ServiceReady {
		appModel.Status = "Safety service not available"
		return
	}
	if err := eb.SendToCore(event); err != nil {
		appModel.Status = "Error sending event: " + err.Error()
	}
}

// CoreEventMsg wraps core events for Bubble Tea
type CoreEventMsg struct {
	Event eventbus.CoreEvent
}

// HandleCoreEvent processes events from the core
func HandleCoreEvent(appModel *models.AppModel, coreEventMsg CoreEventMsg) tea.Cmd {
	switch event := coreEventMsg.Event.(type) {
	case eventbus.StateUpdateEvent:
		appModel.State = event.State
		if appModel.Selected >= len(appModel.State.Contacts) {
			appModel.Selected = len(appModel.State.Contacts) - 1
		}
		if appModel.Selected < 0 {
			appModel.Selected = 0
		}
	case eventbus.ToastEvent:
		toast := event.Toast
		appModel.Toast = &toast
		appModel.ToastUntil = time.Now().Add(toastDuration)
	}

	return nil
}

type TickMsg time.Time

func TickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func HandleWindowSizeMsg(appModel *models.AppModel, sizeMsg tea.WindowSizeMsg) {
	appModel.Width = sizeMsg.Width
	appModel.Height = sizeMsg.Height
}

func HandleTickMsg(appModel *models.AppModel, tick TickMsg) tea.Cmd {
	// Only handle UI animations - sharing pulse and toast expiry
	if appModel.State.Sharing {
		appModel.Pulse = (appModel.Pulse + 1) % 4
	} else {
		appModel.Pulse = 0
	}
	if appModel.Toast != nil && !time.Time(tick).Before(appModel.ToastUntil) {
		appModel.Toast = nil
	}
	return TickCmd()
}
