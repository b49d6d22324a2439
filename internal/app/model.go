package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/SafeHer/internal/alert"
	"github.com/Rorical/SafeHer/internal/config"
	"github.com/Rorical/SafeHer/internal/models"
	"github.com/Rorical/SafeHer/internal/update"
	"github.com/Rorical/SafeHer/ui/components"
	"github.com/Rorical/SafeHer/ui/styles"
)

const helpLine = "space sos • c call • s share • r locate • a add • d remove • q quit"

func (m *AppModel) Init() tea.Cmd {
	return tea.Batch(
		update.TickCmd(),
		m.dispatcher.ListenForCoreEvents(),
	)
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle core events and continue listening
	if coreEvent, ok := msg.(update.CoreEventMsg); ok {
		cmd := update.HandleCoreEvent(&m.appModel, coreEvent)
		return m, tea.Batch(cmd, m.dispatcher.ListenForCoreEvents())
	}

	// Handle other events through the event bus
	eventBus := m.dispatcher.GetEventBus()
	cmd := update.HandleUpdateWithEventBus(&m.appModel, msg, eventBus)

	return m, cmd
}

func (m *AppModel) View() string {
	var b strings.Builder
	width := m.appModel.Width
	state := m.appModel.State

	b.WriteString(styles.TitleStyle().Render("SafeHer"))
	b.WriteString("\n")
	b.WriteString(styles.SubtitleStyle().Render("Stay Safe, Stay Protected"))
	b.WriteString("\n\n")

	b.WriteString(components.RenderSOS(state.TapCount, state.TapThreshold, state.EmergencyNumber))
	b.WriteString("\n\n")

	if toast := components.RenderToast(m.appModel.Toast, width); toast != "" {
		b.WriteString(toast)
		b.WriteString("\n")
	}

	b.WriteString(components.RenderLocation(state.Location, m.mapURL(state), width))
	b.WriteString("\n")
	b.WriteString(components.RenderContacts(state.Contacts, m.appModel.Selected, width))
	b.WriteString("\n")

	if m.appModel.Mode != models.ModeNormal {
		b.WriteString(components.RenderInput(m.appModel.Mode, m.appModel.Input, width))
		b.WriteString("\n")
	}

	if bar := components.RenderSharingBar(state.Sharing, m.appModel.Pulse, width); bar != "" {
		b.WriteString(bar)
		b.WriteString("\n")
	}
	if state.LastError != "" {
		b.WriteString(styles.ErrorStyle().Render("Last error: " + state.LastError))
		b.WriteString("\n")
	}
	b.WriteString(components.RenderStatus(m.appModel.Status+"  |  "+helpLine, width))

	return b.String()
}

func mapURLFunc(cfg *config.Config) func(models.SafetyState) string {
	composer := alert.NewComposer(cfg.Alert.MessageTemplate, cfg.Alert.MapURLTemplate)
	return func(state models.SafetyState) string {
		if state.Location.Location == nil {
			return ""
		}
		return composer.MapURL(*state.Location.Location)
	}
}
