package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/SafeHer/internal/config"
	"github.com/Rorical/SafeHer/internal/dispatcher"
	"github.com/Rorical/SafeHer/internal/eventbus"
	"github.com/Rorical/SafeHer/internal/models"
	"github.com/Rorical/SafeHer/internal/update"
)

// Application manages the complete application lifecycle
type Application struct {
	config     *config.Config
	eventBus   *eventbus.EventBus
	dispatcher *dispatcher.EventDispatcher
	services   *Services
	model      *AppModel
}

type AppModel struct {
	appModel   models.AppModel
	dispatcher *dispatcher.EventDispatcher
	mapURL     func(models.SafetyState) string
}

func NewApplication(cfg *config.Config) (*Application, error) {
	// Create event bus
	eb := eventbus.NewEventBus()

	// Create dispatcher
	disp := dispatcher.NewEventDispatcher(eb)

	services, err := BuildServices(context.Background(), cfg, eb, BuildOptions{})
	if err != nil {
		disp.Stop()
		eb.Close()
		return nil, err
	}
	eb.SetErrorCallback(func(e eventbus.EventBusError) {
		services.Logger.Warnf("event bus: %v", e)
	})

	model := &AppModel{
		appModel:   createInitialAppModel(services),
		dispatcher: disp,
		mapURL:     mapURLFunc(cfg),
	}

	return &Application{
		config:     cfg,
		eventBus:   eb,
		dispatcher: disp,
		services:   services,
		model:      model,
	}, nil
}

func (app *Application) Start() error {
	// Start background services
	app.services.Safety.Start()

	// Run UI
	p := tea.NewProgram(app.model, tea.WithAltScreen())
	_, err := p.Run()

	return err
}

func (app *Application) Stop() {
	app.services.Safety.Stop()
	app.dispatcher.Stop()
	app.eventBus.Close()
	app.services.Close()
}

func createInitialAppModel(services *Services) models.AppModel {
	return models.AppModel{
		State:        services.Safety.Snapshot(),
		Status:       "Ready",
		ServiceReady: services.Safety.IsReady(),
		Input:        update.NewContactInput(),
	}
}
