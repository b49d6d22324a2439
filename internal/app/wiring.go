package app

import (
	"context"
	"fmt"

	"github.com/Rorical/SafeHer/internal/clock"
	"github.com/Rorical/SafeHer/internal/config"
	"github.com/Rorical/SafeHer/internal/contacts"
	"github.com/Rorical/SafeHer/internal/core"
	"github.com/Rorical/SafeHer/internal/emergency"
	"github.com/Rorical/SafeHer/internal/eventbus"
	"github.com/Rorical/SafeHer/internal/geo"
	"github.com/Rorical/SafeHer/internal/logging"
	"github.com/Rorical/SafeHer/internal/storage"
)

// Services holds everything built from the config. Close releases the log
// file and the storage backend.
type Services struct {
	Safety   *core.SafetyService
	Contacts *contacts.Store
	Logger   *logging.Logger
	Recorder *emergency.Recorder
	kv       storage.KV
}

// BuildOptions tweaks how the services are wired.
type BuildOptions struct {
	// DryRun records calls and messages instead of dialing or notifying.
	DryRun bool
}

// BuildServices opens storage, loads contacts and wires the safety service.
// eb may be nil for CLI commands.
func BuildServices(ctx context.Context, cfg *config.Config, eb *eventbus.EventBus, opts BuildOptions) (*Services, error) {
	logger, err := logging.Open(cfg.Log.Path)
	if err != nil {
		return nil, err
	}

	kv, err := storage.Open(ctx, cfg.StorageOptions())
	if err != nil {
		logger.Close()
		return nil, fmt.Errorf("failed to open contact storage: %w", err)
	}

	store, err := contacts.Open(ctx, kv)
	if err != nil {
		kv.Close()
		logger.Close()
		return nil, err
	}

	var (
		dialer   emergency.Dialer
		notifier emergency.Notifier
		recorder *emergency.Recorder
	)
	if opts.DryRun {
		recorder = &emergency.Recorder{}
		dialer, notifier = recorder, recorder
	} else {
		dialer = emergency.NewExecDialer(logger)
		notifier = emergency.NewLogNotifier(logger)
	}

	safety, err := core.NewSafetyService(core.Options{
		EmergencyNumber: cfg.Emergency.Number,
		Taps:            cfg.Gesture.Taps,
		Window:          cfg.Gesture.Window,
		MessageTemplate: cfg.Alert.MessageTemplate,
		MapURLTemplate:  cfg.Alert.MapURLTemplate,
	}, core.Dependencies{
		Clock:    clock.Real(),
		Dialer:   dialer,
		Notifier: notifier,
		Contacts: store,
		Location: geo.NewProvider(cfg.LocationSource()),
		Logger:   logger,
	}, eb)
	if err != nil {
		kv.Close()
		logger.Close()
		return nil, err
	}

	logger.Infof("services ready: storage=%s location=%s", cfg.Storage.Backend, cfg.Location.Source)
	return &Services{
		Safety:   safety,
		Contacts: store,
		Logger:   logger,
		Recorder: recorder,
		kv:       kv,
	}, nil
}

func (s *Services) Close() {
	if err := s.kv.Close(); err != nil {
		s.Logger.Errorf("failed to close storage: %v", err)
	}
	s.Logger.Close()
}
