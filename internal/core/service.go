package core

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Rorical/SafeHer/internal/alert"
	"github.com/Rorical/SafeHer/internal/clock"
	"github.com/Rorical/SafeHer/internal/contacts"
	"github.com/Rorical/SafeHer/internal/emergency"
	"github.com/Rorical/SafeHer/internal/eventbus"
	"github.com/Rorical/SafeHer/internal/gesture"
	"github.com/Rorical/SafeHer/internal/geo"
	"github.com/Rorical/SafeHer/internal/logging"
	"github.com/Rorical/SafeHer/internal/models"
)

// Options configures a SafetyService.
type Options struct {
	EmergencyNumber string
	Taps            int
	Window          time.Duration
	MessageTemplate string
	MapURLTemplate  string
}

// Dependencies are the collaborators a SafetyService drives.
type Dependencies struct {
	Clock    clock.Clock
	Dialer   emergency.Dialer
	Notifier emergency.Notifier
	Contacts *contacts.Store
	Location *geo.Provider
	Logger   *logging.Logger
}

// SafetyService owns the gesture detector, the orchestrator and the
// sharing session. UI events are handled one at a time on the event loop.
type SafetyService struct {
	state        *SafetyState
	eventBus     *eventbus.EventBus
	clock        clock.Clock
	detector     *gesture.Detector
	sharing      *emergency.Sharing
	orchestrator *emergency.Orchestrator
	contacts     *contacts.Store
	location     *geo.Provider
	logger       *logging.Logger
	ctx          context.Context
	cancel       context.CancelFunc
	wg           sync.WaitGroup
}

// NewSafetyService wires the service. eb may be nil for headless use.
func NewSafetyService(opts Options, deps Dependencies, eb *eventbus.EventBus) (*SafetyService, error) {
	if deps.Contacts == nil {
		return nil, errors.New("safety service needs a contact store")
	}
	if deps.Location == nil {
		return nil, errors.New("safety service needs a location provider")
	}
	if deps.Dialer == nil || deps.Notifier == nil {
		return nil, errors.New("safety service needs a dialer and a notifier")
	}
	if deps.Clock == nil {
		deps.Clock = clock.Real()
	}
	if deps.Logger == nil {
		deps.Logger = logging.Discard()
	}

	ctx, cancel := context.WithCancel(context.Background())
	sharing := emergency.NewSharing()
	composer := alert.NewComposer(opts.MessageTemplate, opts.MapURLTemplate)

	service := &SafetyService{
		state:        NewSafetyState(),
		eventBus:     eb,
		clock:        deps.Clock,
		detector:     gesture.NewDetector(deps.Clock, opts.Taps, opts.Window),
		sharing:      sharing,
		orchestrator: emergency.NewOrchestrator(opts.EmergencyNumber, deps.Dialer, deps.Notifier, composer, sharing, deps.Logger),
		contacts:     deps.Contacts,
		location:     deps.Location,
		logger:       deps.Logger,
		ctx:          ctx,
		cancel:       cancel,
	}

	// Lapsed windows and location reads happen off the event loop; both
	// just need the UI to redraw.
	service.detector.OnReset(service.pushStateToUI)
	service.location.OnChange(service.pushStateToUI)

	return service, nil
}

// Start runs the core logic in a goroutine
func (ss *SafetyService) Start() {
	// Send initial state to UI immediately
	ss.pushStateToUI()
	ss.refreshLocationAsync()

	if ss.eventBus == nil {
		return
	}
	ss.wg.Add(1)
	go ss.eventLoop()
}

func (ss *SafetyService) Stop() {
	ss.cancel()
	ss.detector.Stop()
	ss.wg.Wait()
}

func (ss *SafetyService) eventLoop() {
	defer ss.wg.Done()
	for {
		select {
		case <-ss.ctx.Done():
			return
		case event, ok := <-ss.eventBus.UIToCore():
			if !ok {
				return
			}
			ss.handleUIEvent(event)
		}
	}
}

func (ss *SafetyService) handleUIEvent(event eventbus.UIEvent) {
	switch e := event.(type) {
	case eventbus.TapEvent:
		ss.Tap()
	case eventbus.CallEmergencyEvent:
		ss.CallEmergency()
	case eventbus.ShareLocationEvent:
		ss.StartSharing()
	case eventbus.MarkSafeEvent:
		ss.MarkSafe()
	case eventbus.RefreshLocationEvent:
		ss.refreshLocationAsync()
	case eventbus.AddContactEvent:
		ss.addContact(e.Name, e.Phone)
	case eventbus.RemoveContactEvent:
		ss.removeContact(e.ID)
	}
}

// Tap registers one press of the SOS control and triggers the emergency
// response when the gesture completes.
func (ss *SafetyService) Tap() (emergency.Outcome, bool) {
	ev, fired := ss.detector.RegisterTap()
	if !fired {
		ss.pushStateToUI()
		return emergency.Outcome{}, false
	}
	return ss.trigger(ev), true
}

// Trigger runs the emergency response immediately, bypassing the gesture.
func (ss *SafetyService) Trigger() emergency.Outcome {
	return ss.trigger(gesture.TriggerEvent{At: ss.clock.Now()})
}

func (ss *SafetyService) trigger(ev gesture.TriggerEvent) emergency.Outcome {
	if ev.Count > 0 {
		ss.logger.Warnf("SOS triggered after %d taps", ev.Count)
	} else {
		ss.logger.Warnf("SOS triggered directly")
	}

	out := ss.orchestrator.OnTrigger(ss.ctx, ss.location.Current(), ss.contacts.List())
	ss.state.RecordTrigger(out)

	ss.pushToast(models.Toast{
		Title:       "🚨 Emergency Alert Triggered",
		Description: fmt.Sprintf("Calling %s and sharing your location.", out.Number),
		Severity:    models.SeverityDestructive,
	})
	ss.pushStateToUI()
	return out
}

// CallEmergency dials without starting a sharing session.
func (ss *SafetyService) CallEmergency() {
	_ = ss.orchestrator.CallEmergency()
	ss.pushToast(models.Toast{
		Title:       "Calling Emergency Services",
		Description: fmt.Sprintf("Connecting you to %s...", ss.orchestrator.Number()),
	})
}

func (ss *SafetyService) StartSharing() {
	ss.sharing.StartSharing()
	ss.logger.Infof("location sharing started")
	ss.pushToast(models.Toast{
		Title:       "Location Sharing Started",
		Description: "Your emergency contacts can now see your location.",
	})
	ss.pushStateToUI()
}

func (ss *SafetyService) MarkSafe() {
	ss.sharing.MarkSafe()
	ss.logger.Infof("marked safe")
	ss.pushToast(models.Toast{
		Title:       "Glad you're safe!",
		Description: "Location sharing has been stopped.",
	})
	ss.pushStateToUI()
}

// RefreshLocation reads the location synchronously.
func (ss *SafetyService) RefreshLocation(ctx context.Context) geo.Snapshot {
	snap := ss.location.Refresh(ctx)
	if snap.Error != "" {
		ss.logger.Warnf("location unavailable: %s", snap.Error)
	}
	return snap
}

func (ss *SafetyService) refreshLocationAsync() {
	ss.wg.Add(1)
	go func() {
		defer ss.wg.Done()
		ss.RefreshLocation(ss.ctx)
	}()
}

func (ss *SafetyService) addContact(name, phone string) {
	c, err := ss.contacts.Add(ss.ctx, name, phone)
	if err != nil {
		ss.logger.Errorf("add contact: %v", err)
		ss.state.SetError(err)
		ss.pushToast(models.Toast{
			Title:       "Could not add contact",
			Description: err.Error(),
			Severity:    models.SeverityDestructive,
		})
		ss.pushStateToUI()
		return
	}
	ss.state.SetError(nil)
	ss.logger.Infof("contact added: %s", c.ID)
	ss.pushToast(models.Toast{
		Title:       "Contact Added",
		Description: fmt.Sprintf("%s will be alerted in an emergency.", c.Name),
	})
	ss.pushStateToUI()
}

func (ss *SafetyService) removeContact(id string) {
	if err := ss.contacts.Remove(ss.ctx, id); err != nil {
		ss.logger.Errorf("remove contact: %v", err)
		ss.state.SetError(err)
		ss.pushToast(models.Toast{
			Title:       "Could not remove contact",
			Description: err.Error(),
			Severity:    models.SeverityDestructive,
		})
		ss.pushStateToUI()
		return
	}
	ss.state.SetError(nil)
	ss.logger.Infof("contact removed: %s", id)
	ss.pushStateToUI()
}

// Snapshot assembles the state the UI renders.
func (ss *SafetyService) Snapshot() models.SafetyState {
	return models.SafetyState{
		EmergencyNumber: ss.orchestrator.Number(),
		Sharing:         ss.sharing.IsSharing(),
		TapCount:        ss.detector.Count(),
		TapThreshold:    ss.detector.Threshold(),
		Location:        ss.location.Snapshot(),
		Contacts:        ss.contacts.List(),
		LastAlert:       ss.state.LastAlert(),
		AlertsSent:      ss.state.AlertsSent(),
		LastError:       errorText(ss.state.GetLastError()),
	}
}

func errorText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

func (ss *SafetyService) IsSharing() bool {
	return ss.sharing.IsSharing()
}

func (ss *SafetyService) IsReady() bool {
	return ss.eventBus != nil && ss.ctx.Err() == nil
}

func (ss *SafetyService) pushStateToUI() {
	if ss.eventBus == nil {
		return
	}
	if err := ss.eventBus.SendToUI(eventbus.StateUpdateEvent{State: ss.Snapshot()}); err != nil {
		// The UI catches up on the next successful push.
		ss.logger.Warnf("Error sending state to UI: %v", err)
	}
}

func (ss *SafetyService) pushToast(toast models.Toast) {
	if ss.eventBus == nil {
		return
	}
	if err := ss.eventBus.SendToUI(eventbus.ToastEvent{Toast: toast}); err != nil {
		ss.logger.Warnf("Error sending toast to UI: %v", err)
	}
}
