package eventbus

import (
	"errors"
	"sync"
	"time"

	"github.com/Rorical/SafeHer/internal/models"
)

// UIEvent represents events sent from UI to Core
type UIEvent interface {
	UIEvent()
}

// CoreEvent represents events sent from Core to UI
type CoreEvent interface {
	CoreEvent()
}

// TapEvent - one press of the SOS control
type TapEvent struct{}

func (e TapEvent) UIEvent() {}

// CallEmergencyEvent - dial without starting a sharing session
type CallEmergencyEvent struct{}

func (e CallEmergencyEvent) UIEvent() {}

// ShareLocationEvent - start sharing without dialing
type ShareLocationEvent struct{}

func (e ShareLocationEvent) UIEvent() {}

// MarkSafeEvent - end the sharing session
type MarkSafeEvent struct{}

func (e MarkSafeEvent) UIEvent() {}

// RefreshLocationEvent - ask the geolocation source for a new reading
type RefreshLocationEvent struct{}

func (e RefreshLocationEvent) UIEvent() {}

// AddContactEvent - store a new emergency contact
type AddContactEvent struct {
	Name  string
	Phone string
}

func (e AddContactEvent) UIEvent() {}

// RemoveContactEvent - delete an emergency contact
type RemoveContactEvent struct {
	ID string
}

func (e RemoveContactEvent) UIEvent() {}

// StateUpdateEvent - Core pushes state changes to UI
type StateUpdateEvent struct {
	State models.SafetyState
}

func (e StateUpdateEvent) CoreEvent() {}

// ToastEvent - Core asks the UI to show a notification
type ToastEvent struct {
	Toast models.Toast
}

func (e ToastEvent) CoreEvent() {}

// EventBusError represents errors in event processing
type EventBusError struct {
	Operation string
	Err       error
	Timestamp time.Time
}

func (e EventBusError) Error() string {
	return e.Operation + ": " + e.Err.Error()
}

func (e EventBusError) Unwrap() error {
	return e.Err
}

var (
	ErrCircuitOpen = errors.New("circuit breaker is open")
	ErrChannelFull = errors.New("channel is full")
	ErrClosed      = errors.New("event bus is closed")
)

// CircuitBreakerState represents the state of circuit breaker
type CircuitBreakerState int

const (
	CircuitClosed CircuitBreakerState = iota
	CircuitOpen
	CircuitHalfOpen
)

// CircuitBreaker implements circuit breaker pattern
type CircuitBreaker struct {
	mu              sync.Mutex
	maxFailures     int
	resetTimeout    time.Duration
	failureCount    int
	lastFailureTime time.Time
	state           CircuitBreakerState
	now             func() time.Time
}

func NewCircuitBreaker(maxFailures int, resetTimeout time.Duration) *CircuitBreaker {
	return &CircuitBreaker{
		maxFailures:  maxFailures,
		resetTimeout: resetTimeout,
		state:        CircuitClosed,
		now:          time.Now,
	}
}

func (cb *CircuitBreaker) IsOpen() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state == CircuitOpen {
		// Check if we should transition to half-open
		if cb.now().Sub(cb.lastFailureTime) > cb.resetTimeout {
			cb.state = CircuitHalfOpen
		}
	}
	return cb.state == CircuitOpen
}

func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.failureCount = 0
	cb.state = CircuitClosed
}

func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.failureCount++
	cb.lastFailureTime = cb.now()

	if cb.failureCount >= cb.maxFailures {
		cb.state = CircuitOpen
	}
}

func (cb *CircuitBreaker) State() CircuitBreakerState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

// EventBus handles communication between UI and Core. Each direction has its
// own circuit breaker, so a congested redraw channel never blocks taps.
type EventBus struct {
	mu            sync.RWMutex
	closed        bool
	uiToCore      chan UIEvent
	coreToUI      chan CoreEvent
	errorCallback func(EventBusError)
	toCoreBreaker *CircuitBreaker
	toUIBreaker   *CircuitBreaker
}

func NewEventBus() *EventBus {
	return NewEventBusWithCapacity(100)
}

func NewEventBusWithCapacity(capacity int) *EventBus {
	return &EventBus{
		uiToCore:       make(chan UIEvent, capacity),
		coreToUI:      make(chan CoreEvent, capacity),
		toCoreBreaker: NewCircuitBreaker(5, 30*time.Second),
		toUIBreaker:   NewCircuitBreaker(5, 30*time.Second),
	}
}

func (eb *EventBus) SetErrorCallback(callback func(EventBusError)) {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	eb.errorCallback = callback
}

func (eb *EventBus) reportError(cb *CircuitBreaker, operation string, err error) error {
	busError := EventBusError{
		Operation: operation,
		Err:       err,
		Timestamp: time.Now(),
	}

	cb.RecordFailure()

	if eb.errorCallback != nil {
		eb.errorCallback(busError)
	}
	return busError
}

func (eb *EventBus) SendToCore(event UIEvent) error {
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	if eb.closed {
		return EventBusError{Operation: "SendToCore", Err: ErrClosed, Timestamp: time.Now()}
	}
	if eb.toCoreBreaker.IsOpen() {
		return eb.reportError(eb.toCoreBreaker, "SendToCore", ErrCircuitOpen)
	}

	select {
	case eb.uiToCore <- event:
		eb.toCoreBreaker.RecordSuccess()
		return nil
	default:
		return eb.reportError(eb.toCoreBreaker, "SendToCore", ErrChannelFull)
	}
}

func (eb *EventBus) SendToUI(event CoreEvent) error {
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	if eb.closed {
		return EventBusError{Operation: "SendToUI", Err: ErrClosed, Timestamp: time.Now()}
	}
	if eb.toUIBreaker.IsOpen() {
		return eb.reportError(eb.toUIBreaker, "SendToUI", ErrCircuitOpen)
	}

	select {
	case eb.coreToUI <- event:
		eb.toUIBreaker.RecordSuccess()
		return nil
	default:
		return eb.reportError(eb.toUIBreaker, "SendToUI", ErrChannelFull)
	}
}

func (eb *EventBus) UIToCore() <-chan UIEvent {
	return eb.uiToCore
}

func (eb *EventBus) CoreToUI() <-chan CoreEvent {
	return eb.coreToUI
}

// CoreCircuitState reports the breaker guarding UI -> core sends.
func (eb *EventBus) CoreCircuitState() CircuitBreakerState {
	return eb.toCoreBreaker.State()
}

// UICircuitState reports the breaker guarding core -> UI sends.
func (eb *EventBus) UICircuitState() CircuitBreakerState {
	return eb.toUIBreaker.State()
}

// Close closes both channels. Later sends fail with ErrClosed.
func (eb *EventBus) Close() {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	if eb.closed {
		return
	}
	eb.closed = true
	close(eb.uiToCore)
	close(eb.coreToUI)
}
