package emergency

import (
	"context"

	"github.com/Rorical/SafeHer/internal/alert"
	"github.com/Rorical/SafeHer/internal/contacts"
	"github.com/Rorical/SafeHer/internal/geo"
	"github.com/Rorical/SafeHer/internal/logging"
)

// Outcome describes what one trigger did.
type Outcome struct {
	Number    string
	DialErr   error
	Composed  bool
	Message   string
	NotifyErr error
}

// Orchestrator reacts to the SOS trigger.
type Orchestrator struct {
	number   string
	dialer   Dialer
	notifier Notifier
	composer *alert.Composer
	sharing  *Sharing
	logger   *logging.Logger
}

func NewOrchestrator(number string, dialer Dialer, notifier Notifier, composer *alert.Composer, sharing *Sharing, logger *logging.Logger) *Orchestrator {
	if number == "" {
		number = DefaultNumber
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Orchestrator{
		number:   number,
		dialer:   dialer,
		notifier: notifier,
		composer: composer,
		sharing:  sharing,
		logger:   logger,
	}
}

func (o *Orchestrator) Number() string {
	return o.number
}

// OnTrigger dials the emergency number, starts sharing and, when both a
// location and at least one contact are available, sends the distress
// message. The call and the sharing session happen even when the message
// is skipped. Calls are independent: triggering twice alerts twice.
func (o *Orchestrator) OnTrigger(ctx context.Context, loc *geo.Location, recipients []contacts.Contact) Outcome {
	out := Outcome{Number: o.number}
	out.DialErr = o.dial()

	o.sharing.StartSharing()

	if loc == nil || len(recipients) == 0 {
		o.logger.Infof("alert not composed: location=%t contacts=%d", loc != nil, len(recipients))
		return out
	}

	out.Composed = true
	out.Message = o.composer.Compose(*loc, recipients)
	if err := o.notifier.Notify(ctx, recipients, out.Message); err != nil {
		o.logger.Errorf("failed to notify contacts: %v", err)
		out.NotifyErr = err
	}
	return out
}

// CallEmergency dials without starting a sharing session.
func (o *Orchestrator) CallEmergency() error {
	return o.dial()
}

func (o *Orchestrator) dial() error {
	err := o.dialer.Dial(o.number)
	if err != nil {
		o.logger.Warnf("dial %s failed: %v", o.number, err)
	}
	return err
}
