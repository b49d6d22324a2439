// Package emergency places the emergency call, starts location sharing and
// dispatches the distress message when the SOS gesture fires.
package emergency

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"sync"

	"github.com/Rorical/SafeHer/internal/contacts"
	"github.com/Rorical/SafeHer/internal/logging"
)

const DefaultNumber = "112"

// Dialer starts a phone call. Implementations must not block on the call.
type Dialer interface {
	Dial(number string) error
}

// Notifier delivers the distress message to contacts.
type Notifier interface {
	Notify(ctx context.Context, recipients []contacts.Contact, message string) error
}

// ExecDialer hands a tel: URI to the platform's URL opener, which routes it
// to whatever dialer app is registered (a paired phone, a softphone).
type ExecDialer struct {
	logger *logging.Logger
	start  func(name string, args ...string) error
}

func NewExecDialer(logger *logging.Logger) *ExecDialer {
	return &ExecDialer{logger: logger, start: startDetached}
}

func (d *ExecDialer) Dial(number string) error {
	name, args := openerCommand(runtime.GOOS, "tel:"+number)
	if err := d.start(name, args...); err != nil {
		return fmt.Errorf("failed to open dialer for %s: %w", number, err)
	}
	d.logger.Infof("dial requested: %s", number)
	return nil
}

func openerCommand(goos, uri string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{uri}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", uri}
	default:
		return "xdg-open", []string{uri}
	}
}

func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

// LogNotifier writes the message to the log instead of sending it. There is
// no SMS or push backend.
type LogNotifier struct {
	logger *logging.Logger
}

func NewLogNotifier(logger *logging.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(ctx context.Context, recipients []contacts.Contact, message string) error {
	for _, r := range recipients {
		n.logger.Infof("emergency message to %s (%s): %s", r.Name, r.Phone, message)
	}
	return nil
}

// Notification is one recorded Notify call.
type Notification struct {
	Recipients []contacts.Contact
	Message    string
}

// Recorder is a Dialer and Notifier that only remembers what it was asked
// to do. It backs dry runs and tests.
type Recorder struct {
	mu            sync.Mutex
	dialed        []string
	notifications []Notification
	DialErr       error
	NotifyErr     error
}

func (r *Recorder) Dial(number string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dialed = append(r.dialed, number)
	return r.DialErr
}

func (r *Recorder) Notify(ctx context.Context, recipients []contacts.Contact, message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := make([]contacts.Contact, len(recipients))
	copy(cp, recipients)
	r.notifications = append(r.notifications, Notification{Recipients: cp, Message: message})
	return r.NotifyErr
}

func (r *Recorder) Dialed() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.dialed...)
}

func (r *Recorder) Notifications() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.notifications...)
}
