package ui

import (
	"fmt"
	"io"

	"github.com/ncruces/zenity"
)

// NotificationSender delivers a desktop notification
type NotificationSender interface {
	Send(title, message string) error
}

// DesktopNotificationSender shows native notifications through zenity
// (notify-send/D-Bus on Linux, osascript on macOS, the shell tray on
// Windows).
type DesktopNotificationSender struct{}

func (d *DesktopNotificationSender) Send(title, message string) error {
	return zenity.Notify(message, zenity.Title(title))
}

// Notifier prints session events and, when a sender is available, mirrors
// them as desktop notifications.
type Notifier struct {
	sender NotificationSender
	out    io.Writer
}

// NewNotifier prints events and, with desktop set, also raises a native
// notification.
func NewNotifier(out io.Writer, desktop bool) *Notifier {
	n := &Notifier{out: out}
	if desktop {
		n.sender = &DesktopNotificationSender{}
	}
	return n
}

// NewNotifierWithSender is used by tests and custom integrations
func NewNotifierWithSender(out io.Writer, sender NotificationSender) *Notifier {
	return &Notifier{out: out, sender: sender}
}

// SendSuccess reports a finished session
func (n *Notifier) SendSuccess(title, message string) {
	fmt.Fprintf(n.out, "\n%s: %s\n", Green(title), Green(message))
	n.send(title, message)
}

// SendNotification reports a neutral event
func (n *Notifier) SendNotification(title, message string) {
	fmt.Fprintf(n.out, "\n%s: %s\n", Cyan(title), Yellow(message))
	n.send(title, message)
}

func (n *Notifier) send(title, message string) {
	if n.sender == nil {
		return
	}
	// Notifications are best effort
	_ = n.sender.Send(title, message)
}
