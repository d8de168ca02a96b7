package domain

import "context"

// NotificationLevel is the severity of an operator-facing message.
type NotificationLevel string

const (
	NotifyInfo  NotificationLevel = "info"
	NotifyWarn  NotificationLevel = "warn"
	NotifyError NotificationLevel = "error"
)

// Notification is a message surfaced to the operator.
type Notification struct {
	Level   NotificationLevel `json:"level"`
	Message string            `json:"message"`
}

// Notifier surfaces messages to the operator.
type Notifier interface {
	Notify(ctx context.Context, level NotificationLevel, message string)
}

// HostContext carries the host state a generation runs against. Nothing is
// read from ambient globals.
type HostContext struct {
	// ActiveScene is where tokens are placed. Empty means no scene is active.
	ActiveScene string
	// SelectedPosition is the position of the operator's selected token, if any.
	SelectedPosition *Position
	Notifier         Notifier
}

// PlacementPosition returns the selected token position or DefaultPosition.
func (h HostContext) PlacementPosition() Position {
	if h.SelectedPosition != nil {
		return *h.SelectedPosition
	}
	return DefaultPosition
}

// Notify forwards to the notifier when one is set.
func (h HostContext) Notify(ctx context.Context, level NotificationLevel, message string) {
	if h.Notifier != nil {
		h.Notifier.Notify(ctx, level, message)
	}
}
