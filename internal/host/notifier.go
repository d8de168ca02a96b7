package host

import (
	"context"
	"sync"

	"github.com/osse101/LootForge_Go/internal/domain"
	"github.com/osse101/LootForge_Go/internal/logger"
)

// LogNotifier writes operator messages to the request logger.
type LogNotifier struct{}

func (LogNotifier) Notify(ctx context.Context, level domain.NotificationLevel, message string) {
	log := logger.FromContext(ctx)
	switch level {
	case domain.NotifyError:
		log.Error(message, "notification", string(level))
	case domain.NotifyWarn:
		log.Warn(message, "notification", string(level))
	default:
		log.Info(message, "notification", string(level))
	}
}

// RecordingNotifier keeps every message so callers can return them,
// and optionally forwards to another notifier.
type RecordingNotifier struct {
	Next domain.Notifier

	mu       sync.Mutex
	messages []domain.Notification
}

// NewRecordingNotifier creates a notifier that also forwards to next when set.
func NewRecordingNotifier(next domain.Notifier) *RecordingNotifier {
	return &RecordingNotifier{Next: next}
}

func (r *RecordingNotifier) Notify(ctx context.Context, level domain.NotificationLevel, message string) {
	r.mu.Lock()
	r.messages = append(r.messages, domain.Notification{Level: level, Message: message})
	r.mu.Unlock()

	if r.Next != nil {
		r.Next.Notify(ctx, level, message)
	}
}

// Messages returns the recorded notifications in order. It never returns nil.
func (r *RecordingNotifier) Messages() []domain.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append(make([]domain.Notification, 0, len(r.messages)), r.messages...)
}
