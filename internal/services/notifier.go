package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/skillforge/skillforge-backend/internal/clients/redis"
	"github.com/skillforge/skillforge-backend/internal/logger"
	"github.com/skillforge/skillforge-backend/internal/repos"
	"github.com/skillforge/skillforge-backend/internal/types"
)

// Notifier is the trigger contract for owner notifications. Calls are
// fire-and-forget: a delivery failure must never fail the mutation that
// triggered it.
type Notifier interface {
	NotifyComment(ctx context.Context, contentType string, contentID uuid.UUID, ownerID, actorID, commentText string)
	NotifyLike(ctx context.Context, contentType string, contentID uuid.UUID, ownerID, actorID string)
}

type notifier struct {
	log              *logger.Logger
	notificationRepo repos.NotificationRepo
	bus              redis.EventBus
}

// NewNotifier records notifications for the content owner and, when a bus is
// configured, publishes an event on the owner's channel. bus may be nil.
func NewNotifier(baseLog *logger.Logger, notificationRepo repos.NotificationRepo, bus redis.EventBus) Notifier {
	serviceLog := baseLog.With("service", "Notifier")
	return &notifier{
		log:              serviceLog,
		notificationRepo: notificationRepo,
		bus:              bus,
	}
}

func (n *notifier) NotifyComment(ctx context.Context, contentType string, contentID uuid.UUID, ownerID, actorID, commentText string) {
	if n == nil || ownerID == "" {
		return
	}
	n.dispatch(ctx, &types.Notification{
		UserID:      ownerID,
		SenderID:    actorID,
		ContentID:   contentID,
		ContentType: contentType,
		Kind:        types.NotificationKindComment,
		Message:     fmt.Sprintf("New comment on your %s: %s", contentType, commentText),
	})
}

func (n *notifier) NotifyLike(ctx context.Context, contentType string, contentID uuid.UUID, ownerID, actorID string) {
	if n == nil || ownerID == "" {
		return
	}
	n.dispatch(ctx, &types.Notification{
		UserID:      ownerID,
		SenderID:    actorID,
		ContentID:   contentID,
		ContentType: contentType,
		Kind:        types.NotificationKindLike,
		Message:     fmt.Sprintf("Someone liked your %s", contentType),
	})
}

// dispatch swallows every failure; notification delivery is best-effort.
func (n *notifier) dispatch(ctx context.Context, notification *types.Notification) {
	if n.notificationRepo != nil {
		if _, err := n.notificationRepo.Create(ctx, nil, notification); err != nil {
			n.log.Error("Failed to record notification",
				"error", err,
				"recipient", notification.UserID,
				"kind", notification.Kind,
			)
		}
	}
	if n.bus != nil {
		event := redis.Event{
			Channel: notification.UserID,
			Kind:    notification.Kind,
			Data: map[string]any{
				"notification": notification,
			},
		}
		if err := n.bus.Publish(ctx, event); err != nil {
			n.log.Warn("Failed to publish notification event",
				"error", err,
				"recipient", notification.UserID,
				"kind", notification.Kind,
			)
		}
	}
}
