package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skillforge/skillforge-backend/internal/clients/redis"
	"github.com/skillforge/skillforge-backend/internal/types"
)

type fakeNotificationRepo struct {
	created []*types.Notification
	failing bool
}

func (r *fakeNotificationRepo) Create(_ context.Context, _ *gorm.DB, n *types.Notification) (*types.Notification, error) {
	if r.failing {
		return nil, fmt.Errorf("store down")
	}
	r.created = append(r.created, n)
	return n, nil
}

func (r *fakeNotificationRepo) ListByUserID(_ context.Context, _ *gorm.DB, userID string) ([]*types.Notification, error) {
	var results []*types.Notification
	for _, n := range r.created {
		if n.UserID == userID {
			results = append(results, n)
		}
	}
	return results, nil
}

func (r *fakeNotificationRepo) CountUnread(_ context.Context, _ *gorm.DB, userID string) (int64, error) {
	var count int64
	for _, n := range r.created {
		if n.UserID == userID && !n.Read {
			count++
		}
	}
	return count, nil
}

func (r *fakeNotificationRepo) MarkRead(_ context.Context, _ *gorm.DB, id uuid.UUID) error {
	for _, n := range r.created {
		if n.ID == id {
			n.Read = true
		}
	}
	return nil
}

func (r *fakeNotificationRepo) MarkAllRead(_ context.Context, _ *gorm.DB, userID string) error {
	for _, n := range r.created {
		if n.UserID == userID {
			n.Read = true
		}
	}
	return nil
}

type fakeBus struct {
	events  []redis.Event
	failing bool
}

func (b *fakeBus) Publish(_ context.Context, event redis.Event) error {
	if b.failing {
		return fmt.Errorf("redis down")
	}
	b.events = append(b.events, event)
	return nil
}

func (b *fakeBus) Close() error { return nil }

func TestNotifyCommentRecordsAndPublishes(t *testing.T) {
	repo := &fakeNotificationRepo{}
	bus := &fakeBus{}
	n := NewNotifier(testLogger(t), repo, bus)

	contentID := uuid.New()
	n.NotifyComment(context.Background(), "post", contentID, "u1", "u2", "hi")

	if len(repo.created) != 1 {
		t.Fatalf("expected 1 notification recorded, got %d", len(repo.created))
	}
	got := repo.created[0]
	if got.UserID != "u1" || got.SenderID != "u2" || got.ContentID != contentID {
		t.Fatalf("notification misrouted: %+v", got)
	}
	if got.Kind != types.NotificationKindComment {
		t.Fatalf("wrong kind %q", got.Kind)
	}
	if len(bus.events) != 1 || bus.events[0].Channel != "u1" {
		t.Fatalf("event not published to owner channel: %+v", bus.events)
	}
}

func TestNotifyLikeRecordsKind(t *testing.T) {
	repo := &fakeNotificationRepo{}
	n := NewNotifier(testLogger(t), repo, nil)

	n.NotifyLike(context.Background(), "learning plan", uuid.New(), "u1", "u2")

	if len(repo.created) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(repo.created))
	}
	if repo.created[0].Kind != types.NotificationKindLike {
		t.Fatalf("wrong kind %q", repo.created[0].Kind)
	}
}

// Delivery is best-effort: failures must be contained inside the notifier.
func TestNotifierSwallowsFailures(t *testing.T) {
	n := NewNotifier(testLogger(t), &fakeNotificationRepo{failing: true}, &fakeBus{failing: true})

	n.NotifyComment(context.Background(), "post", uuid.New(), "u1", "u2", "hi")
	n.NotifyLike(context.Background(), "post", uuid.New(), "u1", "u2")
}

func TestNotifierSkipsEmptyOwner(t *testing.T) {
	repo := &fakeNotificationRepo{}
	n := NewNotifier(testLogger(t), repo, nil)

	n.NotifyLike(context.Background(), "post", uuid.New(), "", "u2")
	if len(repo.created) != 0 {
		t.Fatalf("notification recorded for empty owner")
	}
}
