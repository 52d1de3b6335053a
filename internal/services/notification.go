package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skillforge/skillforge-backend/internal/logger"
	"github.com/skillforge/skillforge-backend/internal/repos"
	"github.com/skillforge/skillforge-backend/internal/types"
)

// NotificationService serves the recipient-facing notification feed.
type NotificationService interface {
	ListForUser(ctx context.Context, userID string) ([]*types.Notification, error)
	CountUnread(ctx context.Context, userID string) (int64, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	MarkAllRead(ctx context.Context, userID string) error
}

type notificationService struct {
	db               *gorm.DB
	log              *logger.Logger
	notificationRepo repos.NotificationRepo
}

func NewNotificationService(db *gorm.DB, baseLog *logger.Logger, notificationRepo repos.NotificationRepo) NotificationService {
	serviceLog := baseLog.With("service", "NotificationService")
	return &notificationService{
		db:               db,
		log:              serviceLog,
		notificationRepo: notificationRepo,
	}
}

func (ns *notificationService) ListForUser(ctx context.Context, userID string) ([]*types.Notification, error) {
	if userID == "" {
		return []*types.Notification{}, nil
	}
	notifications, err := ns.notificationRepo.ListByUserID(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return notifications, nil
}

func (ns *notificationService) CountUnread(ctx context.Context, userID string) (int64, error) {
	count, err := ns.notificationRepo.CountUnread(ctx, nil, userID)
	if err != nil {
		return 0, fmt.Errorf("count unread notifications: %w", err)
	}
	return count, nil
}

func (ns *notificationService) MarkRead(ctx context.Context, id uuid.UUID) error {
	if err := ns.notificationRepo.MarkRead(ctx, nil, id); err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	return nil
}

func (ns *notificationService) MarkAllRead(ctx context.Context, userID string) error {
	if err := ns.notificationRepo.MarkAllRead(ctx, nil, userID); err != nil {
		return fmt.Errorf("mark all notifications read: %w", err)
	}
	return nil
}
