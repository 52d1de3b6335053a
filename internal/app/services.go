package app

import (
	"os"
	"strings"

	"gorm.io/gorm"

	"github.com/skillforge/skillforge-backend/internal/clients/redis"
	"github.com/skillforge/skillforge-backend/internal/logger"
	"github.com/skillforge/skillforge-backend/internal/services"
)

type Services struct {
	Notifier         services.Notifier
	Post             services.PostService
	LearningPlan     services.LearningPlanService
	LearningProgress services.LearningProgressService
	Notification     services.NotificationService
}

func wireServices(db *gorm.DB, log *logger.Logger, reposet Repos, bus redis.EventBus) Services {
	log.Info("Wiring services...")
	notifier := services.NewNotifier(log, reposet.Notification, bus)
	return Services{
		Notifier:         notifier,
		Post:             services.NewPostService(db, log, reposet.Post, notifier),
		LearningPlan:     services.NewLearningPlanService(db, log, reposet.LearningPlan, notifier),
		LearningProgress: services.NewLearningProgressService(db, log, reposet.LearningProgress, notifier),
		Notification:     services.NewNotificationService(db, log, reposet.Notification),
	}
}

// wireEventBus returns nil when no redis address is configured; the notifier
// treats a nil bus as store-only delivery.
func wireEventBus(log *logger.Logger) (redis.EventBus, error) {
	if strings.TrimSpace(os.Getenv("REDIS_ADDR")) == "" {
		log.Info("REDIS_ADDR not set; notification events disabled")
		return nil, nil
	}
	return redis.NewEventBus(log)
}
