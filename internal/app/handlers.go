package app

import (
	"github.com/skillforge/skillforge-backend/internal/handlers"
	"github.com/skillforge/skillforge-backend/internal/logger"
)

type Handlers struct {
	Post             *handlers.PostHandler
	LearningPlan     *handlers.LearningPlanHandler
	LearningProgress *handlers.LearningProgressHandler
	Notification     *handlers.NotificationHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Post:             handlers.NewPostHandler(log, serviceset.Post),
		LearningPlan:     handlers.NewLearningPlanHandler(log, serviceset.LearningPlan),
		LearningProgress: handlers.NewLearningProgressHandler(log, serviceset.LearningProgress),
		Notification:     handlers.NewNotificationHandler(log, serviceset.Notification),
	}
}
