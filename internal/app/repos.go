package app

import (
	"gorm.io/gorm"

	"github.com/skillforge/skillforge-backend/internal/logger"
	"github.com/skillforge/skillforge-backend/internal/repos"
)

type Repos struct {
	Post             repos.PostRepo
	LearningPlan     repos.LearningPlanRepo
	LearningProgress repos.LearningProgressRepo
	Notification     repos.NotificationRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Post:             repos.NewPostRepo(db, log),
		LearningPlan:     repos.NewLearningPlanRepo(db, log),
		LearningProgress: repos.NewLearningProgressRepo(db, log),
		Notification:     repos.NewNotificationRepo(db, log),
	}
}
