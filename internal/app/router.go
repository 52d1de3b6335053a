package app

import (
	"github.com/gin-gonic/gin"

	"github.com/skillforge/skillforge-backend/internal/logger"
	"github.com/skillforge/skillforge-backend/internal/server"
)

func wireRouter(cfg Config, log *logger.Logger, handlerset Handlers) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		Log:                     log,
		AllowOrigins:            server.SplitOrigins(cfg.CORSAllowOrigins),
		PostHandler:             handlerset.Post,
		LearningPlanHandler:     handlerset.LearningPlan,
		LearningProgressHandler: handlerset.LearningProgress,
		NotificationHandler:     handlerset.Notification,
	})
}
