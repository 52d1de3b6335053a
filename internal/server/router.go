package server

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/skillforge/skillforge-backend/internal/handlers"
	"github.com/skillforge/skillforge-backend/internal/logger"
	"github.com/skillforge/skillforge-backend/internal/middleware"
)

type RouterConfig struct {
	Log                     *logger.Logger
	AllowOrigins            []string
	PostHandler             *handlers.PostHandler
	LearningPlanHandler     *handlers.LearningPlanHandler
	LearningProgressHandler *handlers.LearningProgressHandler
	NotificationHandler     *handlers.NotificationHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	if cfg.Log != nil {
		router.Use(middleware.NewRequestLogger(cfg.Log).Handle())
	}

	allowOrigins := cfg.AllowOrigins
	if len(allowOrigins) == 0 {
		allowOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")

	posts := api.Group("/posts")
	{
		posts.POST("/user/:userId", cfg.PostHandler.Create)
		posts.GET("", cfg.PostHandler.ListAll)
		posts.GET("/:id", cfg.PostHandler.GetByID)
		posts.GET("/user/:userId", cfg.PostHandler.ListByUser)
		posts.PUT("/:id", cfg.PostHandler.Update)
		posts.DELETE("/:id", cfg.PostHandler.Delete)
		posts.POST("/:id/comments", cfg.PostHandler.AddComment)
		posts.PUT("/:id/comments/:commentId", cfg.PostHandler.UpdateComment)
		posts.DELETE("/:id/comments/:commentId", cfg.PostHandler.DeleteComment)
		posts.POST("/:id/likes", cfg.PostHandler.AddLike)
		posts.DELETE("/:id/likes/:userId", cfg.PostHandler.RemoveLike)
	}

	plans := api.Group("/learning-plans")
	{
		plans.POST("/user/:userId", cfg.LearningPlanHandler.Create)
		plans.GET("", cfg.LearningPlanHandler.ListAll)
		plans.GET("/:id", cfg.LearningPlanHandler.GetByID)
		plans.GET("/user/:userId", cfg.LearningPlanHandler.ListByUser)
		plans.PUT("/:id", cfg.LearningPlanHandler.Update)
		plans.DELETE("/:id", cfg.LearningPlanHandler.Delete)
		plans.POST("/:id/comments", cfg.LearningPlanHandler.AddComment)
		plans.PUT("/:id/comments/:commentId", cfg.LearningPlanHandler.UpdateComment)
		plans.DELETE("/:id/comments/:commentId", cfg.LearningPlanHandler.DeleteComment)
		plans.POST("/:id/likes", cfg.LearningPlanHandler.AddLike)
		plans.DELETE("/:id/likes/:userId", cfg.LearningPlanHandler.RemoveLike)
	}

	progress := api.Group("/learning-progress")
	{
		progress.POST("/user/:userId", cfg.LearningProgressHandler.Create)
		progress.GET("", cfg.LearningProgressHandler.ListAll)
		progress.GET("/:id", cfg.LearningProgressHandler.GetByID)
		progress.GET("/user/:userId", cfg.LearningProgressHandler.ListByUser)
		progress.PUT("/:id", cfg.LearningProgressHandler.Update)
		progress.DELETE("/:id", cfg.LearningProgressHandler.Delete)
		progress.POST("/:id/comments", cfg.LearningProgressHandler.AddComment)
		progress.PUT("/:id/comments/:commentId", cfg.LearningProgressHandler.UpdateComment)
		progress.DELETE("/:id/comments/:commentId", cfg.LearningProgressHandler.DeleteComment)
		progress.POST("/:id/likes", cfg.LearningProgressHandler.AddLike)
		progress.DELETE("/:id/likes/:userId", cfg.LearningProgressHandler.RemoveLike)
	}

	notifications := api.Group("/notifications")
	{
		notifications.GET("/user/:userId", cfg.NotificationHandler.ListForUser)
		notifications.GET("/user/:userId/unread-count", cfg.NotificationHandler.UnreadCount)
		notifications.PUT("/:id/read", cfg.NotificationHandler.MarkRead)
		notifications.PUT("/user/:userId/read-all", cfg.NotificationHandler.MarkAllRead)
	}

	return router
}

// SplitOrigins parses a comma separated origin list from configuration.
func SplitOrigins(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
