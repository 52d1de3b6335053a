package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillforge/skillforge-backend/internal/logger"
	"github.com/skillforge/skillforge-backend/internal/services"
	"github.com/skillforge/skillforge-backend/internal/types"
)

type LearningProgressHandler struct {
	log             *logger.Logger
	progressService services.LearningProgressService
}

func NewLearningProgressHandler(log *logger.Logger, progressService services.LearningProgressService) *LearningProgressHandler {
	return &LearningProgressHandler{
		log:             log.With("handler", "LearningProgressHandler"),
		progressService: progressService,
	}
}

// POST /api/learning-progress/user/:userId
func (h *LearningProgressHandler) Create(c *gin.Context) {
	var entry types.LearningProgress
	if err := c.ShouldBindJSON(&entry); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	created, err := h.progressService.Create(c.Request.Context(), c.Param("userId"), &entry)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, created)
}

// GET /api/learning-progress
func (h *LearningProgressHandler) ListAll(c *gin.Context) {
	entries, err := h.progressService.ListAll(c.Request.Context())
	if err != nil {
		h.log.Error("ListAll learning progress failed", "error", err)
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, entries)
}

// GET /api/learning-progress/:id
func (h *LearningProgressHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	entry, err := h.progressService.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, entry)
}

// GET /api/learning-progress/user/:userId
func (h *LearningProgressHandler) ListByUser(c *gin.Context) {
	entries, err := h.progressService.ListByUserID(c.Request.Context(), c.Param("userId"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, entries)
}

// PUT /api/learning-progress/:id
func (h *LearningProgressHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var details types.LearningProgress
	if err := c.ShouldBindJSON(&details); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	updated, err := h.progressService.Update(c.Request.Context(), id, &details)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, updated)
}

// DELETE /api/learning-progress/:id
func (h *LearningProgressHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.progressService.Delete(c.Request.Context(), id); err != nil {
		RespondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// POST /api/learning-progress/:id/comments
func (h *LearningProgressHandler) AddComment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var comment types.Comment
	if err := c.ShouldBindJSON(&comment); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	entry, err := h.progressService.AddComment(c.Request.Context(), id, comment)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, entry)
}

// PUT /api/learning-progress/:id/comments/:commentId
func (h *LearningProgressHandler) UpdateComment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var comment types.Comment
	if err := c.ShouldBindJSON(&comment); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	entry, err := h.progressService.UpdateComment(c.Request.Context(), id, c.Param("commentId"), comment.Content)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, entry)
}

// DELETE /api/learning-progress/:id/comments/:commentId?userId=
func (h *LearningProgressHandler) DeleteComment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	entry, err := h.progressService.DeleteComment(c.Request.Context(), id, c.Param("commentId"), c.Query("userId"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, entry)
}

// POST /api/learning-progress/:id/likes
func (h *LearningProgressHandler) AddLike(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var like types.Like
	if err := c.ShouldBindJSON(&like); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	entry, err := h.progressService.AddLike(c.Request.Context(), id, like)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, entry)
}

// DELETE /api/learning-progress/:id/likes/:userId
func (h *LearningProgressHandler) RemoveLike(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	entry, err := h.progressService.RemoveLike(c.Request.Context(), id, c.Param("userId"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, entry)
}
