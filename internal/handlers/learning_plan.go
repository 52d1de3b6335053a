package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillforge/skillforge-backend/internal/logger"
	"github.com/skillforge/skillforge-backend/internal/services"
	"github.com/skillforge/skillforge-backend/internal/types"
)

type LearningPlanHandler struct {
	log         *logger.Logger
	planService services.LearningPlanService
}

func NewLearningPlanHandler(log *logger.Logger, planService services.LearningPlanService) *LearningPlanHandler {
	return &LearningPlanHandler{
		log:         log.With("handler", "LearningPlanHandler"),
		planService: planService,
	}
}

// POST /api/learning-plans/user/:userId
func (h *LearningPlanHandler) Create(c *gin.Context) {
	var plan types.LearningPlan
	if err := c.ShouldBindJSON(&plan); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	created, err := h.planService.Create(c.Request.Context(), c.Param("userId"), &plan)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, created)
}

// GET /api/learning-plans
func (h *LearningPlanHandler) ListAll(c *gin.Context) {
	plans, err := h.planService.ListAll(c.Request.Context())
	if err != nil {
		h.log.Error("ListAll learning plans failed", "error", err)
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, plans)
}

// GET /api/learning-plans/:id
func (h *LearningPlanHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	plan, err := h.planService.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, plan)
}

// GET /api/learning-plans/user/:userId
func (h *LearningPlanHandler) ListByUser(c *gin.Context) {
	plans, err := h.planService.ListByUserID(c.Request.Context(), c.Param("userId"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, plans)
}

// PUT /api/learning-plans/:id
func (h *LearningPlanHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var details types.LearningPlan
	if err := c.ShouldBindJSON(&details); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	updated, err := h.planService.Update(c.Request.Context(), id, &details)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, updated)
}

// DELETE /api/learning-plans/:id
func (h *LearningPlanHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.planService.Delete(c.Request.Context(), id); err != nil {
		RespondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// POST /api/learning-plans/:id/comments
func (h *LearningPlanHandler) AddComment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var comment types.Comment
	if err := c.ShouldBindJSON(&comment); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	plan, err := h.planService.AddComment(c.Request.Context(), id, comment)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, plan)
}

// PUT /api/learning-plans/:id/comments/:commentId
func (h *LearningPlanHandler) UpdateComment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var comment types.Comment
	if err := c.ShouldBindJSON(&comment); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	plan, err := h.planService.UpdateComment(c.Request.Context(), id, c.Param("commentId"), comment.Content)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, plan)
}

// DELETE /api/learning-plans/:id/comments/:commentId?userId=
func (h *LearningPlanHandler) DeleteComment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	plan, err := h.planService.DeleteComment(c.Request.Context(), id, c.Param("commentId"), c.Query("userId"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, plan)
}

// POST /api/learning-plans/:id/likes
func (h *LearningPlanHandler) AddLike(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var like types.Like
	if err := c.ShouldBindJSON(&like); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	plan, err := h.planService.AddLike(c.Request.Context(), id, like)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, plan)
}

// DELETE /api/learning-plans/:id/likes/:userId
func (h *LearningPlanHandler) RemoveLike(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	plan, err := h.planService.RemoveLike(c.Request.Context(), id, c.Param("userId"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, plan)
}
