package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/skillforge/skillforge-backend/internal/logger"
	"github.com/skillforge/skillforge-backend/internal/services"
	"github.com/skillforge/skillforge-backend/internal/types"
)

type PostHandler struct {
	log         *logger.Logger
	postService services.PostService
}

func NewPostHandler(log *logger.Logger, postService services.PostService) *PostHandler {
	return &PostHandler{
		log:         log.With("handler", "PostHandler"),
		postService: postService,
	}
}

// POST /api/posts/user/:userId
func (h *PostHandler) Create(c *gin.Context) {
	var post types.Post
	if err := c.ShouldBindJSON(&post); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	created, err := h.postService.Create(c.Request.Context(), c.Param("userId"), &post)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, created)
}

// GET /api/posts
func (h *PostHandler) ListAll(c *gin.Context) {
	posts, err := h.postService.ListAll(c.Request.Context())
	if err != nil {
		h.log.Error("ListAll posts failed", "error", err)
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, posts)
}

// GET /api/posts/:id
func (h *PostHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	post, err := h.postService.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, post)
}

// GET /api/posts/user/:userId
func (h *PostHandler) ListByUser(c *gin.Context) {
	posts, err := h.postService.ListByUserID(c.Request.Context(), c.Param("userId"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, posts)
}

// PUT /api/posts/:id
func (h *PostHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var details types.Post
	if err := c.ShouldBindJSON(&details); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	updated, err := h.postService.Update(c.Request.Context(), id, &details)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, updated)
}

// DELETE /api/posts/:id
func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.postService.Delete(c.Request.Context(), id); err != nil {
		RespondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// POST /api/posts/:id/comments
func (h *PostHandler) AddComment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var comment types.Comment
	if err := c.ShouldBindJSON(&comment); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	post, err := h.postService.AddComment(c.Request.Context(), id, comment)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, post)
}

// PUT /api/posts/:id/comments/:commentId
func (h *PostHandler) UpdateComment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var comment types.Comment
	if err := c.ShouldBindJSON(&comment); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	post, err := h.postService.UpdateComment(c.Request.Context(), id, c.Param("commentId"), comment.Content)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, post)
}

// DELETE /api/posts/:id/comments/:commentId?userId=
func (h *PostHandler) DeleteComment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	post, err := h.postService.DeleteComment(c.Request.Context(), id, c.Param("commentId"), c.Query("userId"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, post)
}

// POST /api/posts/:id/likes
func (h *PostHandler) AddLike(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var like types.Like
	if err := c.ShouldBindJSON(&like); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	post, err := h.postService.AddLike(c.Request.Context(), id, like)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, post)
}

// DELETE /api/posts/:id/likes/:userId
func (h *PostHandler) RemoveLike(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	post, err := h.postService.RemoveLike(c.Request.Context(), id, c.Param("userId"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, post)
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", fmt.Errorf("invalid id %q", c.Param("id")))
		return uuid.Nil, false
	}
	return id, true
}
