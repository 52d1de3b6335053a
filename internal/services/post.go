package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skillforge/skillforge-backend/internal/apierr"
	"github.com/skillforge/skillforge-backend/internal/logger"
	"github.com/skillforge/skillforge-backend/internal/repos"
	"github.com/skillforge/skillforge-backend/internal/types"
)

const ContentTypePost = "post"

type PostService interface {
	Create(ctx context.Context, userID string, post *types.Post) (*types.Post, error)
	GetByID(ctx context.Context, id uuid.UUID) (*types.Post, error)
	ListAll(ctx context.Context) ([]*types.Post, error)
	ListByUserID(ctx context.Context, userID string) ([]*types.Post, error)
	Update(ctx context.Context, id uuid.UUID, details *types.Post) (*types.Post, error)
	Delete(ctx context.Context, id uuid.UUID) error

	AddComment(ctx context.Context, id uuid.UUID, comment types.Comment) (*types.Post, error)
	UpdateComment(ctx context.Context, id uuid.UUID, commentID, content string) (*types.Post, error)
	DeleteComment(ctx context.Context, id uuid.UUID, commentID, requesterID string) (*types.Post, error)
	AddLike(ctx context.Context, id uuid.UUID, like types.Like) (*types.Post, error)
	RemoveLike(ctx context.Context, id uuid.UUID, userID string) (*types.Post, error)
}

type postService struct {
	db       *gorm.DB
	log      *logger.Logger
	postRepo repos.PostRepo
	engine   *InteractionEngine[*types.Post]
}

func NewPostService(db *gorm.DB, baseLog *logger.Logger, postRepo repos.PostRepo, notifier Notifier) PostService {
	serviceLog := baseLog.With("service", "PostService")
	return &postService{
		db:       db,
		log:      serviceLog,
		postRepo: postRepo,
		engine:   NewInteractionEngine[*types.Post](baseLog, postRepo, notifier, ContentTypePost),
	}
}

func (ps *postService) Create(ctx context.Context, userID string, post *types.Post) (*types.Post, error) {
	if userID == "" {
		return nil, apierr.Validation("user_id_required", fmt.Errorf("user ID is required"))
	}
	post.ID = uuid.Nil
	post.UserID = userID
	if post.UserName == "" {
		post.UserName = types.UnknownUserName
	}
	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now
	post.Likes = []types.Like{}
	post.Comments = []types.Comment{}

	created, err := ps.postRepo.Save(ctx, nil, post)
	if err != nil {
		ps.log.Error("Create post failed", "error", err, "user_id", userID)
		return nil, fmt.Errorf("create post: %w", err)
	}
	return created, nil
}

func (ps *postService) GetByID(ctx context.Context, id uuid.UUID) (*types.Post, error) {
	post, err := ps.postRepo.GetByID(ctx, nil, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("post_not_found", fmt.Errorf("post %s not found", id))
		}
		return nil, fmt.Errorf("load post: %w", err)
	}
	return post, nil
}

func (ps *postService) ListAll(ctx context.Context) ([]*types.Post, error) {
	return ps.postRepo.ListAll(ctx, nil)
}

// ListByUserID returns an empty feed for an empty owner ID instead of
// querying; the other content types do not share this check.
func (ps *postService) ListByUserID(ctx context.Context, userID string) ([]*types.Post, error) {
	if userID == "" {
		return []*types.Post{}, nil
	}
	return ps.postRepo.ListByUserID(ctx, nil, userID)
}

func (ps *postService) Update(ctx context.Context, id uuid.UUID, details *types.Post) (*types.Post, error) {
	post, err := ps.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	post.Description = details.Description
	post.MediaURLs = details.MediaURLs
	post.UpdatedAt = time.Now()

	updated, err := ps.postRepo.Save(ctx, nil, post)
	if err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	return updated, nil
}

func (ps *postService) Delete(ctx context.Context, id uuid.UUID) error {
	post, err := ps.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := ps.postRepo.Delete(ctx, nil, post); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}

func (ps *postService) AddComment(ctx context.Context, id uuid.UUID, comment types.Comment) (*types.Post, error) {
	return ps.engine.AddComment(ctx, id, comment)
}

func (ps *postService) UpdateComment(ctx context.Context, id uuid.UUID, commentID, content string) (*types.Post, error) {
	return ps.engine.UpdateComment(ctx, id, commentID, content)
}

func (ps *postService) DeleteComment(ctx context.Context, id uuid.UUID, commentID, requesterID string) (*types.Post, error) {
	return ps.engine.DeleteComment(ctx, id, commentID, requesterID)
}

func (ps *postService) AddLike(ctx context.Context, id uuid.UUID, like types.Like) (*types.Post, error) {
	return ps.engine.AddLike(ctx, id, like)
}

func (ps *postService) RemoveLike(ctx context.Context, id uuid.UUID, userID string) (*types.Post, error) {
	return ps.engine.RemoveLike(ctx, id, userID)
}
