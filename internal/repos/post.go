package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skillforge/skillforge-backend/internal/logger"
	"github.com/skillforge/skillforge-backend/internal/types"
)

type PostRepo interface {
	Save(ctx context.Context, tx *gorm.DB, post *types.Post) (*types.Post, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Post, error)
	Delete(ctx context.Context, tx *gorm.DB, post *types.Post) error
	ListAll(ctx context.Context, tx *gorm.DB) ([]*types.Post, error)
	ListByUserID(ctx context.Context, tx *gorm.DB, userID string) ([]*types.Post, error)
}

type postRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPostRepo(db *gorm.DB, baseLog *logger.Logger) PostRepo {
	repoLog := baseLog.With("repo", "PostRepo")
	return &postRepo{db: db, log: repoLog}
}

func (pr *postRepo) Save(ctx context.Context, tx *gorm.DB, post *types.Post) (*types.Post, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	// The store owns ID assignment; a zero ID means first save.
	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}

	if err := transaction.WithContext(ctx).Save(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

func (pr *postRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Post, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var result types.Post
	if err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (pr *postRepo) Delete(ctx context.Context, tx *gorm.DB, post *types.Post) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	return transaction.WithContext(ctx).Delete(post).Error
}

func (pr *postRepo) ListAll(ctx context.Context, tx *gorm.DB) ([]*types.Post, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var results []*types.Post
	if err := transaction.WithContext(ctx).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (pr *postRepo) ListByUserID(ctx context.Context, tx *gorm.DB, userID string) ([]*types.Post, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var results []*types.Post
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
