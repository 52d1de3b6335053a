package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skillforge/skillforge-backend/internal/logger"
	"github.com/skillforge/skillforge-backend/internal/types"
)

type LearningProgressRepo interface {
	Save(ctx context.Context, tx *gorm.DB, entry *types.LearningProgress) (*types.LearningProgress, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.LearningProgress, error)
	Delete(ctx context.Context, tx *gorm.DB, entry *types.LearningProgress) error
	ListAll(ctx context.Context, tx *gorm.DB) ([]*types.LearningProgress, error)
	ListByUserID(ctx context.Context, tx *gorm.DB, userID string) ([]*types.LearningProgress, error)
}

type learningProgressRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLearningProgressRepo(db *gorm.DB, baseLog *logger.Logger) LearningProgressRepo {
	repoLog := baseLog.With("repo", "LearningProgressRepo")
	return &learningProgressRepo{db: db, log: repoLog}
}

func (lr *learningProgressRepo) Save(ctx context.Context, tx *gorm.DB, entry *types.LearningProgress) (*types.LearningProgress, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}

	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}

	if err := transaction.WithContext(ctx).Save(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

func (lr *learningProgressRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.LearningProgress, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}

	var result types.LearningProgress
	if err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (lr *learningProgressRepo) Delete(ctx context.Context, tx *gorm.DB, entry *types.LearningProgress) error {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}
	return transaction.WithContext(ctx).Delete(entry).Error
}

func (lr *learningProgressRepo) ListAll(ctx context.Context, tx *gorm.DB) ([]*types.LearningProgress, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}

	var results []*types.LearningProgress
	if err := transaction.WithContext(ctx).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// ListByUserID intentionally carries no ordering clause, same as the plan
// repo.
func (lr *learningProgressRepo) ListByUserID(ctx context.Context, tx *gorm.DB, userID string) ([]*types.LearningProgress, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}

	var results []*types.LearningProgress
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
