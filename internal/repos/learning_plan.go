package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skillforge/skillforge-backend/internal/logger"
	"github.com/skillforge/skillforge-backend/internal/types"
)

type LearningPlanRepo interface {
	Save(ctx context.Context, tx *gorm.DB, plan *types.LearningPlan) (*types.LearningPlan, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.LearningPlan, error)
	Delete(ctx context.Context, tx *gorm.DB, plan *types.LearningPlan) error
	ListAll(ctx context.Context, tx *gorm.DB) ([]*types.LearningPlan, error)
	ListByUserID(ctx context.Context, tx *gorm.DB, userID string) ([]*types.LearningPlan, error)
}

type learningPlanRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLearningPlanRepo(db *gorm.DB, baseLog *logger.Logger) LearningPlanRepo {
	repoLog := baseLog.With("repo", "LearningPlanRepo")
	return &learningPlanRepo{db: db, log: repoLog}
}

func (lr *learningPlanRepo) Save(ctx context.Context, tx *gorm.DB, plan *types.LearningPlan) (*types.LearningPlan, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}

	if plan.ID == uuid.Nil {
		plan.ID = uuid.New()
	}

	if err := transaction.WithContext(ctx).Save(plan).Error; err != nil {
		return nil, err
	}
	return plan, nil
}

func (lr *learningPlanRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.LearningPlan, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}

	var result types.LearningPlan
	if err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (lr *learningPlanRepo) Delete(ctx context.Context, tx *gorm.DB, plan *types.LearningPlan) error {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}
	return transaction.WithContext(ctx).Delete(plan).Error
}

func (lr *learningPlanRepo) ListAll(ctx context.Context, tx *gorm.DB) ([]*types.LearningPlan, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}

	var results []*types.LearningPlan
	if err := transaction.WithContext(ctx).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// ListByUserID intentionally carries no ordering clause; owner feeds for
// plans are rendered in store order.
func (lr *learningPlanRepo) ListByUserID(ctx context.Context, tx *gorm.DB, userID string) ([]*types.LearningPlan, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}

	var results []*types.LearningPlan
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
