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

const ContentTypeLearningPlan = "learning plan"

type LearningPlanService interface {
	Create(ctx context.Context, userID string, plan *types.LearningPlan) (*types.LearningPlan, error)
	GetByID(ctx context.Context, id uuid.UUID) (*types.LearningPlan, error)
	ListAll(ctx context.Context) ([]*types.LearningPlan, error)
	ListByUserID(ctx context.Context, userID string) ([]*types.LearningPlan, error)
	Update(ctx context.Context, id uuid.UUID, details *types.LearningPlan) (*types.LearningPlan, error)
	Delete(ctx context.Context, id uuid.UUID) error

	AddComment(ctx context.Context, id uuid.UUID, comment types.Comment) (*types.LearningPlan, error)
	UpdateComment(ctx context.Context, id uuid.UUID, commentID, content string) (*types.LearningPlan, error)
	DeleteComment(ctx context.Context, id uuid.UUID, commentID, requesterID string) (*types.LearningPlan, error)
	AddLike(ctx context.Context, id uuid.UUID, like types.Like) (*types.LearningPlan, error)
	RemoveLike(ctx context.Context, id uuid.UUID, userID string) (*types.LearningPlan, error)
}

type learningPlanService struct {
	db       *gorm.DB
	log      *logger.Logger
	planRepo repos.LearningPlanRepo
	engine   *InteractionEngine[*types.LearningPlan]
}

func NewLearningPlanService(db *gorm.DB, baseLog *logger.Logger, planRepo repos.LearningPlanRepo, notifier Notifier) LearningPlanService {
	serviceLog := baseLog.With("service", "LearningPlanService")
	return &learningPlanService{
		db:       db,
		log:      serviceLog,
		planRepo: planRepo,
		engine:   NewInteractionEngine[*types.LearningPlan](baseLog, planRepo, notifier, ContentTypeLearningPlan),
	}
}

func (ls *learningPlanService) Create(ctx context.Context, userID string, plan *types.LearningPlan) (*types.LearningPlan, error) {
	if userID == "" {
		return nil, apierr.Validation("user_id_required", fmt.Errorf("user ID is required"))
	}
	plan.ID = uuid.Nil
	plan.UserID = userID
	if plan.UserName == "" {
		plan.UserName = types.UnknownUserName
	}
	now := time.Now()
	plan.CreatedAt = now
	plan.UpdatedAt = now
	plan.Likes = []types.Like{}
	plan.Comments = []types.Comment{}

	created, err := ls.planRepo.Save(ctx, nil, plan)
	if err != nil {
		ls.log.Error("Create learning plan failed", "error", err, "user_id", userID)
		return nil, fmt.Errorf("create learning plan: %w", err)
	}
	return created, nil
}

func (ls *learningPlanService) GetByID(ctx context.Context, id uuid.UUID) (*types.LearningPlan, error) {
	plan, err := ls.planRepo.GetByID(ctx, nil, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("learning_plan_not_found", fmt.Errorf("learning plan %s not found", id))
		}
		return nil, fmt.Errorf("load learning plan: %w", err)
	}
	return plan, nil
}

func (ls *learningPlanService) ListAll(ctx context.Context) ([]*types.LearningPlan, error) {
	return ls.planRepo.ListAll(ctx, nil)
}

func (ls *learningPlanService) ListByUserID(ctx context.Context, userID string) ([]*types.LearningPlan, error) {
	return ls.planRepo.ListByUserID(ctx, nil, userID)
}

func (ls *learningPlanService) Update(ctx context.Context, id uuid.UUID, details *types.LearningPlan) (*types.LearningPlan, error) {
	plan, err := ls.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	plan.Title = details.Title
	plan.Description = details.Description
	plan.Topics = details.Topics
	plan.Resources = details.Resources
	plan.UpdatedAt = time.Now()

	updated, err := ls.planRepo.Save(ctx, nil, plan)
	if err != nil {
		return nil, fmt.Errorf("update learning plan: %w", err)
	}
	return updated, nil
}

func (ls *learningPlanService) Delete(ctx context.Context, id uuid.UUID) error {
	plan, err := ls.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := ls.planRepo.Delete(ctx, nil, plan); err != nil {
		return fmt.Errorf("delete learning plan: %w", err)
	}
	return nil
}

func (ls *learningPlanService) AddComment(ctx context.Context, id uuid.UUID, comment types.Comment) (*types.LearningPlan, error) {
	return ls.engine.AddComment(ctx, id, comment)
}

func (ls *learningPlanService) UpdateComment(ctx context.Context, id uuid.UUID, commentID, content string) (*types.LearningPlan, error) {
	return ls.engine.UpdateComment(ctx, id, commentID, content)
}

func (ls *learningPlanService) DeleteComment(ctx context.Context, id uuid.UUID, commentID, requesterID string) (*types.LearningPlan, error) {
	return ls.engine.DeleteComment(ctx, id, commentID, requesterID)
}

func (ls *learningPlanService) AddLike(ctx context.Context, id uuid.UUID, like types.Like) (*types.LearningPlan, error) {
	return ls.engine.AddLike(ctx, id, like)
}

func (ls *learningPlanService) RemoveLike(ctx context.Context, id uuid.UUID, userID string) (*types.LearningPlan, error) {
	return ls.engine.RemoveLike(ctx, id, userID)
}
