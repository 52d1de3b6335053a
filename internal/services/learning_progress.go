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

const ContentTypeLearningProgress = "learning progress"

type LearningProgressService interface {
	Create(ctx context.Context, userID string, entry *types.LearningProgress) (*types.LearningProgress, error)
	GetByID(ctx context.Context, id uuid.UUID) (*types.LearningProgress, error)
	ListAll(ctx context.Context) ([]*types.LearningProgress, error)
	ListByUserID(ctx context.Context, userID string) ([]*types.LearningProgress, error)
	Update(ctx context.Context, id uuid.UUID, details *types.LearningProgress) (*types.LearningProgress, error)
	Delete(ctx context.Context, id uuid.UUID) error

	AddComment(ctx context.Context, id uuid.UUID, comment types.Comment) (*types.LearningProgress, error)
	UpdateComment(ctx context.Context, id uuid.UUID, commentID, content string) (*types.LearningProgress, error)
	DeleteComment(ctx context.Context, id uuid.UUID, commentID, requesterID string) (*types.LearningProgress, error)
	AddLike(ctx context.Context, id uuid.UUID, like types.Like) (*types.LearningProgress, error)
	RemoveLike(ctx context.Context, id uuid.UUID, userID string) (*types.LearningProgress, error)
}

type learningProgressService struct {
	db           *gorm.DB
	log          *logger.Logger
	progressRepo repos.LearningProgressRepo
	engine       *InteractionEngine[*types.LearningProgress]
}

func NewLearningProgressService(db *gorm.DB, baseLog *logger.Logger, progressRepo repos.LearningProgressRepo, notifier Notifier) LearningProgressService {
	serviceLog := baseLog.With("service", "LearningProgressService")
	return &learningProgressService{
		db:           db,
		log:          serviceLog,
		progressRepo: progressRepo,
		engine:       NewInteractionEngine[*types.LearningProgress](baseLog, progressRepo, notifier, ContentTypeLearningProgress),
	}
}

// validateTemplate checks the fields the chosen template makes mandatory.
func validateTemplate(entry *types.LearningProgress) error {
	switch entry.TemplateType {
	case types.TemplateGeneral:
		if entry.Title == "" || entry.Description == "" {
			return apierr.Validation("template_fields_required", fmt.Errorf("title and description are required for general template"))
		}
	case types.TemplateTutorial:
		if entry.Title == "" || entry.TutorialName == "" {
			return apierr.Validation("template_fields_required", fmt.Errorf("title and tutorial name are required for tutorial template"))
		}
	case types.TemplateProject:
		if entry.Title == "" || entry.ProjectName == "" {
			return apierr.Validation("template_fields_required", fmt.Errorf("title and project name are required for project template"))
		}
	case "":
		return apierr.Validation("template_type_required", fmt.Errorf("template type is required"))
	default:
		return apierr.Validation("invalid_template_type", fmt.Errorf("invalid template type %q", entry.TemplateType))
	}
	return nil
}

func (ls *learningProgressService) Create(ctx context.Context, userID string, entry *types.LearningProgress) (*types.LearningProgress, error) {
	if userID == "" {
		return nil, apierr.Validation("user_id_required", fmt.Errorf("user ID is required"))
	}
	entry.UserID = userID
	if entry.UserName == "" {
		entry.UserName = types.UnknownUserName
	}
	if err := validateTemplate(entry); err != nil {
		return nil, err
	}

	entry.ID = uuid.Nil
	now := time.Now()
	entry.CreatedAt = now
	entry.UpdatedAt = now
	entry.Likes = []types.Like{}
	entry.Comments = []types.Comment{}

	created, err := ls.progressRepo.Save(ctx, nil, entry)
	if err != nil {
		ls.log.Error("Create learning progress failed", "error", err, "user_id", userID)
		return nil, fmt.Errorf("create learning progress: %w", err)
	}
	return created, nil
}

func (ls *learningProgressService) GetByID(ctx context.Context, id uuid.UUID) (*types.LearningProgress, error) {
	entry, err := ls.progressRepo.GetByID(ctx, nil, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("learning_progress_not_found", fmt.Errorf("learning progress %s not found", id))
		}
		return nil, fmt.Errorf("load learning progress: %w", err)
	}
	return entry, nil
}

func (ls *learningProgressService) ListAll(ctx context.Context) ([]*types.LearningProgress, error) {
	return ls.progressRepo.ListAll(ctx, nil)
}

func (ls *learningProgressService) ListByUserID(ctx context.Context, userID string) ([]*types.LearningProgress, error) {
	return ls.progressRepo.ListByUserID(ctx, nil, userID)
}

func (ls *learningProgressService) Update(ctx context.Context, id uuid.UUID, details *types.LearningProgress) (*types.LearningProgress, error) {
	entry, err := ls.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	entry.Title = details.Title
	entry.Description = details.Description
	entry.TemplateType = details.TemplateType
	entry.Status = details.Status
	entry.TutorialName = details.TutorialName
	entry.ProjectName = details.ProjectName
	entry.SkillsLearned = details.SkillsLearned
	entry.Challenges = details.Challenges
	entry.NextSteps = details.NextSteps
	entry.UpdatedAt = time.Now()

	updated, err := ls.progressRepo.Save(ctx, nil, entry)
	if err != nil {
		return nil, fmt.Errorf("update learning progress: %w", err)
	}
	return updated, nil
}

func (ls *learningProgressService) Delete(ctx context.Context, id uuid.UUID) error {
	entry, err := ls.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := ls.progressRepo.Delete(ctx, nil, entry); err != nil {
		return fmt.Errorf("delete learning progress: %w", err)
	}
	return nil
}

func (ls *learningProgressService) AddComment(ctx context.Context, id uuid.UUID, comment types.Comment) (*types.LearningProgress, error) {
	return ls.engine.AddComment(ctx, id, comment)
}

func (ls *learningProgressService) UpdateComment(ctx context.Context, id uuid.UUID, commentID, content string) (*types.LearningProgress, error) {
	return ls.engine.UpdateComment(ctx, id, commentID, content)
}

func (ls *learningProgressService) DeleteComment(ctx context.Context, id uuid.UUID, commentID, requesterID string) (*types.LearningProgress, error) {
	return ls.engine.DeleteComment(ctx, id, commentID, requesterID)
}

func (ls *learningProgressService) AddLike(ctx context.Context, id uuid.UUID, like types.Like) (*types.LearningProgress, error) {
	return ls.engine.AddLike(ctx, id, like)
}

func (ls *learningProgressService) RemoveLike(ctx context.Context, id uuid.UUID, userID string) (*types.LearningProgress, error) {
	return ls.engine.RemoveLike(ctx, id, userID)
}
