package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Learning progress template discriminators. The template type gates which
// fields are required at creation time.
const (
	TemplateGeneral  = "general"
	TemplateTutorial = "tutorial"
	TemplateProject  = "project"
)

type LearningProgress struct {
	ID            uuid.UUID                    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        string                       `gorm:"column:user_id;not null;index" json:"user_id"`
	UserName      string                       `gorm:"column:user_name" json:"user_name"`
	Title         string                       `gorm:"column:title" json:"title"`
	Description   string                       `gorm:"column:description" json:"description"`
	TemplateType  string                       `gorm:"column:template_type;not null" json:"template_type"`
	Status        string                       `gorm:"column:status" json:"status"`
	TutorialName  string                       `gorm:"column:tutorial_name" json:"tutorial_name"`
	ProjectName   string                       `gorm:"column:project_name" json:"project_name"`
	SkillsLearned string                       `gorm:"column:skills_learned" json:"skills_learned"`
	Challenges    string                       `gorm:"column:challenges" json:"challenges"`
	NextSteps     string                       `gorm:"column:next_steps" json:"next_steps"`
	CreatedAt     time.Time                    `gorm:"not null;index;autoCreateTime:false" json:"created_at"`
	UpdatedAt     time.Time                    `gorm:"not null;autoUpdateTime:false" json:"updated_at"`
	Likes         datatypes.JSONSlice[Like]    `gorm:"column:likes;type:jsonb" json:"likes"`
	Comments      datatypes.JSONSlice[Comment] `gorm:"column:comments;type:jsonb" json:"comments"`
}

func (LearningProgress) TableName() string { return "learning_progress" }

func (p *LearningProgress) GetUserID() string              { return p.UserID }
func (p *LearningProgress) GetComments() []Comment         { return p.Comments }
func (p *LearningProgress) SetComments(comments []Comment) { p.Comments = comments }
func (p *LearningProgress) GetLikes() []Like               { return p.Likes }
func (p *LearningProgress) SetLikes(likes []Like)          { p.Likes = likes }
