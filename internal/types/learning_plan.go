package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type LearningPlan struct {
	ID          uuid.UUID                    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      string                       `gorm:"column:user_id;not null;index" json:"user_id"`
	UserName    string                       `gorm:"column:user_name" json:"user_name"`
	Title       string                       `gorm:"column:title" json:"title"`
	Description string                       `gorm:"column:description" json:"description"`
	Topics      string                       `gorm:"column:topics" json:"topics"`
	Resources   string                       `gorm:"column:resources" json:"resources"`
	CreatedAt   time.Time                    `gorm:"not null;index;autoCreateTime:false" json:"created_at"`
	UpdatedAt   time.Time                    `gorm:"not null;autoUpdateTime:false" json:"updated_at"`
	Likes       datatypes.JSONSlice[Like]    `gorm:"column:likes;type:jsonb" json:"likes"`
	Comments    datatypes.JSONSlice[Comment] `gorm:"column:comments;type:jsonb" json:"comments"`
}

func (LearningPlan) TableName() string { return "learning_plan" }

func (p *LearningPlan) GetUserID() string              { return p.UserID }
func (p *LearningPlan) GetComments() []Comment         { return p.Comments }
func (p *LearningPlan) SetComments(comments []Comment) { p.Comments = comments }
func (p *LearningPlan) GetLikes() []Like               { return p.Likes }
func (p *LearningPlan) SetLikes(likes []Like)          { p.Likes = likes }
