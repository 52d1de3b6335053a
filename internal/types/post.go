package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Post is a skill-sharing post. Comments and likes live in jsonb columns so
// the whole aggregate is written as one unit; timestamps are owned by the
// service layer, not by gorm.
type Post struct {
	ID          uuid.UUID                      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      string                         `gorm:"column:user_id;not null;index" json:"user_id"`
	UserName    string                         `gorm:"column:user_name" json:"user_name"`
	Description string                         `gorm:"column:description" json:"description"`
	MediaURLs   datatypes.JSONSlice[string]    `gorm:"column:media_urls;type:jsonb" json:"media_urls"`
	CreatedAt   time.Time                      `gorm:"not null;index;autoCreateTime:false" json:"created_at"`
	UpdatedAt   time.Time                      `gorm:"not null;autoUpdateTime:false" json:"updated_at"`
	Likes       datatypes.JSONSlice[Like]      `gorm:"column:likes;type:jsonb" json:"likes"`
	Comments    datatypes.JSONSlice[Comment]   `gorm:"column:comments;type:jsonb" json:"comments"`
}

func (Post) TableName() string { return "post" }

func (p *Post) GetUserID() string               { return p.UserID }
func (p *Post) GetComments() []Comment          { return p.Comments }
func (p *Post) SetComments(comments []Comment)  { p.Comments = comments }
func (p *Post) GetLikes() []Like                { return p.Likes }
func (p *Post) SetLikes(likes []Like)           { p.Likes = likes }
