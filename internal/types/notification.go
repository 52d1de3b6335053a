package types

import (
	"time"

	"github.com/google/uuid"
)

const (
	NotificationKindLike    = "like"
	NotificationKindComment = "comment"
)

// Notification is delivered to the owner of a content aggregate when someone
// else comments on or likes it.
type Notification struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      string    `gorm:"column:user_id;not null;index" json:"user_id"`
	SenderID    string    `gorm:"column:sender_id;not null" json:"sender_id"`
	ContentID   uuid.UUID `gorm:"type:uuid;column:content_id;not null" json:"content_id"`
	ContentType string    `gorm:"column:content_type;not null" json:"content_type"`
	Kind        string    `gorm:"column:kind;not null" json:"kind"`
	Message     string    `gorm:"column:message" json:"message"`
	Read        bool      `gorm:"column:read;not null;default:false" json:"read"`
	CreatedAt   time.Time `gorm:"not null;index;autoCreateTime:false" json:"created_at"`
}

func (Notification) TableName() string { return "notification" }
