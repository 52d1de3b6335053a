package types

import "time"

// UnknownUserName is substituted whenever a display name is missing at
// creation time.
const UnknownUserName = "Unknown User"

// Comment is embedded in its parent aggregate's jsonb column; it is never
// addressable outside the parent.
type Comment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Like is embedded alongside comments. At most one per (aggregate, user).
type Like struct {
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Social is the capability every content aggregate exposes to the
// interaction engine: an owner plus embedded comment and like collections.
type Social interface {
	GetUserID() string
	GetComments() []Comment
	SetComments(comments []Comment)
	GetLikes() []Like
	SetLikes(likes []Like)
}
