package entities

import "time"

type CommentReply struct {
	Name      string    `json:"name"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type Comment struct {
	ID         string         `json:"id"`
	PostID     string         `json:"post_id"`
	Name       string         `json:"name"`
	Email      string         `json:"email"`
	Content    string         `json:"content"`
	IsApproved bool           `json:"is_approved"`
	Replies    []CommentReply `json:"replies"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`

	// Populated on admin reads only.
	PostTitle string `json:"post_title,omitempty"`
	PostSlug  string `json:"post_slug,omitempty"`
}
