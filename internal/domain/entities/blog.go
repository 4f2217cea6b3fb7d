package entities

import "time"

type BlogStatus string

const (
	BlogStatusDraft     BlogStatus = "draft"
	BlogStatusPublished BlogStatus = "published"
)

type BlogPost struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	CoverImageURL string     `json:"cover_image_url"`
	Excerpt       string     `json:"excerpt"`
	Content       string     `json:"content"`
	Status        BlogStatus `json:"status"`
	Tags          []string   `json:"tags"`
	CategoryID    string     `json:"category_id,omitempty"`
	Views         int        `json:"views"`
	AllowComments bool       `json:"allow_comments"`
	PublishedAt   *time.Time `json:"published_at"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
