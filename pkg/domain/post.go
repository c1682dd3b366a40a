package domain

import "time"

// Category groups blog posts.
type Category struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Post is a blog article.
type Post struct {
	ID int64 `json:"id"`

	Title   string `json:"title"`
	Slug    string `json:"slug"`
	Excerpt string `json:"excerpt,omitempty"`
	// Content holds sanitized HTML.
	Content       string `json:"content"`
	CoverImageURL string `json:"coverImageUrl,omitempty"`
	// CategoryID is zero when the post is uncategorized.
	CategoryID int64  `json:"categoryId,omitempty"`
	Author     string `json:"author,omitempty"`

	// Published controls public visibility; PublishedAt is set the first time
	// a post is published.
	Published   bool      `json:"published"`
	PublishedAt time.Time `json:"publishedAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PostFilter narrows post listings. Zero values disable a filter.
type PostFilter struct {
	PublishedOnly bool
	CategorySlug  string
	// Limit caps the number of returned posts; zero means no limit.
	Limit uint
}
