package types

import "time"

// Post is a published article belonging to a category and an author.
type Post struct {
	// ID is the unique identifier of the post.
	ID int `json:"id" db:"id"`

	// Title is the post headline.
	Title string `json:"title" db:"title"`

	// Summary is a short teaser shown in listings.
	Summary string `json:"summary" db:"summary"`

	// Body is the full article body.
	Body string `json:"body,omitempty" db:"body"`

	// Slug is the URL identifier of the post.
	Slug string `json:"slug" db:"slug"`

	// CategoryID references the category the post belongs to.
	CategoryID int `json:"category_id" db:"category_id"`

	// AuthorID references the user that authored the post.
	AuthorID int `json:"author_id" db:"author_id"`

	// CreatedAt is when the post was first published.
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// LastUpdatedAt is when the post was last modified. Listings are
	// ordered by this field, newest first.
	LastUpdatedAt time.Time `json:"last_updated_at" db:"last_updated_at"`
}

// PostSummary is the denormalized shape returned by post listings,
// with author and category resolved to display strings.
type PostSummary struct {
	ID            int       `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	LastUpdatedAt time.Time `json:"last_updated_at"`
	Category      string    `json:"category"`
	Author        string    `json:"author"`
}
