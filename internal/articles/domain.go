package articles

import "time"

// Article is a blog post written by one author, filed under one category.
type Article struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Slug       string    `json:"slug"`
	Body       string    `json:"body"`
	CategoryID string    `json:"category_id"`
	AuthorID   string    `json:"author_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ListFilters narrows and pages article listings.
type ListFilters struct {
	// AuthorID restricts results to one author; empty means all authors.
	AuthorID string
	Search   string
	Page     int
	PerPage  int
}
