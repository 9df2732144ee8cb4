package articles

import "time"

// Article is an authored post. AuthorID is immutable after creation;
// AuthorEmail is denormalized from the users table on every fetch so the
// ownership check compares against current data.
type Article struct {
	ID          int64
	Title       string
	Description string
	AuthorID    int64
	AuthorEmail string
	Edited      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OwnerEmail identifies the author as the owner of the article.
func (a Article) OwnerEmail() string { return a.AuthorEmail }
