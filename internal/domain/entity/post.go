package entity

import "time"

// Post is a blog entry. AuthorID is nil for posts whose author was removed.
type Post struct {
	ID        int64
	AuthorID  *int64
	Title     string
	Body      string
	Published bool
	CreatedAt time.Time
}
