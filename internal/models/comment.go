package models

import (
	"time"
)

// Comment is a child entity of an article, authored by a user.
type Comment struct {
	CommentID int64     `json:"comment_id" db:"comment_id"`
	ArticleID int64     `json:"article_id,omitempty" db:"article_id"`
	Author    string    `json:"author" db:"author"`
	Votes     int       `json:"votes" db:"votes"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	Body      string    `json:"body" db:"body"`
}

// CommentInput carries the caller-supplied fields of a new comment. Fields
// are pointers so that absent values reach the store as SQL NULL and fail
// its NOT NULL constraints instead of being checked ahead of time.
type CommentInput struct {
	Username *string `json:"username"`
	Body     *string `json:"body"`
}
