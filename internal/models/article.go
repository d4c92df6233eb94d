package models

import (
	"time"
)

// Article is the primary content entity. CommentCount is derived at query
// time from the comments table and is never stored.
type Article struct {
	ArticleID    int64     `json:"article_id" db:"article_id"`
	Title        string    `json:"title" db:"title"`
	Topic        string    `json:"topic" db:"topic"`
	Author       string    `json:"author" db:"author"`
	Body         string    `json:"body" db:"body"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	Votes        int       `json:"votes" db:"votes"`
	CommentCount int       `json:"comment_count" db:"comment_count"`
}

// ValidSortColumns defines the columns an article listing may be ordered by.
var ValidSortColumns = map[string]bool{
	"author":        true,
	"title":         true,
	"article_id":    true,
	"topic":         true,
	"created_at":    true,
	"votes":         true,
	"comment_count": true,
}

// ValidSortOrders defines allowed sort directions. Matching is case-sensitive.
var ValidSortOrders = map[string]bool{
	"ASC":  true,
	"DESC": true,
}

// ArticleQuery is a validated listing specification. It is only ever
// constructed by the article service after whitelist checks, so the
// repository may interpolate SortBy and Order into SQL directly.
type ArticleQuery struct {
	SortBy string
	Order  string
	Topic  string // empty means no topic filter
}
