package repository

import (
	"context"

	"github.com/news-api/internal/database"
	"github.com/news-api/internal/models"
)

// TopicRepository defines the interface for topic data operations
type TopicRepository interface {
	List(ctx context.Context) ([]models.Topic, error)
}

// UserRepository defines the interface for user data operations
type UserRepository interface {
	List(ctx context.Context) ([]models.User, error)
}

// ArticleRepository defines the interface for article data operations
type ArticleRepository interface {
	// List executes the listing described by a validated query spec.
	List(ctx context.Context, q models.ArticleQuery) ([]models.Article, error)
	GetByID(ctx context.Context, id int64) (*models.Article, error)
	IncrementVotes(ctx context.Context, id int64, delta float64) (*models.Article, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int, error)
}

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	ListByArticle(ctx context.Context, articleID int64) ([]models.Comment, error)
	// Insert passes author and body through as-is; nil becomes SQL NULL and
	// is rejected by the schema's NOT NULL constraints.
	Insert(ctx context.Context, articleID int64, author, body *string) (*models.Comment, error)
	Delete(ctx context.Context, commentID int64) (*models.Comment, error)
	Count(ctx context.Context) (int, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Topic   TopicRepository
	User    UserRepository
	Article ArticleRepository
	Comment CommentRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Topic:   NewTopicRepo(db),
		User:    NewUserRepo(db),
		Article: NewArticleRepo(db),
		Comment: NewCommentRepo(db),
	}
}
