package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/news-api/internal/models"
	"github.com/news-api/internal/repository"
)

// TopicService defines the interface for topic operations
type TopicService interface {
	List(ctx context.Context) ([]models.Topic, error)
}

// UserService defines the interface for user operations
type UserService interface {
	List(ctx context.Context) ([]models.User, error)
}

// ArticleService defines the interface for article operations
type ArticleService interface {
	List(ctx context.Context, sortBy, order, topic string) ([]models.Article, error)
	Get(ctx context.Context, articleID int64) (*models.Article, error)
	IncrementVotes(ctx context.Context, articleID int64, incVotes interface{}) (*models.Article, error)
	Counts(ctx context.Context) (articles, comments int, err error)
}

// CommentService defines the interface for comment operations
type CommentService interface {
	ListByArticle(ctx context.Context, articleID int64) ([]models.Comment, error)
	Add(ctx context.Context, articleID int64, input models.CommentInput) (*models.Comment, error)
	Remove(ctx context.Context, commentID int64) error
}

// Services holds all service interfaces
type Services struct {
	Topic   TopicService
	User    UserService
	Article ArticleService
	Comment CommentService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, log zerolog.Logger) *Services {
	return &Services{
		Topic:   newTopicService(repos.Topic, log),
		User:    newUserService(repos.User, log),
		Article: newArticleService(repos.Article, repos.Comment, log),
		Comment: newCommentService(repos.Article, repos.Comment, log),
	}
}
