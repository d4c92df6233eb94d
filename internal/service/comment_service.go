package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/news-api/internal/apperr"
	"github.com/news-api/internal/models"
	"github.com/news-api/internal/repository"
)

// commentService implements CommentService
type commentService struct {
	articles repository.ArticleRepository
	comments repository.CommentRepository
	log      zerolog.Logger
}

func newCommentService(articles repository.ArticleRepository, comments repository.CommentRepository, log zerolog.Logger) *commentService {
	return &commentService{
		articles: articles,
		comments: comments,
		log:      log.With().Str("service", "comment").Logger(),
	}
}

// ListByArticle returns the comments of an existing article. The article
// must exist: listing comments of an unknown article is a Not Found, while
// an article without comments yields an empty list.
func (s *commentService) ListByArticle(ctx context.Context, articleID int64) ([]models.Comment, error) {
	exists, err := s.articles.Exists(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.ErrNotFound
	}
	return s.comments.ListByArticle(ctx, articleID)
}

// Add inserts a comment under an article. The existence check must precede
// the insert so a missing article surfaces as Not Found rather than a
// foreign-key failure. Missing username or body is left for the store's
// NOT NULL constraints, classified to Bad Request at the boundary. The two
// statements are intentionally not wrapped in a transaction; an article
// deleted between them surfaces as a foreign-key violation, also a
// Bad Request.
func (s *commentService) Add(ctx context.Context, articleID int64, input models.CommentInput) (*models.Comment, error) {
	exists, err := s.articles.Exists(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.ErrNotFound
	}

	comment, err := s.comments.Insert(ctx, articleID, input.Username, input.Body)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Int64("article_id", articleID).
		Int64("comment_id", comment.CommentID).
		Msg("Comment created")
	return comment, nil
}

// Remove deletes a comment by id. Deleting an unknown comment is a
// Not Found, so a second delete of the same id fails the same way.
func (s *commentService) Remove(ctx context.Context, commentID int64) error {
	comment, err := s.comments.Delete(ctx, commentID)
	if err != nil {
		return err
	}

	s.log.Info().
		Int64("comment_id", comment.CommentID).
		Int64("article_id", comment.ArticleID).
		Msg("Comment deleted")
	return nil
}
