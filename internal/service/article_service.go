package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/news-api/internal/apperr"
	"github.com/news-api/internal/models"
	"github.com/news-api/internal/repository"
)

// Listing defaults applied when the caller omits the query parameters.
const (
	defaultSortBy = "created_at"
	defaultOrder  = "DESC"
)

// articleService implements ArticleService
type articleService struct {
	articles repository.ArticleRepository
	comments repository.CommentRepository
	log      zerolog.Logger
}

func newArticleService(articles repository.ArticleRepository, comments repository.CommentRepository, log zerolog.Logger) *articleService {
	return &articleService{
		articles: articles,
		comments: comments,
		log:      log.With().Str("service", "article").Logger(),
	}
}

// buildListQuery turns untrusted sort/order/topic strings into a validated
// query spec, or rejects before any database access. Order and sort column
// are compared case-sensitively against fixed whitelists.
func buildListQuery(sortBy, order, topic string) (models.ArticleQuery, error) {
	if sortBy == "" {
		sortBy = defaultSortBy
	}
	if order == "" {
		order = defaultOrder
	}

	if !models.ValidSortOrders[order] {
		return models.ArticleQuery{}, apperr.ErrBadRequest
	}
	if !models.ValidSortColumns[sortBy] {
		return models.ArticleQuery{}, apperr.ErrBadRequest
	}

	return models.ArticleQuery{SortBy: sortBy, Order: order, Topic: topic}, nil
}

// List returns articles ordered by the requested column and direction,
// optionally restricted to a topic. An unknown topic yields an empty list,
// not an error.
func (s *articleService) List(ctx context.Context, sortBy, order, topic string) ([]models.Article, error) {
	q, err := buildListQuery(sortBy, order, topic)
	if err != nil {
		s.log.Debug().Str("sort_by", sortBy).Str("order", order).Msg("Rejected article listing query")
		return nil, err
	}
	return s.articles.List(ctx, q)
}

// Get returns a single article with its aggregated comment count, or a
// Not Found error when the id matches no row.
func (s *articleService) Get(ctx context.Context, articleID int64) (*models.Article, error) {
	return s.articles.GetByID(ctx, articleID)
}

// validateVoteIncrement checks the raw inc_votes value from a request body.
// Any nonzero JSON number is accepted, negatives and fractions included;
// missing, zero, or non-numeric values are rejected before any I/O.
func validateVoteIncrement(incVotes interface{}) (float64, error) {
	delta, ok := incVotes.(float64)
	if !ok || delta == 0 {
		return 0, apperr.ErrBadRequest
	}
	return delta, nil
}

// IncrementVotes applies a relative vote delta to an article and returns
// the updated row.
func (s *articleService) IncrementVotes(ctx context.Context, articleID int64, incVotes interface{}) (*models.Article, error) {
	delta, err := validateVoteIncrement(incVotes)
	if err != nil {
		s.log.Debug().Int64("article_id", articleID).Interface("inc_votes", incVotes).Msg("Rejected vote increment")
		return nil, err
	}
	return s.articles.IncrementVotes(ctx, articleID, delta)
}

// Counts reports table sizes for the metrics endpoint.
func (s *articleService) Counts(ctx context.Context) (int, int, error) {
	articles, err := s.articles.Count(ctx)
	if err != nil {
		return 0, 0, err
	}
	comments, err := s.comments.Count(ctx)
	if err != nil {
		return 0, 0, err
	}
	return articles, comments, nil
}
