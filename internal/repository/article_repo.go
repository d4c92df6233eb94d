package repository

import (
	"context"
	"fmt"

	"github.com/news-api/internal/apperr"
	"github.com/news-api/internal/database"
	"github.com/news-api/internal/models"
)

// articleRepo is the concrete implementation of ArticleRepository
type articleRepo struct {
	db *database.DB
}

// NewArticleRepo creates a new article repository
func NewArticleRepo(db *database.DB) ArticleRepository {
	return &articleRepo{db: db}
}

const articleColumns = `articles.article_id, articles.title, articles.topic,
	articles.author, articles.body, articles.created_at, articles.votes`

// List retrieves articles with their aggregated comment counts. Articles
// without comments still appear with a count of 0 (left join). SortBy and
// Order come from a validated ArticleQuery and are interpolated directly;
// the topic filter is parameterized.
func (r *articleRepo) List(ctx context.Context, q models.ArticleQuery) ([]models.Article, error) {
	query := fmt.Sprintf(`
		SELECT %s, COUNT(comments.comment_id) AS comment_count
		FROM articles
		LEFT JOIN comments ON articles.article_id = comments.article_id`, articleColumns)

	args := []interface{}{}
	if q.Topic != "" {
		query += ` WHERE articles.topic = $1`
		args = append(args, q.Topic)
	}
	query += fmt.Sprintf(` GROUP BY articles.article_id ORDER BY %s %s`, q.SortBy, q.Order)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperr.FromStore(err)
	}
	defer rows.Close()

	articles := []models.Article{}
	for rows.Next() {
		var a models.Article
		err := rows.Scan(
			&a.ArticleID, &a.Title, &a.Topic, &a.Author, &a.Body,
			&a.CreatedAt, &a.Votes, &a.CommentCount,
		)
		if err != nil {
			return nil, apperr.FromStore(err)
		}
		articles = append(articles, a)
	}
	return articles, apperr.FromStore(rows.Err())
}

// GetByID retrieves a single article with its aggregated comment count
func (r *articleRepo) GetByID(ctx context.Context, id int64) (*models.Article, error) {
	query := fmt.Sprintf(`
		SELECT %s, COUNT(comments.comment_id) AS comment_count
		FROM articles
		LEFT JOIN comments ON articles.article_id = comments.article_id
		WHERE articles.article_id = $1
		GROUP BY articles.article_id`, articleColumns)

	var a models.Article
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&a.ArticleID, &a.Title, &a.Topic, &a.Author, &a.Body,
		&a.CreatedAt, &a.Votes, &a.CommentCount,
	)
	if err != nil {
		return nil, apperr.FromStore(err)
	}
	return &a, nil
}

// IncrementVotes applies a relative vote delta and returns the updated row.
// The relative SET keeps concurrent increments safe without locking.
func (r *articleRepo) IncrementVotes(ctx context.Context, id int64, delta float64) (*models.Article, error) {
	query := `
		UPDATE articles SET votes = votes + $1
		WHERE article_id = $2
		RETURNING article_id, title, topic, author, body, created_at, votes`

	var a models.Article
	err := r.db.QueryRowContext(ctx, query, delta, id).Scan(
		&a.ArticleID, &a.Title, &a.Topic, &a.Author, &a.Body,
		&a.CreatedAt, &a.Votes,
	)
	if err != nil {
		return nil, apperr.FromStore(err)
	}
	return &a, nil
}

// Exists checks if an article with the given ID exists
func (r *articleRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM articles WHERE article_id = $1)", id,
	).Scan(&exists)
	if err != nil {
		return false, apperr.FromStore(err)
	}
	return exists, nil
}

// Count returns the total number of articles
func (r *articleRepo) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM articles").Scan(&count); err != nil {
		return 0, apperr.FromStore(err)
	}
	return count, nil
}
