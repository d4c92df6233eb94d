package repository

import (
	"context"

	"github.com/news-api/internal/apperr"
	"github.com/news-api/internal/database"
	"github.com/news-api/internal/models"
)

// commentRepo is the concrete implementation of CommentRepository
type commentRepo struct {
	db *database.DB
}

// NewCommentRepo creates a new comment repository
func NewCommentRepo(db *database.DB) CommentRepository {
	return &commentRepo{db: db}
}

// ListByArticle retrieves all comments for an article. An article with no
// comments yields an empty slice, not an error.
func (r *commentRepo) ListByArticle(ctx context.Context, articleID int64) ([]models.Comment, error) {
	query := `
		SELECT comment_id, votes, created_at, author, body
		FROM comments
		WHERE article_id = $1`

	rows, err := r.db.QueryContext(ctx, query, articleID)
	if err != nil {
		return nil, apperr.FromStore(err)
	}
	defer rows.Close()

	comments := []models.Comment{}
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.CommentID, &c.Votes, &c.CreatedAt, &c.Author, &c.Body); err != nil {
			return nil, apperr.FromStore(err)
		}
		comments = append(comments, c)
	}
	return comments, apperr.FromStore(rows.Err())
}

// Insert creates a comment and returns the full inserted row including
// generated fields. Missing author or body reaches the store as NULL and
// fails its NOT NULL constraints, which the boundary classifies to a
// Bad Request.
func (r *commentRepo) Insert(ctx context.Context, articleID int64, author, body *string) (*models.Comment, error) {
	query := `
		INSERT INTO comments (body, author, article_id)
		VALUES ($1, $2, $3)
		RETURNING comment_id, article_id, author, votes, created_at, body`

	var c models.Comment
	err := r.db.QueryRowContext(ctx, query, body, author, articleID).Scan(
		&c.CommentID, &c.ArticleID, &c.Author, &c.Votes, &c.CreatedAt, &c.Body,
	)
	if err != nil {
		return nil, apperr.FromStore(err)
	}
	return &c, nil
}

// Delete removes a comment and returns the deleted row. Zero rows affected
// means the comment did not exist.
func (r *commentRepo) Delete(ctx context.Context, commentID int64) (*models.Comment, error) {
	query := `
		DELETE FROM comments
		WHERE comment_id = $1
		RETURNING comment_id, article_id, author, votes, created_at, body`

	var c models.Comment
	err := r.db.QueryRowContext(ctx, query, commentID).Scan(
		&c.CommentID, &c.ArticleID, &c.Author, &c.Votes, &c.CreatedAt, &c.Body,
	)
	if err != nil {
		return nil, apperr.FromStore(err)
	}
	return &c, nil
}

// Count returns the total number of comments
func (r *commentRepo) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM comments").Scan(&count); err != nil {
		return 0, apperr.FromStore(err)
	}
	return count, nil
}
