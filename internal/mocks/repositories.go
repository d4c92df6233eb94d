package mocks

import (
	"context"
	"sort"

	"github.com/news-api/internal/apperr"
	"github.com/news-api/internal/models"
)

// MockTopicRepository is a mock implementation of TopicRepository
type MockTopicRepository struct {
	Topics  []models.Topic
	ListErr error
}

func NewMockTopicRepository() *MockTopicRepository {
	return &MockTopicRepository{Topics: []models.Topic{}}
}

func (m *MockTopicRepository) List(ctx context.Context) ([]models.Topic, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Topics, nil
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	Users   []models.User
	ListErr error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{Users: []models.User{}}
}

func (m *MockUserRepository) List(ctx context.Context) ([]models.User, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Users, nil
}

// MockArticleRepository is a mock implementation of ArticleRepository.
// List reproduces the real query's filter/sort semantics in memory so that
// service tests can assert ordering properties.
type MockArticleRepository struct {
	Articles  map[int64]*models.Article
	ListCalls []models.ArticleQuery
	ListErr   error
	GetErr    error
	UpdateErr error
}

func NewMockArticleRepository() *MockArticleRepository {
	return &MockArticleRepository{Articles: make(map[int64]*models.Article)}
}

func (m *MockArticleRepository) List(ctx context.Context, q models.ArticleQuery) ([]models.Article, error) {
	m.ListCalls = append(m.ListCalls, q)
	if m.ListErr != nil {
		return nil, m.ListErr
	}

	result := []models.Article{}
	for _, a := range m.Articles {
		if q.Topic != "" && a.Topic != q.Topic {
			continue
		}
		result = append(result, *a)
	}

	sort.SliceStable(result, func(i, j int) bool {
		less := articleLess(result[i], result[j], q.SortBy)
		if q.Order == "DESC" {
			return !less && !articleEqual(result[i], result[j], q.SortBy)
		}
		return less
	})

	return result, nil
}

func articleLess(a, b models.Article, column string) bool {
	switch column {
	case "author":
		return a.Author < b.Author
	case "title":
		return a.Title < b.Title
	case "article_id":
		return a.ArticleID < b.ArticleID
	case "topic":
		return a.Topic < b.Topic
	case "votes":
		return a.Votes < b.Votes
	case "comment_count":
		return a.CommentCount < b.CommentCount
	default: // created_at
		return a.CreatedAt.Before(b.CreatedAt)
	}
}

func articleEqual(a, b models.Article, column string) bool {
	return !articleLess(a, b, column) && !articleLess(b, a, column)
}

func (m *MockArticleRepository) GetByID(ctx context.Context, id int64) (*models.Article, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	a, ok := m.Articles[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	copied := *a
	return &copied, nil
}

func (m *MockArticleRepository) IncrementVotes(ctx context.Context, id int64, delta float64) (*models.Article, error) {
	if m.UpdateErr != nil {
		return nil, m.UpdateErr
	}
	a, ok := m.Articles[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	a.Votes += int(delta)
	copied := *a
	return &copied, nil
}

func (m *MockArticleRepository) Exists(ctx context.Context, id int64) (bool, error) {
	_, ok := m.Articles[id]
	return ok, nil
}

func (m *MockArticleRepository) Count(ctx context.Context) (int, error) {
	return len(m.Articles), nil
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	Comments    map[int64]*models.Comment
	NextID      int64
	InsertErr   error
	InsertCalls int
}

func NewMockCommentRepository() *MockCommentRepository {
	return &MockCommentRepository{Comments: make(map[int64]*models.Comment), NextID: 1}
}

func (m *MockCommentRepository) ListByArticle(ctx context.Context, articleID int64) ([]models.Comment, error) {
	comments := []models.Comment{}
	for _, c := range m.Comments {
		if c.ArticleID == articleID {
			copied := *c
			copied.ArticleID = 0 // listings omit article_id, as the real SELECT does
			comments = append(comments, copied)
		}
	}
	sort.Slice(comments, func(i, j int) bool { return comments[i].CommentID < comments[j].CommentID })
	return comments, nil
}

func (m *MockCommentRepository) Insert(ctx context.Context, articleID int64, author, body *string) (*models.Comment, error) {
	m.InsertCalls++
	if m.InsertErr != nil {
		return nil, m.InsertErr
	}
	// The real store rejects NULL author or body with a not-null violation,
	// classified to a Bad Request at the boundary.
	if author == nil || body == nil {
		return nil, apperr.ErrBadRequest
	}
	c := &models.Comment{
		CommentID: m.NextID,
		ArticleID: articleID,
		Author:    *author,
		Body:      *body,
	}
	m.Comments[c.CommentID] = c
	m.NextID++
	copied := *c
	return &copied, nil
}

func (m *MockCommentRepository) Delete(ctx context.Context, commentID int64) (*models.Comment, error) {
	c, ok := m.Comments[commentID]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	delete(m.Comments, commentID)
	copied := *c
	return &copied, nil
}

func (m *MockCommentRepository) Count(ctx context.Context) (int, error) {
	return len(m.Comments), nil
}
