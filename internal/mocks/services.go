package mocks

import (
	"context"

	"github.com/news-api/internal/apperr"
	"github.com/news-api/internal/models"
)

// MockTopicService is a mock implementation of service.TopicService
type MockTopicService struct {
	Topics  []models.Topic
	ListErr error
}

func NewMockTopicService() *MockTopicService {
	return &MockTopicService{Topics: []models.Topic{}}
}

func (m *MockTopicService) List(ctx context.Context) ([]models.Topic, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Topics, nil
}

// MockUserService is a mock implementation of service.UserService
type MockUserService struct {
	Users   []models.User
	ListErr error
}

func NewMockUserService() *MockUserService {
	return &MockUserService{Users: []models.User{}}
}

func (m *MockUserService) List(ctx context.Context) ([]models.User, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Users, nil
}

// MockArticleService is a mock implementation of service.ArticleService
type MockArticleService struct {
	Articles      map[int64]*models.Article
	ListResult    []models.Article
	ListErr       error
	LastSortBy    string
	LastOrder     string
	LastTopic     string
	ArticleCount  int
	CommentCount  int
	LastIncVotes  interface{}
	IncrementErr  error
	IncrementUsed bool
}

func NewMockArticleService() *MockArticleService {
	return &MockArticleService{Articles: make(map[int64]*models.Article)}
}

func (m *MockArticleService) List(ctx context.Context, sortBy, order, topic string) ([]models.Article, error) {
	m.LastSortBy, m.LastOrder, m.LastTopic = sortBy, order, topic
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	if m.ListResult == nil {
		return []models.Article{}, nil
	}
	return m.ListResult, nil
}

func (m *MockArticleService) Get(ctx context.Context, articleID int64) (*models.Article, error) {
	a, ok := m.Articles[articleID]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return a, nil
}

func (m *MockArticleService) IncrementVotes(ctx context.Context, articleID int64, incVotes interface{}) (*models.Article, error) {
	m.IncrementUsed = true
	m.LastIncVotes = incVotes
	if m.IncrementErr != nil {
		return nil, m.IncrementErr
	}
	delta, ok := incVotes.(float64)
	if !ok || delta == 0 {
		return nil, apperr.ErrBadRequest
	}
	a, ok := m.Articles[articleID]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	a.Votes += int(delta)
	return a, nil
}

func (m *MockArticleService) Counts(ctx context.Context) (int, int, error) {
	return m.ArticleCount, m.CommentCount, nil
}

// MockCommentService is a mock implementation of service.CommentService
type MockCommentService struct {
	Comments   map[int64]*models.Comment
	ArticleIDs map[int64]bool
	NextID     int64
	AddErr     error
}

func NewMockCommentService() *MockCommentService {
	return &MockCommentService{
		Comments:   make(map[int64]*models.Comment),
		ArticleIDs: make(map[int64]bool),
		NextID:     1,
	}
}

func (m *MockCommentService) ListByArticle(ctx context.Context, articleID int64) ([]models.Comment, error) {
	if !m.ArticleIDs[articleID] {
		return nil, apperr.ErrNotFound
	}
	comments := []models.Comment{}
	for _, c := range m.Comments {
		if c.ArticleID == articleID {
			copied := *c
			copied.ArticleID = 0
			comments = append(comments, copied)
		}
	}
	return comments, nil
}

func (m *MockCommentService) Add(ctx context.Context, articleID int64, input models.CommentInput) (*models.Comment, error) {
	if m.AddErr != nil {
		return nil, m.AddErr
	}
	if !m.ArticleIDs[articleID] {
		return nil, apperr.ErrNotFound
	}
	if input.Username == nil || input.Body == nil {
		return nil, apperr.ErrBadRequest
	}
	c := &models.Comment{
		CommentID: m.NextID,
		ArticleID: articleID,
		Author:    *input.Username,
		Body:      *input.Body,
	}
	m.Comments[c.CommentID] = c
	m.NextID++
	return c, nil
}

func (m *MockCommentService) Remove(ctx context.Context, commentID int64) error {
	if _, ok := m.Comments[commentID]; !ok {
		return apperr.ErrNotFound
	}
	delete(m.Comments, commentID)
	return nil
}
