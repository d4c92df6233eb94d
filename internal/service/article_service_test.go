package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/news-api/internal/apperr"
	"github.com/news-api/internal/mocks"
	"github.com/news-api/internal/models"
	"github.com/news-api/internal/repository"
	"github.com/news-api/internal/service"
)

func setupArticleService() (*service.Services, *mocks.MockArticleRepository, *mocks.MockCommentRepository) {
	articles := mocks.NewMockArticleRepository()
	comments := mocks.NewMockCommentRepository()
	repos := &repository.Repositories{
		Topic:   mocks.NewMockTopicRepository(),
		User:    mocks.NewMockUserRepository(),
		Article: articles,
		Comment: comments,
	}
	return service.NewServices(repos, zerolog.Nop()), articles, comments
}

func seedArticles(repo *mocks.MockArticleRepository) {
	base := time.Date(2020, 7, 9, 21, 11, 0, 0, time.UTC)
	repo.Articles[1] = &models.Article{
		ArticleID: 1, Title: "Living in the shadow of a great man", Topic: "mitch",
		Author: "butter_bridge", Body: "I find this existence challenging",
		CreatedAt: base, Votes: 100, CommentCount: 11,
	}
	repo.Articles[2] = &models.Article{
		ArticleID: 2, Title: "Sony Vaio; or, The Laptop", Topic: "mitch",
		Author: "icellusedkars", Body: "Call me Mitchell.",
		CreatedAt: base.AddDate(0, 3, 7), Votes: 0, CommentCount: 0,
	}
	repo.Articles[5] = &models.Article{
		ArticleID: 5, Title: "UNCOVERED: catspiracy to bring down democracy", Topic: "cats",
		Author: "rogersop", Body: "Bastet walks amongst us",
		CreatedAt: base.AddDate(0, 0, 25), Votes: 3, CommentCount: 2,
	}
}

func TestListArticles_AcceptsWholeSortWhitelist(t *testing.T) {
	services, repo, _ := setupArticleService()
	seedArticles(repo)
	ctx := context.Background()

	sorts := []string{"author", "title", "article_id", "topic", "created_at", "votes", "comment_count"}
	for _, sortBy := range sorts {
		for _, order := range []string{"ASC", "DESC"} {
			if _, err := services.Article.List(ctx, sortBy, order, ""); err != nil {
				t.Errorf("List(%s, %s) failed: %v", sortBy, order, err)
			}
		}
	}
}

func TestListArticles_RejectsUnknownSortColumn(t *testing.T) {
	services, repo, _ := setupArticleService()
	ctx := context.Background()

	for _, sortBy := range []string{"banana", "votes;DROP TABLE articles", "Votes", "body"} {
		_, err := services.Article.List(ctx, sortBy, "ASC", "")
		if !errors.Is(err, apperr.ErrBadRequest) {
			t.Errorf("List(sort_by=%q) expected Bad Request, got %v", sortBy, err)
		}
	}
	if len(repo.ListCalls) != 0 {
		t.Errorf("Expected no repository calls for rejected queries, got %d", len(repo.ListCalls))
	}
}

func TestListArticles_RejectsUnknownOrder(t *testing.T) {
	services, repo, _ := setupArticleService()
	ctx := context.Background()

	// Matching is case-sensitive: asc and desc are not accepted.
	for _, order := range []string{"sideways", "asc", "desc", "ASC;"} {
		_, err := services.Article.List(ctx, "votes", order, "")
		if !errors.Is(err, apperr.ErrBadRequest) {
			t.Errorf("List(order=%q) expected Bad Request, got %v", order, err)
		}
	}
	if len(repo.ListCalls) != 0 {
		t.Errorf("Expected no repository calls for rejected queries, got %d", len(repo.ListCalls))
	}
}

func TestListArticles_Defaults(t *testing.T) {
	services, repo, _ := setupArticleService()
	seedArticles(repo)

	if _, err := services.Article.List(context.Background(), "", "", ""); err != nil {
		t.Fatalf("List with defaults failed: %v", err)
	}

	if len(repo.ListCalls) != 1 {
		t.Fatalf("Expected 1 repository call, got %d", len(repo.ListCalls))
	}
	q := repo.ListCalls[0]
	if q.SortBy != "created_at" || q.Order != "DESC" {
		t.Errorf("Expected created_at DESC defaults, got %s %s", q.SortBy, q.Order)
	}
}

func TestListArticles_SortedByVotes(t *testing.T) {
	services, repo, _ := setupArticleService()
	seedArticles(repo)
	ctx := context.Background()

	desc, err := services.Article.List(ctx, "votes", "DESC", "")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	for i := 1; i < len(desc); i++ {
		if desc[i-1].Votes < desc[i].Votes {
			t.Errorf("Expected votes descending, got %d before %d", desc[i-1].Votes, desc[i].Votes)
		}
	}

	asc, err := services.Article.List(ctx, "votes", "ASC", "")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	for i := 1; i < len(asc); i++ {
		if asc[i-1].Votes > asc[i].Votes {
			t.Errorf("Expected votes ascending, got %d before %d", asc[i-1].Votes, asc[i].Votes)
		}
	}
}

func TestListArticles_TopicFilter(t *testing.T) {
	services, repo, _ := setupArticleService()
	seedArticles(repo)
	ctx := context.Background()

	cats, err := services.Article.List(ctx, "", "", "cats")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(cats) != 1 {
		t.Fatalf("Expected 1 cats article, got %d", len(cats))
	}
	if cats[0].Topic != "cats" {
		t.Errorf("Expected topic cats, got %s", cats[0].Topic)
	}
}

func TestListArticles_UnknownTopicIsEmptyNotError(t *testing.T) {
	services, repo, _ := setupArticleService()
	seedArticles(repo)

	articles, err := services.Article.List(context.Background(), "", "", "gardening")
	if err != nil {
		t.Fatalf("Expected no error for unknown topic, got %v", err)
	}
	if articles == nil {
		t.Fatal("Expected empty slice, got nil")
	}
	if len(articles) != 0 {
		t.Errorf("Expected 0 articles, got %d", len(articles))
	}
}

func TestGetArticle(t *testing.T) {
	services, repo, _ := setupArticleService()
	seedArticles(repo)
	ctx := context.Background()

	article, err := services.Article.Get(ctx, 1)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if article.CommentCount != 11 {
		t.Errorf("Expected comment_count 11, got %d", article.CommentCount)
	}

	// An article without comments still reports an integer zero.
	article, err = services.Article.Get(ctx, 2)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if article.CommentCount != 0 {
		t.Errorf("Expected comment_count 0, got %d", article.CommentCount)
	}

	_, err = services.Article.Get(ctx, 77777)
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("Expected Not Found for unknown id, got %v", err)
	}
}

func TestIncrementVotes_RejectsInvalidValues(t *testing.T) {
	services, repo, _ := setupArticleService()
	seedArticles(repo)
	ctx := context.Background()

	cases := []struct {
		name     string
		incVotes interface{}
	}{
		{"missing", nil},
		{"zero", float64(0)},
		{"string", "word"},
		{"bool", true},
		{"object", map[string]interface{}{"inc": 1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := services.Article.IncrementVotes(ctx, 3, tc.incVotes)
			if !errors.Is(err, apperr.ErrBadRequest) {
				t.Errorf("Expected Bad Request, got %v", err)
			}
		})
	}

	if repo.Articles[1].Votes != 100 {
		t.Error("Votes must not change on rejected increments")
	}
}

func TestIncrementVotes_AppliesDelta(t *testing.T) {
	services, repo, _ := setupArticleService()
	seedArticles(repo)
	ctx := context.Background()

	article, err := services.Article.IncrementVotes(ctx, 1, float64(4))
	if err != nil {
		t.Fatalf("IncrementVotes failed: %v", err)
	}
	if article.Votes != 104 {
		t.Errorf("Expected 104 votes, got %d", article.Votes)
	}

	// Negative deltas round-trip back to the original value.
	article, err = services.Article.IncrementVotes(ctx, 1, float64(-4))
	if err != nil {
		t.Fatalf("IncrementVotes failed: %v", err)
	}
	if article.Votes != 100 {
		t.Errorf("Expected 100 votes after round-trip, got %d", article.Votes)
	}
}

func TestIncrementVotes_UnknownArticle(t *testing.T) {
	services, _, _ := setupArticleService()

	_, err := services.Article.IncrementVotes(context.Background(), 77777, float64(1))
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("Expected Not Found, got %v", err)
	}
}
