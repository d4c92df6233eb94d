package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/news-api/internal/models"
	"github.com/news-api/internal/repository"
)

// topicService implements TopicService. Topics are immutable reference
// data, so the service is a straight read-through.
type topicService struct {
	topics repository.TopicRepository
	log    zerolog.Logger
}

func newTopicService(topics repository.TopicRepository, log zerolog.Logger) *topicService {
	return &topicService{topics: topics, log: log.With().Str("service", "topic").Logger()}
}

func (s *topicService) List(ctx context.Context) ([]models.Topic, error) {
	return s.topics.List(ctx)
}

// userService implements UserService.
type userService struct {
	users repository.UserRepository
	log   zerolog.Logger
}

func newUserService(users repository.UserRepository, log zerolog.Logger) *userService {
	return &userService{users: users, log: log.With().Str("service", "user").Logger()}
}

func (s *userService) List(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}
