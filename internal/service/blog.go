package service

import (
	"context"
	"database/sql"
	"errors"

	"legalsite/internal/model"
	"legalsite/internal/repository"
)

var (
	ErrIDRequired = errors.New("id is required")
	ErrNotFound   = errors.New("article not found")
)

// BlogService defines the read-only use cases for published articles.
type BlogService interface {
	// List returns all articles, newest publication first. An empty
	// slice is a valid result.
	List(ctx context.Context) ([]model.Article, error)

	// Get returns a single article by its id, or ErrNotFound.
	Get(ctx context.Context, id string) (*model.Article, error)
}

type blogService struct {
	repo repository.ArticleRepository
}

// NewBlogService constructs a new BlogService.
func NewBlogService(repo repository.ArticleRepository) BlogService {
	return &blogService{repo: repo}
}

func (s *blogService) List(ctx context.Context) ([]model.Article, error) {
	return s.repo.List(ctx)
}

// Get returns an article by id, translating the driver's empty-result
// sentinel to ErrNotFound so handlers never see sql internals.
func (s *blogService) Get(ctx context.Context, id string) (*model.Article, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}
