package articles

import (
	"context"

	"github.com/elseff/articles-api-sub000/internal/shared"
)

// RepositoryPort defines data access methods for articles.
type RepositoryPort interface {
	Create(ctx context.Context, article Article) (*Article, error)
	GetByID(ctx context.Context, id int64) (*Article, error)
	List(ctx context.Context) ([]Article, error)
	Update(ctx context.Context, article Article) (*Article, error)
	Delete(ctx context.Context, id int64) error
}

// Service handles article business logic. Mutations are guarded: the
// caller must be the author or an admin.
type Service struct {
	repo      RepositoryPort
	principal shared.PrincipalResolver
}

// NewService builds a Service instance.
func NewService(repo RepositoryPort, resolver shared.PrincipalResolver) *Service {
	return &Service{repo: repo, principal: resolver}
}

// Get returns an article by id. Reads are not scoped to the caller.
func (s *Service) Get(ctx context.Context, id int64) (*Article, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns all articles.
func (s *Service) List(ctx context.Context) ([]Article, error) {
	return s.repo.List(ctx)
}

// Create stores a new article authored by the current principal. The
// author is never taken from client input.
func (s *Service) Create(ctx context.Context, req CreateArticleRequest) (*Article, error) {
	principal, err := s.principal.Current(ctx)
	if err != nil {
		return nil, err
	}
	article := Article{
		Title:       req.Title,
		Description: req.Description,
		AuthorID:    principal.UserID,
		AuthorEmail: principal.Email,
	}
	return s.repo.Create(ctx, article)
}

// Update applies a partial update. Existence is checked before
// authorization so a missing id never reports forbidden. A patch with no
// fields is a successful no-op and does not mark the article edited.
func (s *Service) Update(ctx context.Context, id int64, req UpdateArticleRequest) (*Article, error) {
	article, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	principal, err := s.principal.Current(ctx)
	if err != nil {
		return nil, err
	}
	if err := shared.Authorize(principal, article); err != nil {
		return nil, err
	}
	if req.Empty() {
		return article, nil
	}
	if req.Title != nil {
		article.Title = *req.Title
	}
	if req.Description != nil {
		article.Description = *req.Description
	}
	article.Edited = true
	return s.repo.Update(ctx, *article)
}

// Delete removes an article after the ownership check passes.
func (s *Service) Delete(ctx context.Context, id int64) error {
	article, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	principal, err := s.principal.Current(ctx)
	if err != nil {
		return err
	}
	if err := shared.Authorize(principal, article); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
