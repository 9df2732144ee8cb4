package users

import (
	"context"

	"github.com/elseff/articles-api-sub000/internal/shared"
)

// RepositoryPort defines data access methods for users.
type RepositoryPort interface {
	Create(ctx context.Context, user User) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, user User) (*User, error)
	Delete(ctx context.Context, id int64) error
}

// Service handles user business logic. Mutations are guarded: the caller
// must be the account owner or an admin.
type Service struct {
	repo      RepositoryPort
	principal shared.PrincipalResolver
}

// NewService builds a Service instance.
func NewService(repo RepositoryPort, resolver shared.PrincipalResolver) *Service {
	return &Service{repo: repo, principal: resolver}
}

// Get returns a user by id. Reads are not scoped to the caller.
func (s *Service) Get(ctx context.Context, id int64) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns all users.
func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

// Update applies a partial profile update. Existence is checked before
// authorization so a missing id never reports forbidden. Fields left nil
// in the request keep their stored value; a patch with no fields is a
// successful no-op.
func (s *Service) Update(ctx context.Context, id int64, req UpdateUserRequest) (*User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	principal, err := s.principal.Current(ctx)
	if err != nil {
		return nil, err
	}
	if err := shared.Authorize(principal, user); err != nil {
		return nil, err
	}
	if req.Empty() {
		return user, nil
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Country != nil {
		user.Country = *req.Country
	}
	return s.repo.Update(ctx, *user)
}

// Delete removes an account after the ownership check passes.
func (s *Service) Delete(ctx context.Context, id int64) error {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	principal, err := s.principal.Current(ctx)
	if err != nil {
		return err
	}
	if err := shared.Authorize(principal, user); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
