package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/elseff/articles-api-sub000/internal/shared"
	"github.com/elseff/articles-api-sub000/internal/users"
)

// UserStore is the slice of user persistence the auth flows need.
type UserStore interface {
	Create(ctx context.Context, user users.User) (*users.User, error)
	GetByID(ctx context.Context, id int64) (*users.User, error)
	GetByEmail(ctx context.Context, email string) (*users.User, error)
}

// Service wraps registration and authentication business rules.
type Service struct {
	users  UserStore
	tokens *TokenManager
	store  *RefreshStore
}

// NewService constructs a new Service.
func NewService(store UserStore, tokens *TokenManager, refresh *RefreshStore) *Service {
	return &Service{users: store, tokens: tokens, store: refresh}
}

// Register creates a new account with the USER role and issues tokens.
// A duplicate email surfaces as shared.ErrDuplicateEmail.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*users.User, *TokenPair, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}
	user, err := s.users.Create(ctx, users.User{
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Country:      req.Country,
		PasswordHash: string(hash),
		Roles:        []shared.Role{shared.RoleUser},
	})
	if err != nil {
		return nil, nil, err
	}
	pair, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Login validates credentials and issues tokens. Lookup failures and
// password mismatches are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*users.User, *TokenPair, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, nil, shared.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, nil, shared.ErrInvalidCredentials
	}
	pair, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Refresh exchanges a live refresh token for a new pair. The old token id
// is consumed, so replaying it fails. Roles are reloaded from storage so a
// grant or revocation since login takes effect here.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.tokens.ParseRefresh(refreshToken)
	if err != nil {
		return nil, shared.ErrInvalidCredentials
	}
	live, err := s.store.Take(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if !live {
		return nil, shared.ErrInvalidCredentials
	}
	userID, err := claims.UserID()
	if err != nil {
		return nil, shared.ErrInvalidCredentials
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, shared.ErrInvalidCredentials
	}
	return s.issueTokens(ctx, user)
}

// Logout revokes the refresh token. Already revoked tokens are accepted.
func (s *Service) Logout(ctx context.Context, refreshToken string) error {
	claims, err := s.tokens.ParseRefresh(refreshToken)
	if err != nil {
		return shared.ErrInvalidCredentials
	}
	return s.store.Revoke(ctx, claims.ID)
}

func (s *Service) issueTokens(ctx context.Context, user *users.User) (*TokenPair, error) {
	access, err := s.tokens.IssueAccess(user.ID, user.Email, user.Roles)
	if err != nil {
		return nil, err
	}
	refresh, id, err := s.tokens.IssueRefresh(user.ID)
	if err != nil {
		return nil, err
	}
	if err := s.store.Put(ctx, id, user.ID); err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
