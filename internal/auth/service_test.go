package auth

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/elseff/articles-api-sub000/internal/shared"
	"github.com/elseff/articles-api-sub000/internal/users"
)

type stubUserStore struct {
	byID    map[int64]users.User
	byEmail map[string]users.User
	nextID  int64
}

func newStubUserStore() *stubUserStore {
	return &stubUserStore{byID: make(map[int64]users.User), byEmail: make(map[string]users.User)}
}

func (s *stubUserStore) Create(ctx context.Context, user users.User) (*users.User, error) {
	if _, ok := s.byEmail[user.Email]; ok {
		return nil, shared.ErrDuplicateEmail
	}
	s.nextID++
	user.ID = s.nextID
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	s.byID[user.ID] = user
	s.byEmail[user.Email] = user
	return &user, nil
}

func (s *stubUserStore) GetByID(ctx context.Context, id int64) (*users.User, error) {
	user, ok := s.byID[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return &user, nil
}

func (s *stubUserStore) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	user, ok := s.byEmail[email]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return &user, nil
}

func newTestService(t *testing.T) (*Service, *stubUserStore) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := newStubUserStore()
	tokens := NewTokenManager("testsecret", 15*time.Minute, time.Hour)
	svc := NewService(store, tokens, NewRefreshStore(client, time.Hour))
	return svc, store
}

func TestRegister(t *testing.T) {
	svc, store := newTestService(t)

	user, pair, err := svc.Register(context.Background(), RegisterRequest{
		Email:     "alice@example.com",
		Password:  "password123",
		FirstName: "Alice",
		LastName:  "Doe",
		Country:   "ID",
	})
	require.NoError(t, err)
	require.Equal(t, []shared.Role{shared.RoleUser}, user.Roles)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	// The raw password must never be stored.
	stored := store.byEmail["alice@example.com"]
	require.NotEqual(t, "password123", stored.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("password123")))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestService(t)

	req := RegisterRequest{Email: "alice@example.com", Password: "password123", FirstName: "A", LastName: "B"}
	_, _, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, _, err = svc.Register(context.Background(), req)
	require.ErrorIs(t, err, shared.ErrDuplicateEmail)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newTestService(t)

	_, _, err := svc.Register(context.Background(), RegisterRequest{
		Email: "alice@example.com", Password: "password123", FirstName: "A", LastName: "B",
	})
	require.NoError(t, err)

	_, _, err = svc.Login(context.Background(), LoginRequest{Email: "alice@example.com", Password: "wrongpass"})
	require.ErrorIs(t, err, shared.ErrInvalidCredentials)

	_, _, err = svc.Login(context.Background(), LoginRequest{Email: "nobody@example.com", Password: "password123"})
	require.ErrorIs(t, err, shared.ErrInvalidCredentials)
}

func TestLogin(t *testing.T) {
	svc, _ := newTestService(t)

	_, _, err := svc.Register(context.Background(), RegisterRequest{
		Email: "alice@example.com", Password: "password123", FirstName: "A", LastName: "B",
	})
	require.NoError(t, err)

	user, pair, err := svc.Login(context.Background(), LoginRequest{Email: "alice@example.com", Password: "password123"})
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", user.Email)
	require.NotEmpty(t, pair.AccessToken)
}

func TestRefreshRotation(t *testing.T) {
	svc, _ := newTestService(t)

	_, pair, err := svc.Register(context.Background(), RegisterRequest{
		Email: "alice@example.com", Password: "password123", FirstName: "A", LastName: "B",
	})
	require.NoError(t, err)

	next, err := svc.Refresh(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, next.AccessToken)

	// The consumed token must not be replayable.
	_, err = svc.Refresh(context.Background(), pair.RefreshToken)
	require.ErrorIs(t, err, shared.ErrInvalidCredentials)

	// The rotated token still works.
	_, err = svc.Refresh(context.Background(), next.RefreshToken)
	require.NoError(t, err)
}

func TestLogoutRevokesRefresh(t *testing.T) {
	svc, _ := newTestService(t)

	_, pair, err := svc.Register(context.Background(), RegisterRequest{
		Email: "alice@example.com", Password: "password123", FirstName: "A", LastName: "B",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), pair.RefreshToken))

	_, err = svc.Refresh(context.Background(), pair.RefreshToken)
	require.ErrorIs(t, err, shared.ErrInvalidCredentials)
}

func TestRefreshRejectsGarbage(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Refresh(context.Background(), "not-a-token")
	require.ErrorIs(t, err, shared.ErrInvalidCredentials)
}
