package articles

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/elseff/articles-api-sub000/internal/shared"
)

type memoryArticleRepo struct {
	articles map[int64]Article
	nextID   int64
}

func newMemoryArticleRepo() *memoryArticleRepo {
	return &memoryArticleRepo{articles: make(map[int64]Article)}
}

func (r *memoryArticleRepo) Create(ctx context.Context, article Article) (*Article, error) {
	r.nextID++
	article.ID = r.nextID
	article.CreatedAt = time.Now()
	article.UpdatedAt = article.CreatedAt
	r.articles[article.ID] = article
	return &article, nil
}

func (r *memoryArticleRepo) GetByID(ctx context.Context, id int64) (*Article, error) {
	article, ok := r.articles[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return &article, nil
}

func (r *memoryArticleRepo) List(ctx context.Context) ([]Article, error) {
	list := make([]Article, 0, len(r.articles))
	for _, a := range r.articles {
		list = append(list, a)
	}
	return list, nil
}

func (r *memoryArticleRepo) Update(ctx context.Context, article Article) (*Article, error) {
	if _, ok := r.articles[article.ID]; !ok {
		return nil, shared.ErrNotFound
	}
	article.UpdatedAt = time.Now()
	r.articles[article.ID] = article
	return &article, nil
}

func (r *memoryArticleRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.articles[id]; !ok {
		return shared.ErrNotFound
	}
	delete(r.articles, id)
	return nil
}

type stubResolver struct {
	principal shared.Principal
	absent    bool
}

func (s stubResolver) Current(ctx context.Context) (shared.Principal, error) {
	if s.absent {
		return shared.Principal{}, shared.ErrNoPrincipal
	}
	return s.principal, nil
}

var (
	alice = shared.Principal{UserID: 1, Email: "alice@example.com", Roles: []shared.Role{shared.RoleUser}}
	bob   = shared.Principal{UserID: 2, Email: "bob@example.com", Roles: []shared.Role{shared.RoleUser}}
	admin = shared.Principal{UserID: 3, Email: "admin@example.com", Roles: []shared.Role{shared.RoleUser, shared.RoleAdmin}}
)

func seedArticle(t *testing.T, repo *memoryArticleRepo, author shared.Principal) Article {
	t.Helper()
	article, err := repo.Create(context.Background(), Article{
		Title:       "original title",
		Description: "original description",
		AuthorID:    author.UserID,
		AuthorEmail: author.Email,
	})
	require.NoError(t, err)
	return *article
}

func TestCreateSetsAuthorFromPrincipal(t *testing.T) {
	repo := newMemoryArticleRepo()
	svc := NewService(repo, stubResolver{principal: alice})

	article, err := svc.Create(context.Background(), CreateArticleRequest{Title: "t", Description: "d"})
	require.NoError(t, err)
	require.Equal(t, alice.UserID, article.AuthorID)
	require.Equal(t, alice.Email, article.AuthorEmail)
	require.False(t, article.Edited)
}

func TestCreateWithoutPrincipal(t *testing.T) {
	repo := newMemoryArticleRepo()
	svc := NewService(repo, stubResolver{absent: true})

	_, err := svc.Create(context.Background(), CreateArticleRequest{Title: "t", Description: "d"})
	require.ErrorIs(t, err, shared.ErrNoPrincipal)
	require.Empty(t, repo.articles)
}

func TestUpdateByOwnerMarksEdited(t *testing.T) {
	repo := newMemoryArticleRepo()
	article := seedArticle(t, repo, alice)
	svc := NewService(repo, stubResolver{principal: alice})

	title := "new"
	updated, err := svc.Update(context.Background(), article.ID, UpdateArticleRequest{Title: &title})
	require.NoError(t, err)
	require.Equal(t, "new", updated.Title)
	require.Equal(t, "original description", updated.Description)
	require.True(t, updated.Edited)
}

func TestUpdateByStrangerForbidden(t *testing.T) {
	repo := newMemoryArticleRepo()
	article := seedArticle(t, repo, alice)
	svc := NewService(repo, stubResolver{principal: bob})

	title := "new"
	_, err := svc.Update(context.Background(), article.ID, UpdateArticleRequest{Title: &title})
	require.ErrorIs(t, err, shared.ErrForbidden)

	stored, err := repo.GetByID(context.Background(), article.ID)
	require.NoError(t, err)
	require.Equal(t, article, *stored)
}

func TestUpdateByAdmin(t *testing.T) {
	repo := newMemoryArticleRepo()
	article := seedArticle(t, repo, alice)
	svc := NewService(repo, stubResolver{principal: admin})

	desc := "moderated"
	updated, err := svc.Update(context.Background(), article.ID, UpdateArticleRequest{Description: &desc})
	require.NoError(t, err)
	require.Equal(t, "moderated", updated.Description)
	require.True(t, updated.Edited)
}

func TestUpdateEmptyPatchIsNoOp(t *testing.T) {
	repo := newMemoryArticleRepo()
	article := seedArticle(t, repo, alice)
	svc := NewService(repo, stubResolver{principal: alice})

	updated, err := svc.Update(context.Background(), article.ID, UpdateArticleRequest{})
	require.NoError(t, err)
	require.False(t, updated.Edited)
	require.Equal(t, article, *updated)
}

func TestUpdateNotFoundPrecedesForbidden(t *testing.T) {
	repo := newMemoryArticleRepo()
	svc := NewService(repo, stubResolver{principal: bob})

	title := "x"
	_, err := svc.Update(context.Background(), 999, UpdateArticleRequest{Title: &title})
	require.ErrorIs(t, err, shared.ErrNotFound)

	// Same for admins: existence is always checked first.
	svc = NewService(repo, stubResolver{principal: admin})
	_, err = svc.Update(context.Background(), 999, UpdateArticleRequest{Title: &title})
	require.ErrorIs(t, err, shared.ErrNotFound)
}

func TestDeleteByStrangerKeepsArticle(t *testing.T) {
	repo := newMemoryArticleRepo()
	article := seedArticle(t, repo, alice)
	svc := NewService(repo, stubResolver{principal: bob})

	err := svc.Delete(context.Background(), article.ID)
	require.ErrorIs(t, err, shared.ErrForbidden)
	_, err = repo.GetByID(context.Background(), article.ID)
	require.NoError(t, err)
}

func TestDeleteByAdmin(t *testing.T) {
	repo := newMemoryArticleRepo()
	article := seedArticle(t, repo, alice)
	svc := NewService(repo, stubResolver{principal: admin})

	require.NoError(t, svc.Delete(context.Background(), article.ID))
	_, err := repo.GetByID(context.Background(), article.ID)
	require.ErrorIs(t, err, shared.ErrNotFound)
}

func TestDeleteWithoutPrincipal(t *testing.T) {
	repo := newMemoryArticleRepo()
	article := seedArticle(t, repo, alice)
	svc := NewService(repo, stubResolver{absent: true})

	err := svc.Delete(context.Background(), article.ID)
	require.ErrorIs(t, err, shared.ErrNoPrincipal)
}
