package articles

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/elseff/articles-api-sub000/internal/shared"
)

// Repository provides PostgreSQL backed persistence.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const selectArticle = `
	SELECT a.id, a.title, a.description, a.author_id, u.email, a.edited, a.created_at, a.updated_at
	FROM articles a
	JOIN users u ON u.id = a.author_id`

// Create inserts a new article.
func (r *Repository) Create(ctx context.Context, article Article) (*Article, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO articles (title, description, author_id)
		 VALUES ($1, $2, $3)
		 RETURNING id, edited, created_at, updated_at`,
		article.Title, article.Description, article.AuthorID)
	if err := row.Scan(&article.ID, &article.Edited, &article.CreatedAt, &article.UpdatedAt); err != nil {
		return nil, err
	}
	return &article, nil
}

// GetByID fetches an article with its author email.
func (r *Repository) GetByID(ctx context.Context, id int64) (*Article, error) {
	row := r.pool.QueryRow(ctx, selectArticle+` WHERE a.id = $1`, id)
	return scanArticle(row)
}

// List returns all articles ordered by id.
func (r *Repository) List(ctx context.Context) ([]Article, error) {
	rows, err := r.pool.Query(ctx, selectArticle+` ORDER BY a.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []Article
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *article)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

// Update persists title, description and the edited flag.
func (r *Repository) Update(ctx context.Context, article Article) (*Article, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE articles SET title = $2, description = $3, edited = $4, updated_at = now()
		 WHERE id = $1
		 RETURNING updated_at`,
		article.ID, article.Title, article.Description, article.Edited)
	if err := row.Scan(&article.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &article, nil
}

// Delete removes an article by id.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func scanArticle(row pgx.Row) (*Article, error) {
	var article Article
	err := row.Scan(&article.ID, &article.Title, &article.Description, &article.AuthorID,
		&article.AuthorEmail, &article.Edited, &article.CreatedAt, &article.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &article, nil
}

var _ RepositoryPort = (*Repository)(nil)
