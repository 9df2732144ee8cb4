package users

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/elseff/articles-api-sub000/internal/shared"
)

const uniqueViolation = "23505"

// Repository provides PostgreSQL backed persistence.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Create inserts a new user. A duplicate email surfaces as ErrDuplicateEmail.
func (r *Repository) Create(ctx context.Context, user User) (*User, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO users (email, first_name, last_name, country, password_hash, roles)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		user.Email, user.FirstName, user.LastName, user.Country, user.PasswordHash, shared.RoleNames(user.Roles))
	if err := row.Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, shared.ErrDuplicateEmail
		}
		return nil, err
	}
	return &user, nil
}

// GetByID fetches a user by id.
func (r *Repository) GetByID(ctx context.Context, id int64) (*User, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, email, first_name, last_name, country, password_hash, roles, created_at, updated_at
		 FROM users WHERE id = $1`, id)
	return scanUser(row)
}

// GetByEmail fetches a user by email.
func (r *Repository) GetByEmail(ctx context.Context, email string) (*User, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, email, first_name, last_name, country, password_hash, roles, created_at, updated_at
		 FROM users WHERE email = $1`, email)
	return scanUser(row)
}

// List returns all users ordered by id.
func (r *Repository) List(ctx context.Context) ([]User, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, email, first_name, last_name, country, password_hash, roles, created_at, updated_at
		 FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *user)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

// Update persists the mutable profile fields.
func (r *Repository) Update(ctx context.Context, user User) (*User, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE users SET first_name = $2, last_name = $3, country = $4, updated_at = now()
		 WHERE id = $1
		 RETURNING updated_at`,
		user.ID, user.FirstName, user.LastName, user.Country)
	if err := row.Scan(&user.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Delete removes a user by id.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (*User, error) {
	var user User
	var roles []string
	err := row.Scan(&user.ID, &user.Email, &user.FirstName, &user.LastName, &user.Country,
		&user.PasswordHash, &roles, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	user.Roles = shared.ParseRoles(roles)
	return &user, nil
}

var _ RepositoryPort = (*Repository)(nil)
