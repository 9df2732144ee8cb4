package users

import (
	"time"

	"github.com/elseff/articles-api-sub000/internal/shared"
)

// User represents a registered account.
type User struct {
	ID           int64
	Email        string
	FirstName    string
	LastName     string
	Country      string
	PasswordHash string
	Roles        []shared.Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OwnerEmail identifies the user as the owner of their own record.
func (u User) OwnerEmail() string { return u.Email }
