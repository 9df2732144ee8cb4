package users

import (
	"time"

	"github.com/elseff/articles-api-sub000/internal/shared"
)

// UpdateUserRequest carries a partial update. Nil fields leave the stored
// value untouched; clearing a field is not expressible.
type UpdateUserRequest struct {
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,min=1,max=100"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,min=1,max=100"`
	Country   *string `json:"country,omitempty" validate:"omitempty,max=100"`
}

// Empty reports whether the patch carries no fields at all.
func (r UpdateUserRequest) Empty() bool {
	return r.FirstName == nil && r.LastName == nil && r.Country == nil
}

// UserResponse is the public representation of a user. The password hash
// never leaves the service layer.
type UserResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Country   string    `json:"country,omitempty"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUserResponse maps a User to its response payload.
func NewUserResponse(u User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Country:   u.Country,
		Roles:     shared.RoleNames(u.Roles),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// NewUserResponses maps a slice of users.
func NewUserResponses(list []User) []UserResponse {
	out := make([]UserResponse, len(list))
	for i, u := range list {
		out[i] = NewUserResponse(u)
	}
	return out
}
