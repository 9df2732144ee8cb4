// Package auth implements registration, login and bearer token handling.
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/elseff/articles-api-sub000/internal/shared"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

var errInvalidToken = errors.New("invalid token")

// Claims embeds the registered JWT claims plus the fields needed to
// rebuild a principal without a database round trip.
type Claims struct {
	jwt.RegisteredClaims
	Email string   `json:"email,omitempty"`
	Roles []string `json:"roles,omitempty"`
	Type  string   `json:"type"`
}

// UserID returns the subject parsed back into a user id.
func (c *Claims) UserID() (int64, error) {
	return strconv.ParseInt(c.Subject, 10, 64)
}

// TokenManager issues and verifies HS256 signed tokens.
type TokenManager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewTokenManager constructs a TokenManager.
func NewTokenManager(secret string, accessTTL, refreshTTL time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), accessTTL: accessTTL, refreshTTL: refreshTTL}
}

// IssueAccess signs a short lived access token carrying the user's
// identity and roles.
func (m *TokenManager) IssueAccess(userID int64, email string, roles []shared.Role) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
		},
		Email: email,
		Roles: shared.RoleNames(roles),
		Type:  tokenTypeAccess,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// IssueRefresh signs a refresh token. The returned id is stored server
// side so the token can be revoked.
func (m *TokenManager) IssueRefresh(userID int64) (token, id string, err error) {
	now := time.Now()
	id = uuid.NewString()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id,
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.refreshTTL)),
		},
		Type: tokenTypeRefresh,
	}
	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	return token, id, err
}

// ParseAccess verifies an access token and returns its claims.
func (m *TokenManager) ParseAccess(tokenString string) (*Claims, error) {
	return m.parse(tokenString, tokenTypeAccess)
}

// ParseRefresh verifies a refresh token and returns its claims.
func (m *TokenManager) ParseRefresh(tokenString string) (*Claims, error) {
	return m.parse(tokenString, tokenTypeRefresh)
}

func (m *TokenManager) parse(tokenString, wantType string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Type != wantType {
		return nil, errInvalidToken
	}
	return claims, nil
}

// RefreshTTL exposes the refresh token lifetime for the server side store.
func (m *TokenManager) RefreshTTL() time.Duration {
	return m.refreshTTL
}
