package auth

import (
	"context"

	"github.com/golang-jwt/jwt/v5"

	"github.com/danakita/expense-tracker/internal"
)

// User is the authenticated identity placed into the request context by the
// middleware. Ledger operations bind ownership from this, never from payloads.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Claims are the JWT claims carried by access tokens.
type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenGenerator creates and validates bearer tokens.
type TokenGenerator interface {
	GenerateAccessToken(userID string) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

// AuthResponse is the payload returned by register and login.
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

var (
	ErrInvalidCredentials = internal.NewUnauthorizedError("Invalid credentials", internal.ErrCodeInvalidCredentials)
	ErrInvalidToken       = internal.NewUnauthorizedError("Invalid token", internal.ErrCodeInvalidToken)
	ErrTokenExpired       = internal.NewUnauthorizedError("Token has expired", internal.ErrCodeTokenExpired)
	ErrEmailTaken         = internal.NewConflictError("User already exists", internal.ErrCodeEmailTaken)
)

type ctxKey string

const ContextUserKey ctxKey = "authUser"

// UserFromContext returns the authenticated user stored by the middleware.
func UserFromContext(ctx context.Context) (*User, bool) {
	user, ok := ctx.Value(ContextUserKey).(*User)
	return user, ok
}

func ContextWithUser(ctx context.Context, user *User) context.Context {
	return context.WithValue(ctx, ContextUserKey, user)
}
