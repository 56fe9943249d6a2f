package ports

import (
	"context"

	"github.com/key-tactile/commerce-api/internal/core/domain"
)

// RegisterInput carries everything needed to create an account.
// Role is always "user"; admins are promoted out of band.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	UserName string
	Phone    string
	Image    string
}

// AuthService authenticates credentials and mints access tokens.
type AuthService interface {
	// Register creates the account and returns it along with a fresh token.
	Register(ctx context.Context, input RegisterInput) (*domain.User, string, error)
	// Login verifies credentials and mints a token. Unknown email and wrong
	// password both map to 401; only the message text differs.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
