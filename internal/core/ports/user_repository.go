package ports

import (
	"context"

	"github.com/key-tactile/commerce-api/internal/core/domain"
)

// UserListFilter carries query parameters for listing users.
type UserListFilter struct {
	Search string // optional: case-insensitive match on name, userName or email
	Page   int    // 1-based
	Limit  int    // rows per page
}

// UserRepository defines persistence operations for identity records.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Create inserts a new user. A unique index on email makes the
	// duplicate check atomic; duplicates surface as domain.ErrUserExists.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// UpdateProfile applies only the non-empty fields of upd.
	UpdateProfile(ctx context.Context, email string, upd domain.ProfileUpdate) (*domain.User, error)
	// List returns a page of users matching filter and the total count.
	List(ctx context.Context, filter UserListFilter) ([]*domain.User, int64, error)
}
