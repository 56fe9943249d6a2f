package ports

import (
	"context"

	"github.com/key-tactile/commerce-api/internal/core/domain"
)

// ListUsersInput carries the parameters for the admin user listing.
type ListUsersInput struct {
	Search string
	Page   int
	Limit  int
}

// UserListResult is returned by ListUsers.
type UserListResult struct {
	Items      []*domain.User
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// UpdateProfileInput identifies the target record and the acting caller.
// Non-admin callers may only update their own profile.
type UpdateProfileInput struct {
	Email      string
	Update     domain.ProfileUpdate
	ActorEmail string
	ActorRole  string
}

// UserService defines use-case operations over user records.
type UserService interface {
	ListUsers(ctx context.Context, input ListUsersInput) (*UserListResult, error)
	UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.User, error)
}
