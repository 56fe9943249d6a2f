package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/key-tactile/commerce-api/internal/core/domain"
	"github.com/key-tactile/commerce-api/internal/core/ports"
)

type UserService struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

// ListUsers returns a page of users. Password hashes never leave the
// repository projection; this is the admin-only listing.
func (s *UserService) ListUsers(ctx context.Context, input ports.ListUsersInput) (*ports.UserListResult, error) {
	page, limit := normalizePaging(input.Page, input.Limit)

	items, total, err := s.users.List(ctx, ports.UserListFilter{
		Search: input.Search,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return nil, err
	}

	return &ports.UserListResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

// UpdateProfile patches name/userName/phone/image on the target record.
// Empty fields are skipped. Non-admin callers may only touch their own
// profile; password and role are not reachable through this path.
func (s *UserService) UpdateProfile(ctx context.Context, input ports.UpdateProfileInput) (*domain.User, error) {
	if input.ActorRole != domain.RoleAdmin && !strings.EqualFold(input.ActorEmail, input.Email) {
		return nil, domain.ErrForbidden
	}
	if input.Update.Empty() {
		return nil, domain.ErrNothingToUpdate
	}

	updated, err := s.users.UpdateProfile(ctx, input.Email, input.Update)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", input.Email).Str("actor", input.ActorEmail).Msg("profile updated")
	return updated, nil
}
