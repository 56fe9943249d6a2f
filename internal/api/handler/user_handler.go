package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/key-tactile/commerce-api/internal/core/domain"
	"github.com/key-tactile/commerce-api/internal/core/ports"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type updateProfileRequest struct {
	Name     string `json:"name"`
	UserName string `json:"userName"`
	Phone    string `json:"phone"`
	Image    string `json:"image"`
}

// List handles GET /users (admin only).
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        page    query     int     false  "Page (1-based)"
// @Param        limit   query     int     false  "Page size"
// @Param        search  query     string  false  "Match on name, userName or email"
// @Success      200     {object}  response
// @Failure      401     {object}  response
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	page, limit := pagingParams(c)

	result, err := h.userService.ListUsers(c.Request().Context(), ports.ListUsersInput{
		Search: c.QueryParam("search"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return err
	}

	return respondList(c, http.StatusOK, "Users Fetched Successfully.", result.Items, meta{
		TotalItems:  result.Total,
		CurrentPage: result.Page,
		TotalPages:  result.TotalPages,
		PageSize:    result.Limit,
	})
}

// UpdateProfile handles PATCH /update-profile/:email.
//
// Only name, userName, phone and image are mutable here; empty fields are
// skipped. Non-admin callers may only update their own profile.
//
// @Summary      Update a user profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        email  path      string                true  "Target user email"
// @Param        body   body      updateProfileRequest  true  "Fields to update"
// @Success      200    {object}  response
// @Failure      400    {object}  response
// @Failure      401    {object}  response
// @Failure      404    {object}  response
// @Router       /update-profile/{email} [patch]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid payload")
	}

	user, err := h.userService.UpdateProfile(c.Request().Context(), ports.UpdateProfileInput{
		Email: c.Param("email"),
		Update: domain.ProfileUpdate{
			Name:     req.Name,
			UserName: req.UserName,
			Phone:    req.Phone,
			Image:    req.Image,
		},
		ActorEmail: claims.Email,
		ActorRole:  claims.Role,
	})
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return respondError(c, http.StatusUnauthorized, "Unauthorized Access!")
		}
		if errors.Is(err, domain.ErrUserNotFound) {
			return respondError(c, http.StatusNotFound, "User not found!")
		}
		if errors.Is(err, domain.ErrNothingToUpdate) {
			return respondError(c, http.StatusBadRequest, "No fields were updated. Please provide valid data.")
		}
		return err
	}

	return respond(c, http.StatusOK, "Profile updated successfully.", user)
}
