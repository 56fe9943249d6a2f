package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/key-tactile/commerce-api/internal/api/metrics"
	"github.com/key-tactile/commerce-api/internal/core/domain"
	"github.com/key-tactile/commerce-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name"     validate:"required"`
	UserName string `json:"userName"`
	Phone    string `json:"phone"`
	Image    string `json:"image"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register creates a new user account and returns a fresh token.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      200   {object}  response
// @Failure      400   {object}  response
// @Failure      409   {object}  response
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	user, token, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		UserName: req.UserName,
		Phone:    req.Phone,
		Image:    req.Image,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return respondError(c, http.StatusConflict, "User Already Exists!")
		}
		return err
	}

	metrics.RegistrationsTotal.Inc()
	return respondToken(c, http.StatusOK, "User Created Successfully.", token, user)
}

// Login authenticates credentials and returns a token.
//
// Unknown email and wrong password both answer 401; only the message text
// differs, and clients must not treat it as machine-readable.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  response
// @Failure      400   {object}  response
// @Failure      401   {object}  response
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		if errors.Is(err, domain.ErrUserNotFound) {
			return respondError(c, http.StatusUnauthorized, "User not found!")
		}
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return respondError(c, http.StatusUnauthorized, "Invalid password!")
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return respondToken(c, http.StatusOK, "Login successful!", token, user)
}
