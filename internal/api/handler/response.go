package handler

import "github.com/labstack/echo/v4"

// response is the uniform envelope returned by every endpoint.
type response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Token   string `json:"token,omitempty"`
	Meta    *meta  `json:"meta,omitempty"`
	Error   any    `json:"error,omitempty"`
}

// meta carries pagination details on list responses.
type meta struct {
	TotalItems  int64 `json:"totalItems"`
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	PageSize    int   `json:"pageSize"`
}

func respond(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, response{Success: true, Message: message, Data: data})
}

func respondToken(c echo.Context, status int, message, token string, data any) error {
	return c.JSON(status, response{Success: true, Message: message, Token: token, Data: data})
}

func respondList(c echo.Context, status int, message string, data any, m meta) error {
	return c.JSON(status, response{Success: true, Message: message, Data: data, Meta: &m})
}

func respondError(c echo.Context, status int, message string) error {
	return c.JSON(status, response{Success: false, Message: message})
}
