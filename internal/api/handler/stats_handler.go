package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/key-tactile/commerce-api/internal/core/ports"
)

type StatsHandler struct {
	statsService ports.StatsService
}

func NewStatsHandler(statsService ports.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// Overview handles GET /stat (admin only).
//
// @Summary      Dashboard aggregate counts and earnings
// @Tags         stats
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response
// @Failure      401  {object}  response
// @Router       /stat [get]
func (h *StatsHandler) Overview(c echo.Context) error {
	overview, err := h.statsService.Overview(c.Request().Context())
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "Stats Fetched Successfully.", overview)
}
