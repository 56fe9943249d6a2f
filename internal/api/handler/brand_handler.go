package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/key-tactile/commerce-api/internal/core/domain"
	"github.com/key-tactile/commerce-api/internal/core/ports"
)

type BrandHandler struct {
	brandService ports.BrandService
}

func NewBrandHandler(brandService ports.BrandService) *BrandHandler {
	return &BrandHandler{brandService: brandService}
}

type createBrandRequest struct {
	Name        string `json:"name" validate:"required"`
	Logo        string `json:"logo"`
	Description string `json:"description"`
}

type updateBrandRequest struct {
	Name        string `json:"name"`
	Logo        string `json:"logo"`
	Description string `json:"description"`
}

// List handles GET /brands (public).
//
// @Summary      List brands
// @Tags         brands
// @Produce      json
// @Param        page    query     int     false  "Page (1-based)"
// @Param        limit   query     int     false  "Page size"
// @Param        search  query     string  false  "Match on name or description"
// @Success      200     {object}  response
// @Router       /brands [get]
func (h *BrandHandler) List(c echo.Context) error {
	page, limit := pagingParams(c)

	result, err := h.brandService.ListBrands(c.Request().Context(), ports.ListBrandsInput{
		Search: c.QueryParam("search"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return err
	}

	return respondList(c, http.StatusOK, "Brands Fetched Successfully.", result.Items, meta{
		TotalItems:  result.Total,
		CurrentPage: result.Page,
		TotalPages:  result.TotalPages,
		PageSize:    result.Limit,
	})
}

// Create handles POST /brands (admin only).
//
// @Summary      Create a brand
// @Tags         brands
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBrandRequest  true  "Brand details"
// @Success      200   {object}  response
// @Failure      400   {object}  response
// @Router       /brands [post]
func (h *BrandHandler) Create(c echo.Context) error {
	var req createBrandRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	brand, err := h.brandService.CreateBrand(c.Request().Context(), ports.CreateBrandInput{
		Name:        req.Name,
		Logo:        req.Logo,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "Brand Created Successfully.", brand)
}

// Update handles PATCH /brands/:id (admin only).
//
// @Summary      Update a brand
// @Tags         brands
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Brand id"
// @Param        body  body      updateBrandRequest  true  "Fields to update"
// @Success      200   {object}  response
// @Failure      400   {object}  response
// @Failure      404   {object}  response
// @Router       /brands/{id} [patch]
func (h *BrandHandler) Update(c echo.Context) error {
	var req updateBrandRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid payload")
	}

	brand, err := h.brandService.UpdateBrand(c.Request().Context(), c.Param("id"), ports.BrandUpdate{
		Name:        req.Name,
		Logo:        req.Logo,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, domain.ErrBrandNotFound) {
			return respondError(c, http.StatusNotFound, "Brand not found!")
		}
		if errors.Is(err, domain.ErrNothingToUpdate) {
			return respondError(c, http.StatusBadRequest, "No fields were updated. Please provide valid data.")
		}
		return err
	}

	return respond(c, http.StatusOK, "Brand updated successfully.", brand)
}

// Delete handles DELETE /brands/:id (admin only).
//
// @Summary      Delete a brand
// @Tags         brands
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Brand id"
// @Success      200  {object}  response
// @Failure      404  {object}  response
// @Router       /brands/{id} [delete]
func (h *BrandHandler) Delete(c echo.Context) error {
	if err := h.brandService.DeleteBrand(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrBrandNotFound) {
			return respondError(c, http.StatusNotFound, "Brand not found!")
		}
		return err
	}

	return respond(c, http.StatusOK, "Brand deleted successfully.", nil)
}
