package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/key-tactile/commerce-api/internal/core/domain"
	"github.com/key-tactile/commerce-api/internal/core/ports"
)

type ProductHandler struct {
	productService ports.ProductService
}

func NewProductHandler(productService ports.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// List handles GET /products (public).
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Param        page    query     int     false  "Page (1-based)"
// @Param        limit   query     int     false  "Page size"
// @Param        search  query     string  false  "Match on title, brand or description"
// @Param        sort    query     string  false  "price-asc or price-desc"
// @Success      200     {object}  response
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	page, limit := pagingParams(c)

	result, err := h.productService.ListProducts(c.Request().Context(), ports.ListProductsInput{
		Search: c.QueryParam("search"),
		Sort:   c.QueryParam("sort"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return err
	}

	return respondList(c, http.StatusOK, "Products Fetched Successfully.", result.Items, meta{
		TotalItems:  result.Total,
		CurrentPage: result.Page,
		TotalPages:  result.TotalPages,
		PageSize:    result.Limit,
	})
}

// Create handles POST /products (admin only).
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProductRequest  true  "Product details"
// @Success      200   {object}  response
// @Failure      400   {object}  response
// @Failure      401   {object}  response
// @Router       /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	product, err := h.productService.CreateProduct(c.Request().Context(), ports.CreateProductInput{
		Title:             req.Title,
		Brand:             req.Brand,
		Price:             req.Price,
		AvailableQuantity: req.AvailableQuantity,
		Rating:            req.Rating,
		Description:       req.Description,
		Images:            req.Images,
	})
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "Product Created Successfully.", product)
}

// Update handles PUT /products/:id (admin only).
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Product id"
// @Param        body  body      updateProductRequest  true  "Fields to update"
// @Success      200   {object}  response
// @Failure      400   {object}  response
// @Failure      404   {object}  response
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	product, err := h.productService.UpdateProduct(c.Request().Context(), c.Param("id"), ports.ProductUpdate{
		Title:             req.Title,
		Brand:             req.Brand,
		Price:             req.Price,
		AvailableQuantity: req.AvailableQuantity,
		Rating:            req.Rating,
		Description:       req.Description,
		Images:            req.Images,
	})
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return respondError(c, http.StatusNotFound, "Product not found!")
		}
		if errors.Is(err, domain.ErrNothingToUpdate) {
			return respondError(c, http.StatusBadRequest, "No fields were updated. Please provide valid data.")
		}
		return err
	}

	return respond(c, http.StatusOK, "Product updated successfully.", product)
}

// AdjustQuantity handles PATCH /products/:id/quantity (admin only).
//
// @Summary      Adjust product stock
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Product id"
// @Param        body  body      adjustQuantityRequest  true  "Action and optional quantity"
// @Success      200   {object}  response
// @Failure      400   {object}  response
// @Failure      404   {object}  response
// @Router       /products/{id}/quantity [patch]
func (h *ProductHandler) AdjustQuantity(c echo.Context) error {
	var req adjustQuantityRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	product, err := h.productService.AdjustQuantity(c.Request().Context(), ports.AdjustQuantityInput{
		ProductID: c.Param("id"),
		Action:    domain.QuantityAction(req.Action),
		Quantity:  req.Quantity,
	})
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return respondError(c, http.StatusNotFound, "Product not found!")
		}
		if errors.Is(err, domain.ErrInsufficientStock) {
			return respondError(c, http.StatusBadRequest, "Not enough quantity available.")
		}
		if errors.Is(err, domain.ErrInvalidQuantity) || errors.Is(err, domain.ErrInvalidAction) {
			return respondError(c, http.StatusBadRequest, err.Error())
		}
		return err
	}

	return respond(c, http.StatusOK, "Product quantity updated successfully.", product)
}
