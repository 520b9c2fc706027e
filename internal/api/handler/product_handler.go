package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stockroom/stock-api/internal/api/metrics"
	"github.com/stockroom/stock-api/internal/core/domain"
	"github.com/stockroom/stock-api/internal/core/ports"
)

// ProductHandler adapts HTTP requests into ProductService calls.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// List handles GET /api/producto. Category references are resolved into
// display names.
//
// @Summary      List all products
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.ProductDetail
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/producto [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Get handles GET /api/producto/:id.
//
// @Summary      Get a product by id
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  domain.ProductDetail
// @Failure      404  {object}  errorResponse
// @Router       /api/producto/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if isProductNotFound(err) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "product not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Create handles POST /api/producto.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProductRequest  true  "Product details"
// @Success      201   {object}  domain.Product
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/producto [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	product, err := h.service.Create(c.Request().Context(), ports.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		if status, msg, ok := productWriteError(err); ok {
			return c.JSON(status, errorResponse{Error: msg})
		}
		return err
	}

	metrics.ResourceWritesTotal.WithLabelValues("product", "create").Inc()
	return c.JSON(http.StatusCreated, product)
}

// Update handles PUT /api/producto/:id and returns the refreshed record.
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Product id"
// @Param        body  body      updateProductRequest  true  "Fields to update"
// @Success      200   {object}  domain.Product
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/producto/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	product, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		if isProductNotFound(err) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "product not found"})
		}
		if status, msg, ok := productWriteError(err); ok {
			return c.JSON(status, errorResponse{Error: msg})
		}
		return err
	}

	metrics.ResourceWritesTotal.WithLabelValues("product", "update").Inc()
	return c.JSON(http.StatusOK, product)
}

// Delete handles DELETE /api/producto/:id.
//
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/producto/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	if err := h.service.Remove(c.Request().Context(), id); err != nil {
		if isProductNotFound(err) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "product not found"})
		}
		return err
	}

	metrics.ResourceWritesTotal.WithLabelValues("product", "delete").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "product " + id + " deleted"})
}

func isProductNotFound(err error) bool {
	return errors.Is(err, domain.ErrProductNotFound) || errors.Is(err, domain.ErrInvalidID)
}

// productWriteError maps write-time product failures to client errors.
func productWriteError(err error) (int, string, bool) {
	switch {
	case errors.Is(err, domain.ErrProductExists):
		return http.StatusConflict, "product name already exists", true
	case errors.Is(err, domain.ErrCategoryRefInvalid):
		return http.StatusBadRequest, "category reference does not exist", true
	case errors.Is(err, domain.ErrNegativeAmount):
		return http.StatusBadRequest, err.Error(), true
	}
	return 0, "", false
}
