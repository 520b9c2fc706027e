package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stockroom/stock-api/internal/api/metrics"
	"github.com/stockroom/stock-api/internal/core/domain"
	"github.com/stockroom/stock-api/internal/core/ports"
)

// CategoryHandler adapts HTTP requests into CategoryService calls.
type CategoryHandler struct {
	service ports.CategoryService
}

func NewCategoryHandler(service ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// List handles GET /api/categoria.
//
// @Summary      List all categories
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Category
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/categoria [get]
func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categories)
}

// Get handles GET /api/categoria/:id.
//
// @Summary      Get a category by id
// @Tags         categories
// @Produce      json
// @Param        id   path      string  true  "Category id"
// @Success      200  {object}  domain.Category
// @Failure      404  {object}  errorResponse
// @Router       /api/categoria/{id} [get]
func (h *CategoryHandler) Get(c echo.Context) error {
	category, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if isCategoryNotFound(err) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "category not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, category)
}

// Create handles POST /api/categoria.
//
// @Summary      Create a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCategoryRequest  true  "Category details"
// @Success      201   {object}  domain.Category
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/categoria [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	var req createCategoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	category, err := h.service.Create(c.Request().Context(), ports.CreateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, domain.ErrCategoryExists) {
			return c.JSON(http.StatusConflict, errorResponse{Error: "category name already exists"})
		}
		return err
	}

	metrics.ResourceWritesTotal.WithLabelValues("category", "create").Inc()
	return c.JSON(http.StatusCreated, category)
}

// Update handles PUT /api/categoria/:id.
//
// @Summary      Update a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Category id"
// @Param        body  body      updateCategoryRequest  true  "Fields to update"
// @Success      200   {object}  domain.Category
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/categoria/{id} [put]
func (h *CategoryHandler) Update(c echo.Context) error {
	var req updateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	category, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		switch {
		case isCategoryNotFound(err):
			return c.JSON(http.StatusNotFound, errorResponse{Error: "category not found"})
		case errors.Is(err, domain.ErrCategoryExists):
			return c.JSON(http.StatusConflict, errorResponse{Error: "category name already exists"})
		}
		return err
	}

	metrics.ResourceWritesTotal.WithLabelValues("category", "update").Inc()
	return c.JSON(http.StatusOK, category)
}

// Delete handles DELETE /api/categoria/:id. Deleting a category does not
// cascade to products referencing it.
//
// @Summary      Delete a category
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Category id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/categoria/{id} [delete]
func (h *CategoryHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	if err := h.service.Remove(c.Request().Context(), id); err != nil {
		if isCategoryNotFound(err) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "category not found"})
		}
		return err
	}

	metrics.ResourceWritesTotal.WithLabelValues("category", "delete").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "category " + id + " deleted"})
}

func isCategoryNotFound(err error) bool {
	return errors.Is(err, domain.ErrCategoryNotFound) || errors.Is(err, domain.ErrInvalidID)
}
