package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/liquidglass/storefront-api/internal/core/ports"
)

// ProductHandler handles catalog reads and the admin CRUD endpoints.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// List returns the catalog. With page+limit query parameters the response is
// a pagination envelope; without them it is a bare array (the public products
// page contract).
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Param        search  query  string  false  "Case-insensitive match on name or category"
// @Param        page    query  int     false  "1-based page number"
// @Param        limit   query  int     false  "Items per page"
// @Success      200
// @Router       /api/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.ListProducts(c.Request().Context(), ports.ListProductsInput{
		Search: c.QueryParam("search"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return err
	}

	if !result.Paginated {
		return c.JSON(http.StatusOK, result.Items)
	}

	return c.JSON(http.StatusOK, paginatedProductsResponse{
		Products:      result.Items,
		TotalProducts: result.TotalProducts,
		TotalPages:    result.TotalPages,
		CurrentPage:   result.CurrentPage,
	})
}

// Get returns one product by id.
//
// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Param        id  path  string  true  "Product id"
// @Success      200  {object}  domain.Product
// @Failure      404  {object}  messageResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.service.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Create adds a catalog entry. Admin only.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      createProductRequest  true  "Product fields"
// @Success      201   {object}  domain.Product
// @Failure      400   {object}  messageResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing required product fields.")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing required product fields.")
	}

	product, err := h.service.CreateProduct(c.Request().Context(), ports.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Images:      req.Images,
		Category:    req.Category,
		Size:        req.Size,
		Stock:       *req.Stock,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, product)
}

// Update applies a partial update to a product. Admin only.
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id    path      string                true  "Product id"
// @Param        body  body      updateProductRequest  true  "Fields to change"
// @Success      200   {object}  domain.Product
// @Failure      404   {object}  messageResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid product payload.")
	}

	product, err := h.service.UpdateProduct(c.Request().Context(), c.Param("id"), ports.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Images:      req.Images,
		Category:    req.Category,
		Size:        req.Size,
		Stock:       req.Stock,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, product)
}

// Delete removes a product and returns the deleted entry. Admin only.
//
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Security     CookieAuth
// @Param        id  path  string  true  "Product id"
// @Success      200  {object}  domain.Product
// @Failure      404  {object}  messageResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	product, err := h.service.DeleteProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}
