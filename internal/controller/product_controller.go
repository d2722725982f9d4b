package controller

import (
	"net/http"

	"github.com/ferremax/inventory-service/internal/dto"
	"github.com/ferremax/inventory-service/internal/service"
	"github.com/ferremax/inventory-service/pkg/errs"
	"github.com/ferremax/inventory-service/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type ProductController struct {
	service service.ProductService
}

func CreateProductController(e *echo.Group, service service.ProductService) {
	c := ProductController{
		service: service,
	}
	e.POST("/products", c.AddProduct)
	e.GET("/products", c.GetProducts)
	e.GET("/products/:id", c.GetProductByID)
	e.PATCH("/products/:id", c.UpdateProduct)
	e.PATCH("/products/:id/adjust-stock", c.AdjustStock)
	e.DELETE("/products/:id", c.DeleteProduct)
}

// AddProduct godoc
// @Summary Create a new product
// @Tags Products
// @Accept json
// @Produce json
// @Param product body dto.ProductRequest true "Product payload"
// @Success 201 {object} domain.Product
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /products [post]
func (c *ProductController) AddProduct(e echo.Context) error {
	payload := dto.ProductRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient)
	}

	product, err := c.service.AddProduct(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, http.StatusCreated, product)
}

// GetProducts godoc
// @Summary List products with filters and pagination
// @Tags Products
// @Produce json
// @Param q query string false "Search keyword (name, brand, category)"
// @Param category query string false "Filter by category"
// @Param brand query string false "Filter by brand"
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Param active query boolean false "Filter by active status"
// @Param minStockAlert query boolean false "Only products at or below minimum stock"
// @Param limit query integer false "Page size" default(10)
// @Param skip query integer false "Offset" default(0)
// @Success 200 {object} dto.ProductListResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /products [get]
func (c *ProductController) GetProducts(e echo.Context) error {
	param := dto.ProductFilter{}
	if err := e.Bind(&param); err != nil {
		log.Error().Err(err).Str("component", "GetProducts").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient)
	}

	resp, err := c.service.GetProducts(e.Request().Context(), param)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, resp)
}

// GetProductByID godoc
// @Summary Get a product by ID
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} domain.Product
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /products/{id} [get]
func (c *ProductController) GetProductByID(e echo.Context) error {
	id := e.Param("id")

	product, err := c.service.GetProductByID(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, product)
}

// UpdateProduct godoc
// @Summary Partially update a product
// @Tags Products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param product body dto.ProductUpdateRequest true "Fields to update"
// @Success 200 {object} domain.Product
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /products/{id} [patch]
func (c *ProductController) UpdateProduct(e echo.Context) error {
	id := e.Param("id")

	payload := dto.ProductUpdateRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Error().Err(err).Str("component", "UpdateProduct").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient)
	}

	product, err := c.service.UpdateProduct(e.Request().Context(), id, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, product)
}

// AdjustStock godoc
// @Summary Adjust product stock
// @Tags Products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param adjustment body dto.StockAdjustmentRequest true "Signed adjustment and optional reason"
// @Success 200 {object} dto.StockAdjustmentResult
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /products/{id}/adjust-stock [patch]
func (c *ProductController) AdjustStock(e echo.Context) error {
	id := e.Param("id")

	payload := dto.StockAdjustmentRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Error().Err(err).Str("component", "AdjustStock").Msg("")
		return response.WriteErrorResponse(e, errs.ErrInvalidAdjustment)
	}

	result, err := c.service.AdjustStock(e.Request().Context(), id, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, result)
}

// DeleteProduct godoc
// @Summary Deactivate a product (soft delete)
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} dto.ProductDeleteResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /products/{id} [delete]
func (c *ProductController) DeleteProduct(e echo.Context) error {
	id := e.Param("id")

	product, err := c.service.DeleteProduct(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, dto.ProductDeleteResponse{
		Message: "Product deactivated successfully",
		Product: product,
	})
}
