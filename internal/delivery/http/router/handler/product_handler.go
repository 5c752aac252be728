package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler holds dependencies for public catalog handlers.
type ProductHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: logger,
	}
}

// listProductsInputFromQuery parses the shared catalog filter query params.
func listProductsInputFromQuery(c echo.Context) (*usecase.ListProductsInput, error) {
	input := &usecase.ListProductsInput{
		Search: c.QueryParam("search"),
	}

	if raw := c.QueryParam("category"); raw != "" {
		categoryID, err := uuid.Parse(raw)
		if err != nil {
			return nil, errors.Wrap(err, "invalid category id")
		}
		input.CategoryID = &categoryID
	}
	if raw := c.QueryParam("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.Wrap(err, "invalid page")
		}
		input.Page = page
	}
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.Wrap(err, "invalid limit")
		}
		input.Limit = limit
	}

	return input, nil
}

type productListResponse struct {
	Products   []*productView `json:"products"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"total_pages"`
}

// ListProducts handles the storefront catalog listing.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	input, err := listProductsInputFromQuery(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid catalog filters")
	}

	output, err := h.uc.ListProducts(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, productListResponse{
		Products:   toProductViews(output.Products),
		Total:      output.Total,
		Page:       output.Page,
		Limit:      output.Limit,
		TotalPages: output.TotalPages,
	}, "Products retrieved successfully")
}

type productDetailResponse struct {
	Product       *productView  `json:"product"`
	Reviews       []*reviewView `json:"reviews"`
	AverageRating float64       `json:"average_rating"`
}

// GetProduct handles the product detail page.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	productID, err := parseUUIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	output, err := h.uc.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, productDetailResponse{
		Product:       toProductView(output.Product),
		Reviews:       toReviewViews(output.Reviews),
		AverageRating: output.AverageRating,
	}, "Product retrieved successfully")
}

// ListCategories handles the category listing.
func (h *ProductHandler) ListCategories(c echo.Context) error {
	categories, err := h.uc.ListCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCategoryViews(categories), "Categories retrieved successfully")
}
