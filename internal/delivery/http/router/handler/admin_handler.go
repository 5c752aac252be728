package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// AdminHandler holds dependencies for back-office handlers. The router
// guards every route here behind the admin role.
type AdminHandler struct {
	uc     usecase.AdminUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		uc:     uc,
		logger: logger,
	}
}

type statisticsResponse struct {
	TotalUsers    int64           `json:"total_users"`
	TotalProducts int64           `json:"total_products"`
	TotalOrders   int64           `json:"total_orders"`
	PendingOrders int64           `json:"pending_orders"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
}

// Statistics handles the dashboard summary.
func (h *AdminHandler) Statistics(c echo.Context) error {
	stats, err := h.uc.Statistics(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, statisticsResponse{
		TotalUsers:    stats.TotalUsers,
		TotalProducts: stats.TotalProducts,
		TotalOrders:   stats.TotalOrders,
		PendingOrders: stats.PendingOrders,
		TotalRevenue:  stats.TotalRevenue,
	}, "Statistics retrieved successfully")
}

// ListProducts handles the back-office product listing, including
// out-of-stock products.
func (h *AdminHandler) ListProducts(c echo.Context) error {
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

type productRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description" validate:"omitempty,max=5000"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Stock       int             `json:"stock" validate:"min=0"`
	CategoryID  uuid.UUID       `json:"category_id" validate:"required"`
	Image       string          `json:"image" validate:"omitempty,max=500"`
}

// CreateProduct handles adding a catalog product.
func (h *AdminHandler) CreateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), &usecase.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		CategoryID:  req.CategoryID,
		Image:       req.Image,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toProductView(product), "Product created successfully")
}

// UpdateProduct handles overwriting a product's catalog fields.
func (h *AdminHandler) UpdateProduct(c echo.Context) error {
	productID, err := parseUUIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), productID, &usecase.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		CategoryID:  req.CategoryID,
		Image:       req.Image,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductView(product), "Product updated successfully")
}

// DeleteProduct handles removing a product from the catalog.
func (h *AdminHandler) DeleteProduct(c echo.Context) error {
	productID, err := parseUUIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), productID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted successfully")
}

// ListOrders handles the back-office order listing.
func (h *AdminHandler) ListOrders(c echo.Context) error {
	orders, err := h.uc.ListOrders(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderViews(orders), "Orders retrieved successfully")
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateOrderStatus handles replacing an order's status.
func (h *AdminHandler) UpdateOrderStatus(c echo.Context) error {
	orderID, err := parseUUIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order id")
	}

	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.UpdateOrderStatus(c.Request().Context(), orderID, req.Status); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Order status updated successfully")
}

// ListUsers handles the back-office account listing.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserViews(users), "Users retrieved successfully")
}

// ListCategories handles the back-office category listing.
func (h *AdminHandler) ListCategories(c echo.Context) error {
	categories, err := h.uc.ListCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCategoryViews(categories), "Categories retrieved successfully")
}
