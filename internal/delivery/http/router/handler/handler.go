// Package handler contains the HTTP handlers for the application.
package handler

import (
	"time"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// currentUserID reads the authenticated user's ID set by the auth middleware.
func currentUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)

	return userID, ok
}

// parseUUIDParam parses a path parameter as a UUID.
func parseUUIDParam(c echo.Context, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Param(name))
}

// --- Response view models ---
// Entities are never serialized directly; views keep credential hashes and
// internal fields out of responses.

type userView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserView(user *entity.User) *userView {
	return &userView{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Phone:     user.Phone,
		Role:      user.Role.String(),
		CreatedAt: user.CreatedAt,
	}
}

func toUserViews(users []*entity.User) []*userView {
	views := make([]*userView, 0, len(users))
	for _, user := range users {
		views = append(views, toUserView(user))
	}

	return views
}

type productView struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Stock        int             `json:"stock"`
	CategoryID   uuid.UUID       `json:"category_id"`
	CategoryName string          `json:"category_name,omitempty"`
	Image        string          `json:"image,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

func toProductView(product *entity.Product) *productView {
	return &productView{
		ID:           product.ID,
		Name:         product.Name,
		Description:  product.Description,
		Price:        product.Price,
		Stock:        product.Stock,
		CategoryID:   product.CategoryID,
		CategoryName: product.CategoryName,
		Image:        product.Image,
		CreatedAt:    product.CreatedAt,
	}
}

func toProductViews(products []*entity.Product) []*productView {
	views := make([]*productView, 0, len(products))
	for _, product := range products {
		views = append(views, toProductView(product))
	}

	return views
}

type cartItemView struct {
	ID           uuid.UUID       `json:"id"`
	ProductID    uuid.UUID       `json:"product_id"`
	ProductName  string          `json:"product_name"`
	ProductPrice decimal.Decimal `json:"product_price"`
	ProductImage string          `json:"product_image,omitempty"`
	Quantity     int             `json:"quantity"`
	LineTotal    decimal.Decimal `json:"line_total"`
}

func toCartItemViews(items []*entity.CartItem) []*cartItemView {
	views := make([]*cartItemView, 0, len(items))
	for _, item := range items {
		views = append(views, &cartItemView{
			ID:           item.ID,
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			ProductPrice: item.ProductPrice,
			ProductImage: item.ProductImage,
			Quantity:     item.Quantity,
			LineTotal:    item.LineTotal(),
		})
	}

	return views
}

type orderItemView struct {
	ProductID    uuid.UUID       `json:"product_id"`
	ProductName  string          `json:"product_name,omitempty"`
	ProductImage string          `json:"product_image,omitempty"`
	Quantity     int             `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
	LineTotal    decimal.Decimal `json:"line_total"`
}

type orderView struct {
	ID              uuid.UUID        `json:"id"`
	TotalAmount     decimal.Decimal  `json:"total_amount"`
	Status          string           `json:"status"`
	ShippingAddress string           `json:"shipping_address"`
	ShippingCity    string           `json:"shipping_city"`
	ShippingZip     string           `json:"shipping_zip"`
	PaymentMethod   string           `json:"payment_method"`
	ItemCount       int              `json:"item_count"`
	Items           []*orderItemView `json:"items,omitempty"`
	CustomerName    string           `json:"customer_name,omitempty"`
	CustomerEmail   string           `json:"customer_email,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
}

func toOrderView(order *entity.Order) *orderView {
	view := &orderView{
		ID:              order.ID,
		TotalAmount:     order.TotalAmount,
		Status:          order.Status.String(),
		ShippingAddress: order.ShippingAddress,
		ShippingCity:    order.ShippingCity,
		ShippingZip:     order.ShippingZip,
		PaymentMethod:   order.PaymentMethod,
		ItemCount:       order.ItemCount,
		CustomerName:    order.CustomerName,
		CustomerEmail:   order.CustomerEmail,
		CreatedAt:       order.CreatedAt,
	}

	for _, item := range order.Items {
		view.Items = append(view.Items, &orderItemView{
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			ProductImage: item.ProductImage,
			Quantity:     item.Quantity,
			Price:        item.Price,
			LineTotal:    item.LineTotal(),
		})
	}

	return view
}

func toOrderViews(orders []*entity.Order) []*orderView {
	views := make([]*orderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, toOrderView(order))
	}

	return views
}

type reviewView struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	UserName  string    `json:"user_name"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

func toReviewView(review *entity.Review) *reviewView {
	return &reviewView{
		ID:        review.ID,
		ProductID: review.ProductID,
		UserName:  review.UserName,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}
}

func toReviewViews(reviews []*entity.Review) []*reviewView {
	views := make([]*reviewView, 0, len(reviews))
	for _, review := range reviews {
		views = append(views, toReviewView(review))
	}

	return views
}

type categoryView struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func toCategoryViews(categories []*entity.Category) []*categoryView {
	views := make([]*categoryView, 0, len(categories))
	for _, category := range categories {
		views = append(views, &categoryView{ID: category.ID, Name: category.Name})
	}

	return views
}
