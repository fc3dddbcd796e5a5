package domain

import (
	"time"
)

// ProductFilter is the facet bag attached to a product. Material and color
// are single-valued; occasion is a non-exclusive tag set.
type ProductFilter struct {
	Material string   `json:"material"`
	Color    string   `json:"color"`
	Occasion []string `json:"occasion"`
}

// Product represents a catalog product as served by the storefront API
type Product struct {
	ID                string        `json:"_id"`
	Title             string        `json:"title"`
	Description       string        `json:"description,omitempty"`
	SellingPrice      Money         `json:"sellingPrice"`
	OriginalPrice     Money         `json:"originalPrice"`
	AvailableQuantity int           `json:"availableQuantity"`
	Status            ProductStatus `json:"status"`
	Filter            ProductFilter `json:"filter"`
	Images            []string      `json:"images,omitempty"`
	CreatedAt         time.Time     `json:"createdAt"`
	UpdatedAt         time.Time     `json:"updatedAt"`
}

// LowStockThreshold - products below this quantity surface on the dashboard.
// Zero quantity is an (out-of-stock) low-stock state, not a separate flag.
const LowStockThreshold = 10

// IsLowStock reports whether the product qualifies for the low-stock alert
func (p *Product) IsLowStock() bool {
	return p.AvailableQuantity < LowStockThreshold
}

// OrderItem is one line of an order
type OrderItem struct {
	ProductID string `json:"product"`
	Title     string `json:"title,omitempty"`
	UnitPrice Money  `json:"price"`
	Quantity  int    `json:"quantity"`
}

// Order represents a store order. TotalAmount is stored independently by
// the storefront and is not assumed to equal the sum of item subtotals.
type Order struct {
	ID            string        `json:"_id"`
	OrderID       string        `json:"orderId"`
	UserID        string        `json:"user,omitempty"` // empty for anonymous checkout
	Items         []OrderItem   `json:"items"`
	TotalAmount   Money         `json:"totalAmount"`
	OrderStatus   OrderStatus   `json:"orderStatus"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	IsPaid        bool          `json:"isPaid"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// IsCompleted reports whether the order counts toward sales totals
func (o *Order) IsCompleted() bool {
	return o.PaymentStatus == PaymentStatusCompleted && o.IsPaid
}

// Customer represents a storefront account holder
type Customer struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Banner represents a homepage promotional banner
type Banner struct {
	ID        string    `json:"_id"`
	Title     string    `json:"title"`
	ImageURL  string    `json:"imageUrl"`
	Link      string    `json:"link,omitempty"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// Review represents a product review left by a customer
type Review struct {
	ID        string    `json:"_id"`
	ProductID string    `json:"product"`
	UserID    string    `json:"user"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
