package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a catalog document. HoverImage falls back to Image when the
// admin leaves it empty.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name"          json:"name"`
	Price       float64            `bson:"price"         json:"price"`
	Category    string             `bson:"category"      json:"category"`
	Image       string             `bson:"image"         json:"image"`
	HoverImage  string             `bson:"hoverImage"    json:"hoverImage"`
	Description string             `bson:"description"   json:"description"`
	CreatedAt   time.Time          `bson:"createdAt"     json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"     json:"updatedAt"`
}

// MaxDescriptionLen caps the product description, mirrored by the admin form.
const MaxDescriptionLen = 500

// OrderItem is a cart line snapshot as it appears in an order payload.
type OrderItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Image    string  `json:"image"`
}

type CustomerInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Order lives only for the duration of one request and the two emails it
// triggers. There is no stored order record anywhere.
type Order struct {
	OrderNumber   string       `json:"orderNumber"`
	CustomerInfo  CustomerInfo `json:"customerInfo"`
	Items         []OrderItem  `json:"items"`
	Total         float64      `json:"total"`
	PaymentMethod string       `json:"paymentMethod"`
	BizumPhone    string       `json:"bizumPhone"`
}
