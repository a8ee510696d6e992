package transport

import "github.com/sizzilia/storefront/internal/models"

type CreateProductRequest struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	HoverImage  string  `json:"hoverImage"`
	Description string  `json:"description"`
}

// UpdateProductRequest carries only the fields the admin actually sent;
// absent fields keep their stored value.
type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	Image       *string  `json:"image"`
	HoverImage  *string  `json:"hoverImage"`
	Description *string  `json:"description"`
}

type ProcessOrderRequest struct {
	CustomerInfo models.CustomerInfo `json:"customerInfo"`
	Items        []models.OrderItem  `json:"items"`
	Total        float64             `json:"total"`
	BizumPhone   string              `json:"bizumPhone"`
}

type ProcessOrderResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	OrderNumber string `json:"orderNumber"`
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}
