package http

import "time"

// ErrorResponse is the uniform error body for every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type PlaceOrderResponse struct {
	ID string `json:"id"`
}

type CustomerOrderResponse struct {
	ID         string    `json:"id"`
	ItemName   string    `json:"item_name"`
	Price      string    `json:"price"`
	Status     string    `json:"status"`
	Acceptance string    `json:"acceptance"`
	Progress   string    `json:"progress"`
	CreatedAt  time.Time `json:"created_at"`
}

type MerchantBoardOrderResponse struct {
	OrderID    string    `json:"order_id"`
	CustomerID string    `json:"customer_id"`
	ItemName   string    `json:"item_name"`
	Price      string    `json:"price"`
	Acceptance string    `json:"acceptance"`
	Progress   string    `json:"progress"`
	CreatedAt  time.Time `json:"created_at"`
}

type ClaimableOrderResponse struct {
	OrderID      string    `json:"order_id"`
	ItemName     string    `json:"item_name"`
	Price        string    `json:"price"`
	DispatchedAt time.Time `json:"dispatched_at"`
}

type ReportResponse struct {
	UserID        string `json:"user_id"`
	ReportType    string `json:"report_type"`
	TotalReceived string `json:"total_received"`
	TotalDue      string `json:"total_due"`
	TotalOrders   int    `json:"total_orders"`
}

type ReviewResponse struct {
	ID         string    `json:"id"`
	OrderID    string    `json:"order_id"`
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}
