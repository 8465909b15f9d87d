package http

// Request bodies for the order lifecycle API. Actor IDs travel in the body
// until an auth layer exists to derive them from credentials.

type PlaceOrderRequest struct {
	CustomerID string `json:"customer_id" validate:"required,uuid"`
	ItemID     string `json:"item_id" validate:"required,uuid"`
}

type ConfirmOrdersRequest struct {
	CustomerID string   `json:"customer_id" validate:"required,uuid"`
	OrderIDs   []string `json:"order_ids" validate:"omitempty,dive,uuid"`
}

type DecideOrderRequest struct {
	MerchantID string `json:"merchant_id" validate:"required,uuid"`
	Accept     *bool  `json:"accept" validate:"required"`
}

type DispatchOrderRequest struct {
	MerchantID string `json:"merchant_id" validate:"required,uuid"`
}

type ClaimDeliveryRequest struct {
	CourierID string `json:"courier_id" validate:"required,uuid"`
}

type AdvanceDeliveryRequest struct {
	CourierID string `json:"courier_id" validate:"required,uuid"`
	Stage     string `json:"stage" validate:"required,oneof=picking_up delivered"`
}

type ConfirmReceiptRequest struct {
	CustomerID string `json:"customer_id" validate:"required,uuid"`
}

type AddReviewRequest struct {
	AuthorID  string `json:"author_id" validate:"required,uuid"`
	SubjectID string `json:"subject_id" validate:"required,uuid"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment" validate:"max=500"`
}
