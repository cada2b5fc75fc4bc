package dto

type OrderItemRequest struct {
	ProductID   uint   `json:"product_id" validate:"required"`
	Quantity    int    `json:"quantity" validate:"required,gt=0"`
	NoOfEnds    int    `json:"no_of_ends"`
	CreelType   string `json:"creel_type"`
	CreelPitch  int    `json:"creel_pitch"`
	BobinLength int    `json:"bobin_length"`
}

type PlaceOrderRequest struct {
	UserID       uint               `json:"user_id" validate:"required"`
	OrderDetails []OrderItemRequest `json:"order_details" validate:"required,min=1,dive"`
}
