package order

import "brewpoint/internal/catalog"

// ItemRequest is one order line as submitted to the backend: identifiers of
// the chosen options and the client-computed unit price (drink base price
// plus the three option deltas, captured at customization time).
type ItemRequest struct {
	DrinkID     string  `json:"drink_id" validate:"required"`
	Quantity    int     `json:"quantity" validate:"min=1"`
	BeanOption  string  `json:"bean_option" validate:"required"`
	MilkOption  string  `json:"milk_option" validate:"required"`
	SyrupOption string  `json:"syrup_option" validate:"required"`
	Price       float64 `json:"price" validate:"gte=0"`
}

// CreateRequest is the create-order payload. Total and points are computed
// client-side; the backend recomputes points for its own ledger.
type CreateRequest struct {
	UserID       string        `json:"user_id" validate:"required"`
	Total        float64       `json:"total" validate:"gte=0"`
	PointsEarned int           `json:"points_earned" validate:"gte=0"`
	Items        []ItemRequest `json:"items" validate:"required,min=1,dive"`
}

// Item is a persisted order line returned by the backend, possibly enriched
// with its drink.
type Item struct {
	ID          string         `json:"id"`
	OrderID     string         `json:"order_id"`
	DrinkID     string         `json:"drink_id"`
	Quantity    int            `json:"quantity"`
	BeanOption  string         `json:"bean_option"`
	MilkOption  string         `json:"milk_option"`
	SyrupOption string         `json:"syrup_option"`
	Price       float64        `json:"price"`
	Drink       *catalog.Drink `json:"drink,omitempty"`
}

// Order is the backend-owned order record. Immutable once created; the
// client only reads it.
type Order struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	Total        float64 `json:"total"`
	PointsEarned int     `json:"points_earned"`
	CreatedAt    string  `json:"created_at"`
	Items        []Item  `json:"items"`
}
