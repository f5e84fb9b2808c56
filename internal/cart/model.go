package cart

import (
	"fmt"
	"time"

	"brewpoint/internal/catalog"
)

// Customization is the chosen bean/milk/syrup triple for a drink. Full option
// snapshots are captured so price deltas never need a second catalog lookup.
type Customization struct {
	Bean  catalog.Option `json:"bean"`
	Milk  catalog.Option `json:"milk"`
	Syrup catalog.Option `json:"syrup"`
}

// Item is one customized-drink-and-quantity entry in the pending order. The
// drink is a snapshot taken at customization time, not re-fetched at checkout.
type Item struct {
	ID            string        `json:"id"`
	Drink         catalog.Drink `json:"drink"`
	Customization Customization `json:"customization"`
	Quantity      int           `json:"quantity"`
}

// NewItemID builds a line id unique within a session: the drink id plus a
// high-resolution timestamp.
func NewItemID(drinkID string) string {
	return fmt.Sprintf("%s-%d", drinkID, time.Now().UnixNano())
}
