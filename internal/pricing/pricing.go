// Package pricing holds the pure price and loyalty-point arithmetic. All
// computation goes through decimals so fractional currency totals floor the
// same way the backend ledger does.
package pricing

import (
	"github.com/shopspring/decimal"

	"brewpoint/internal/cart"
)

// pointsRate is the loyalty accrual rate: 10% of the order total, floored.
var pointsRate = decimal.NewFromFloat(0.1)

// LineTotal is the unit price of a customized drink: base price plus the
// three option deltas.
func LineTotal(drinkPrice, beanDelta, milkDelta, syrupDelta float64) float64 {
	total := decimal.NewFromFloat(drinkPrice).
		Add(decimal.NewFromFloat(beanDelta)).
		Add(decimal.NewFromFloat(milkDelta)).
		Add(decimal.NewFromFloat(syrupDelta))
	f, _ := total.Float64()
	return f
}

// LineSubtotal is the line total multiplied by the quantity. Quantity below 1
// is clamped to 1, matching the cart invariant.
func LineSubtotal(lineTotal float64, quantity int) float64 {
	if quantity < 1 {
		quantity = 1
	}
	f, _ := decimal.NewFromFloat(lineTotal).
		Mul(decimal.NewFromInt(int64(quantity))).
		Float64()
	return f
}

// ItemTotal is the unit price of a cart line, from its customization-time
// snapshots.
func ItemTotal(item cart.Item) float64 {
	return LineTotal(
		item.Drink.Price,
		item.Customization.Bean.Price,
		item.Customization.Milk.Price,
		item.Customization.Syrup.Price,
	)
}

// CartTotal sums the line subtotals over all cart lines.
func CartTotal(items []cart.Item) float64 {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(decimal.NewFromFloat(LineSubtotal(ItemTotal(item), item.Quantity)))
	}
	f, _ := total.Float64()
	return f
}

// PointsEarned is floor(total * 0.1): integer loyalty points for an order
// total. The backend computes the authoritative value the same way.
func PointsEarned(total float64) int {
	return int(decimal.NewFromFloat(total).Mul(pointsRate).Floor().IntPart())
}
