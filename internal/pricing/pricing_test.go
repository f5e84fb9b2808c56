package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"brewpoint/internal/cart"
	"brewpoint/internal/catalog"
)

func TestLineTotal(t *testing.T) {
	assert.Equal(t, 220.0, LineTotal(150, 0, 30, 40))
	assert.Equal(t, 150.0, LineTotal(150, 0, 0, 0))
	assert.Equal(t, 0.0, LineTotal(0, 0, 0, 0))

	// commutative in the deltas
	assert.Equal(t, LineTotal(150, 10, 30, 40), LineTotal(150, 40, 10, 30))

	// exact with fractional currency
	assert.Equal(t, 0.3, LineTotal(0.1, 0.1, 0.1, 0))
}

func TestLineSubtotal(t *testing.T) {
	assert.Equal(t, 440.0, LineSubtotal(220, 2))
	assert.Equal(t, 220.0, LineSubtotal(220, 1))

	// quantity below 1 clamps to 1
	assert.Equal(t, 220.0, LineSubtotal(220, 0))
	assert.Equal(t, 220.0, LineSubtotal(220, -5))
}

func TestPointsEarned(t *testing.T) {
	cases := []struct {
		total  float64
		points int
	}{
		{150, 15},
		{199, 19},
		{0, 0},
		{440, 44},
		{9.99, 0},
		{10, 1},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.points, PointsEarned(tc.total), "total=%v", tc.total)
	}
}

func testItem(price, bean, milk, syrup float64, qty int) cart.Item {
	return cart.Item{
		ID:    "line-1",
		Drink: catalog.Drink{ID: "d", Price: price},
		Customization: cart.Customization{
			Bean:  catalog.Option{ID: "b", Price: bean},
			Milk:  catalog.Option{ID: "m", Price: milk},
			Syrup: catalog.Option{ID: "s", Price: syrup},
		},
		Quantity: qty,
	}
}

func TestItemTotal(t *testing.T) {
	assert.Equal(t, 220.0, ItemTotal(testItem(150, 0, 30, 40, 2)))
}

func TestCartTotal(t *testing.T) {
	t.Run("Empty cart", func(t *testing.T) {
		assert.Equal(t, 0.0, CartTotal(nil))
	})

	t.Run("Sums line subtotals", func(t *testing.T) {
		items := []cart.Item{
			testItem(150, 0, 30, 40, 2), // 440
			testItem(190, 5, 0, 0, 1),   // 195
		}
		assert.Equal(t, 635.0, CartTotal(items))
	})
}

func TestCheckoutScenario(t *testing.T) {
	// cart = one line: drink 150, bean +0, milk +30, syrup +40, qty 2
	item := testItem(150, 0, 30, 40, 2)

	unit := ItemTotal(item)
	assert.Equal(t, 220.0, unit)

	total := CartTotal([]cart.Item{item})
	assert.Equal(t, 440.0, total)
	assert.Equal(t, 44, PointsEarned(total))
}
