package apitest

import (
	"brewpoint/internal/catalog"
	"brewpoint/internal/user"
)

func seedDrinks() []catalog.Drink {
	return []catalog.Drink{
		{ID: "americano", Name: "Americano", Description: "Espresso with hot water", Price: 150, Image: "americano.jpg", IsActive: true},
		{ID: "cappuccino", Name: "Cappuccino", Description: "Espresso with milk foam", Price: 180, Image: "cappuccino.jpg", IsActive: true},
		{ID: "latte", Name: "Latte", Description: "Mild coffee with milk", Price: 190, Image: "latte.jpg", IsActive: true},
		{ID: "filter", Name: "Filter coffee", Description: "Slow-brewed alternative", Price: 170, Image: "filter.jpg", IsActive: true},
		{ID: "hot-chocolate", Name: "Hot chocolate", Description: "Warming chocolate drink", Price: 200, Image: "hot-chocolate.jpg", IsActive: true},
	}
}

func seedBeans() []catalog.Option {
	return []catalog.Option{
		{ID: "arabica", Name: "Arabica", Price: 0},
		{ID: "robusta", Name: "Robusta", Price: 10},
		{ID: "blend", Name: "Blend", Price: 5},
	}
}

func seedMilk() []catalog.Option {
	return []catalog.Option{
		{ID: "regular", Name: "Regular", Price: 0},
		{ID: "almond", Name: "Almond", Price: 30},
		{ID: "oat", Name: "Oat", Price: 30},
		{ID: "soy", Name: "Soy", Price: 25},
		{ID: "coconut", Name: "Coconut", Price: 35},
	}
}

func seedSyrups() []catalog.Option {
	return []catalog.Option{
		{ID: "none", Name: "No syrup", Price: 0},
		{ID: "vanilla", Name: "Vanilla", Price: 40},
		{ID: "caramel", Name: "Caramel", Price: 40},
	}
}

func seedUsers() []*user.User {
	return []*user.User{
		{ID: "user-1", Name: "Alex", Points: 0, CreatedAt: "2026-01-01T00:00:00Z"},
	}
}
