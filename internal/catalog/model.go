package catalog

// Drink is a menu entry. Inactive drinks are excluded from the shopper-facing
// menu but kept by the backend for historical order lines.
type Drink struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	IsActive    bool    `json:"is_active"`
}

// Option is one entry of a customization class (bean, milk or syrup). Price
// is a non-negative delta added to the drink's base price.
type Option struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// OptionSet holds the three option catalogs a drink can be customized with.
type OptionSet struct {
	Beans  []Option
	Milk   []Option
	Syrups []Option
}

// FindOption returns the option with the given id, or nil.
func FindOption(opts []Option, id string) *Option {
	for i := range opts {
		if opts[i].ID == id {
			return &opts[i]
		}
	}
	return nil
}
