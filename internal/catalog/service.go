package catalog

import (
	"context"

	"brewpoint/internal/api"
)

// Service reads the drink menu and customization option catalogs from the
// backend. It never mutates anything.
type Service interface {
	ListDrinks(ctx context.Context) ([]Drink, error)
	GetDrink(ctx context.Context, id string) (*Drink, error)
	BeanOptions(ctx context.Context) ([]Option, error)
	MilkOptions(ctx context.Context) ([]Option, error)
	SyrupOptions(ctx context.Context) ([]Option, error)
	Options(ctx context.Context) (*OptionSet, error)
}

type service struct {
	client *api.Client
}

func NewService(client *api.Client) Service {
	return &service{client: client}
}

func (s *service) ListDrinks(ctx context.Context) ([]Drink, error) {
	var drinks []Drink
	if err := s.client.Get(ctx, "/drinks", &drinks); err != nil {
		return nil, err
	}
	return drinks, nil
}

func (s *service) GetDrink(ctx context.Context, id string) (*Drink, error) {
	var drink Drink
	if err := s.client.Get(ctx, "/drinks/"+id, &drink); err != nil {
		return nil, err
	}
	return &drink, nil
}

func (s *service) BeanOptions(ctx context.Context) ([]Option, error) {
	return s.options(ctx, "beans")
}

func (s *service) MilkOptions(ctx context.Context) ([]Option, error) {
	return s.options(ctx, "milk")
}

func (s *service) SyrupOptions(ctx context.Context) ([]Option, error) {
	return s.options(ctx, "syrups")
}

// Options fetches all three option catalogs in sequence, for the
// customization flow.
func (s *service) Options(ctx context.Context) (*OptionSet, error) {
	beans, err := s.BeanOptions(ctx)
	if err != nil {
		return nil, err
	}
	milk, err := s.MilkOptions(ctx)
	if err != nil {
		return nil, err
	}
	syrups, err := s.SyrupOptions(ctx)
	if err != nil {
		return nil, err
	}
	return &OptionSet{Beans: beans, Milk: milk, Syrups: syrups}, nil
}

func (s *service) options(ctx context.Context, class string) ([]Option, error) {
	var opts []Option
	if err := s.client.Get(ctx, "/drinks/options/"+class, &opts); err != nil {
		return nil, err
	}
	return opts, nil
}
