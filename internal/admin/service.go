package admin

import (
	"context"

	"brewpoint/internal/api"
	"brewpoint/internal/catalog"
	"brewpoint/internal/order"
	"brewpoint/internal/user"
)

type CreateDrinkParams struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
}

// UpdateDrinkParams is a partial update; nil fields are left unchanged.
// Setting IsActive to false deactivates a drink without losing it from
// historical order lines.
type UpdateDrinkParams struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Image       *string  `json:"image,omitempty"`
	IsActive    *bool    `json:"is_active,omitempty"`
}

// Service is the token-gated catalog-management surface. Every call requires
// a logged-in session; a missing token fails immediately with
// ErrNotAuthenticated, a rejected one surfaces the backend's auth error.
type Service interface {
	ListOrders(ctx context.Context) ([]order.Order, error)
	ListUsers(ctx context.Context) ([]user.User, error)
	ListDrinks(ctx context.Context) ([]catalog.Drink, error)
	CreateDrink(ctx context.Context, params CreateDrinkParams) (*catalog.Drink, error)
	UpdateDrink(ctx context.Context, id string, params UpdateDrinkParams) (*catalog.Drink, error)
	DeleteDrink(ctx context.Context, id string) error
}

type service struct {
	client  *api.Client
	session *Session
}

func NewService(client *api.Client, session *Session) Service {
	return &service{client: client, session: session}
}

func (s *service) bearer() (api.RequestOption, error) {
	token := s.session.Token()
	if token == "" {
		return nil, ErrNotAuthenticated
	}
	return api.WithBearer(token), nil
}

func (s *service) ListOrders(ctx context.Context) ([]order.Order, error) {
	auth, err := s.bearer()
	if err != nil {
		return nil, err
	}
	var orders []order.Order
	if err := s.client.Get(ctx, "/admin/orders", &orders, auth); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *service) ListUsers(ctx context.Context) ([]user.User, error) {
	auth, err := s.bearer()
	if err != nil {
		return nil, err
	}
	var users []user.User
	if err := s.client.Get(ctx, "/admin/users", &users, auth); err != nil {
		return nil, err
	}
	return users, nil
}

// ListDrinks returns the full catalog including inactive drinks, unlike the
// shopper-facing menu.
func (s *service) ListDrinks(ctx context.Context) ([]catalog.Drink, error) {
	auth, err := s.bearer()
	if err != nil {
		return nil, err
	}
	var drinks []catalog.Drink
	if err := s.client.Get(ctx, "/admin/drinks", &drinks, auth); err != nil {
		return nil, err
	}
	return drinks, nil
}

func (s *service) CreateDrink(ctx context.Context, params CreateDrinkParams) (*catalog.Drink, error) {
	auth, err := s.bearer()
	if err != nil {
		return nil, err
	}
	var drink catalog.Drink
	if err := s.client.Post(ctx, "/admin/drinks", params, &drink, auth); err != nil {
		return nil, err
	}
	return &drink, nil
}

func (s *service) UpdateDrink(ctx context.Context, id string, params UpdateDrinkParams) (*catalog.Drink, error) {
	auth, err := s.bearer()
	if err != nil {
		return nil, err
	}
	var drink catalog.Drink
	if err := s.client.Put(ctx, "/admin/drinks/"+id, params, &drink, auth); err != nil {
		return nil, err
	}
	return &drink, nil
}

func (s *service) DeleteDrink(ctx context.Context, id string) error {
	auth, err := s.bearer()
	if err != nil {
		return err
	}
	return s.client.Delete(ctx, "/admin/drinks/"+id, auth)
}
