package user

import (
	"context"

	"brewpoint/internal/api"
	"brewpoint/internal/order"
)

type Service interface {
	Get(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, params CreateParams) (*User, error)
	Update(ctx context.Context, id string, params UpdateParams) (*User, error)
	Orders(ctx context.Context, id string) ([]order.Order, error)
}

type service struct {
	client *api.Client
}

func NewService(client *api.Client) Service {
	return &service{client: client}
}

func (s *service) Get(ctx context.Context, id string) (*User, error) {
	var u User
	if err := s.client.Get(ctx, "/users/"+id, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *service) Create(ctx context.Context, params CreateParams) (*User, error) {
	var u User
	if err := s.client.Post(ctx, "/users", params, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *service) Update(ctx context.Context, id string, params UpdateParams) (*User, error) {
	var u User
	if err := s.client.Put(ctx, "/users/"+id, params, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *service) Orders(ctx context.Context, id string) ([]order.Order, error) {
	var orders []order.Order
	if err := s.client.Get(ctx, "/users/"+id+"/orders", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
