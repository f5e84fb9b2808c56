package order

import (
	"context"
	"fmt"

	"brewpoint/internal/api"
	"brewpoint/internal/cart"
	"brewpoint/internal/logger"
	"brewpoint/internal/pricing"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Service converts the cart into an order submission and performs the single
// create-order call. On success the cart is cleared; on failure it is left
// untouched and the error surfaces to the caller. Nothing is retried.
type Service interface {
	Checkout(ctx context.Context, userID string) (*Order, error)
}

type service struct {
	client   *api.Client
	cart     *cart.Store
	validate *validator.Validate
}

func NewService(client *api.Client, cartStore *cart.Store) Service {
	return &service{
		client:   client,
		cart:     cartStore,
		validate: validator.New(),
	}
}

func (s *service) Checkout(ctx context.Context, userID string) (*Order, error) {
	items := s.cart.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	req := BuildCreateRequest(userID, items)
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOrder, err)
	}

	var created Order
	if err := s.client.Post(ctx, "/users/"+userID+"/orders", req, &created); err != nil {
		return nil, err
	}

	// The order exists server-side now; a failed local clear must not turn
	// a successful checkout into an error.
	if err := s.cart.Clear(); err != nil {
		logger.FromCtx(ctx).Warn("failed to clear cart after checkout",
			zap.String("order_id", created.ID), zap.Error(err))
	}

	logger.FromCtx(ctx).Info("order created",
		zap.String("order_id", created.ID),
		zap.Float64("total", created.Total),
		zap.Int("points_earned", created.PointsEarned),
	)
	return &created, nil
}

// BuildCreateRequest derives the order payload from the cart lines. Prices
// come from the customization-time snapshots, never a fresh catalog lookup.
func BuildCreateRequest(userID string, items []cart.Item) CreateRequest {
	reqItems := make([]ItemRequest, 0, len(items))
	for _, item := range items {
		reqItems = append(reqItems, ItemRequest{
			DrinkID:     item.Drink.ID,
			Quantity:    item.Quantity,
			BeanOption:  item.Customization.Bean.ID,
			MilkOption:  item.Customization.Milk.ID,
			SyrupOption: item.Customization.Syrup.ID,
			Price:       pricing.ItemTotal(item),
		})
	}

	total := pricing.CartTotal(items)
	return CreateRequest{
		UserID:       userID,
		Total:        total,
		PointsEarned: pricing.PointsEarned(total),
		Items:        reqItems,
	}
}
