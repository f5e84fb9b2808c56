package user_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brewpoint/internal/api"
	"brewpoint/internal/apitest"
	"brewpoint/internal/cart"
	"brewpoint/internal/catalog"
	"brewpoint/internal/order"
	"brewpoint/internal/storage"
	"brewpoint/internal/user"
)

func fixture(t *testing.T) (user.Service, *api.Client, *apitest.Server) {
	t.Helper()
	backend := apitest.New()
	srv := httptest.NewServer(backend.Router())
	t.Cleanup(srv.Close)
	client := api.NewClient(srv.URL+"/api", 5*time.Second)
	return user.NewService(client), client, backend
}

func TestGet(t *testing.T) {
	svc, _, _ := fixture(t)

	u, err := svc.Get(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", u.ID)
	assert.Equal(t, 0, u.Points)

	_, err = svc.Get(context.Background(), "user-404")
	require.Error(t, err)
	assert.EqualError(t, err, "User not found")
}

func TestCreate(t *testing.T) {
	svc, _, _ := fixture(t)

	avatar := "https://example.test/a.png"
	u, err := svc.Create(context.Background(), user.CreateParams{Name: "Dana", Avatar: &avatar})
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "Dana", u.Name)
	assert.Equal(t, 0, u.Points)
	require.NotNil(t, u.Avatar)
	assert.Equal(t, avatar, *u.Avatar)
}

func TestUpdate(t *testing.T) {
	svc, _, _ := fixture(t)

	name := "Alexandra"
	u, err := svc.Update(context.Background(), "user-1", user.UpdateParams{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Alexandra", u.Name)
	assert.Equal(t, 0, u.Points, "untouched fields stay as they were")
}

func TestOrders(t *testing.T) {
	svc, client, _ := fixture(t)
	ctx := context.Background()

	orders, err := svc.Orders(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, orders)

	// place an order through the same backend and read it back
	st, err := storage.New(t.TempDir())
	require.NoError(t, err)
	cartStore := cart.NewStore(st)
	require.NoError(t, cartStore.Add(cart.Item{
		ID:    cart.NewItemID("latte"),
		Drink: catalog.Drink{ID: "latte", Price: 190, IsActive: true},
		Customization: cart.Customization{
			Bean:  catalog.Option{ID: "arabica"},
			Milk:  catalog.Option{ID: "regular"},
			Syrup: catalog.Option{ID: "none"},
		},
		Quantity: 1,
	}))
	_, err = order.NewService(client, cartStore).Checkout(ctx, "user-1")
	require.NoError(t, err)

	orders, err = svc.Orders(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, 190.0, orders[0].Total)
}
