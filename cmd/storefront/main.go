package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"brewpoint/internal/admin"
	"brewpoint/internal/api"
	"brewpoint/internal/cart"
	"brewpoint/internal/catalog"
	"brewpoint/internal/config"
	"brewpoint/internal/logger"
	"brewpoint/internal/order"
	"brewpoint/internal/pricing"
	"brewpoint/internal/profile"
	"brewpoint/internal/storage"
	"brewpoint/internal/user"
)

const usage = `usage: storefront <command> [args]

shopper commands:
  menu                                  list available drinks
  drink <id>                            show a drink and its options
  add <drink> <bean> <milk> <syrup> [qty]  customize a drink and add it to the cart
  cart                                  show the cart with totals
  qty <line-id> <n>                     change a line's quantity
  remove <line-id>                      remove a line
  clear                                 empty the cart
  checkout                              submit the cart as an order
  profile                               show loyalty points and order history
  orders                                list my past orders
  signup <name> [avatar-url]            create a new user account

admin commands:
  admin login <username> <password>
  admin logout
  admin orders | users | drinks
  admin create-drink <name> <price> <description> <image>
  admin update-drink <id> [-name v] [-description v] [-price v] [-image v] [-active true|false]
  admin delete-drink <id>
`

type app struct {
	cfg     *config.Config
	catalog catalog.Service
	cart    *cart.Store
	orders  order.Service
	users   user.Service
	profile *profile.View
	session *admin.Session
	admin   admin.Service
}

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	store, err := storage.New(cfg.StateDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	client := api.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout)
	session := admin.NewSession(client, store)
	cartStore := cart.NewStore(store)

	a := &app{
		cfg:     cfg,
		catalog: catalog.NewService(client),
		cart:    cartStore,
		orders:  order.NewService(client, cartStore),
		users:   user.NewService(client),
		profile: profile.NewView(client, cfg.DefaultUserID),
		session: session,
		admin:   admin.NewService(client, session),
	}

	if err := a.run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Print(usage)
		return nil
	}

	switch args[0] {
	case "menu":
		return a.menu(ctx)
	case "drink":
		if len(args) < 2 {
			return fmt.Errorf("usage: drink <id>")
		}
		return a.drink(ctx, args[1])
	case "add":
		if len(args) < 5 {
			return fmt.Errorf("usage: add <drink> <bean> <milk> <syrup> [qty]")
		}
		qty := 1
		if len(args) > 5 {
			n, err := strconv.Atoi(args[5])
			if err != nil {
				return fmt.Errorf("quantity must be an integer")
			}
			qty = n
		}
		return a.add(ctx, args[1], args[2], args[3], args[4], qty)
	case "cart":
		return a.showCart()
	case "qty":
		if len(args) < 3 {
			return fmt.Errorf("usage: qty <line-id> <n>")
		}
		n, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("quantity must be an integer")
		}
		return a.cart.SetQuantity(args[1], n)
	case "remove":
		if len(args) < 2 {
			return fmt.Errorf("usage: remove <line-id>")
		}
		return a.cart.Remove(args[1])
	case "clear":
		return a.cart.Clear()
	case "checkout":
		return a.checkout(ctx)
	case "profile":
		return a.showProfile(ctx)
	case "orders":
		return a.listOrders(ctx)
	case "signup":
		if len(args) < 2 {
			return fmt.Errorf("usage: signup <name> [avatar-url]")
		}
		var avatar *string
		if len(args) > 2 {
			avatar = &args[2]
		}
		u, err := a.users.Create(ctx, user.CreateParams{Name: args[1], Avatar: avatar})
		if err != nil {
			return err
		}
		fmt.Printf("created user %s (set DEFAULT_USER_ID=%s to shop as them)\n", u.ID, u.ID)
		return nil
	case "admin":
		if len(args) < 2 {
			return fmt.Errorf("usage: admin <subcommand>")
		}
		return a.runAdmin(ctx, args[1], args[2:])
	default:
		fmt.Print(usage)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func (a *app) menu(ctx context.Context) error {
	drinks, err := a.catalog.ListDrinks(ctx)
	if err != nil {
		return err
	}
	for _, d := range drinks {
		fmt.Printf("%-14s %-18s %8.2f\n", d.ID, d.Name, d.Price)
	}
	return nil
}

func (a *app) drink(ctx context.Context, id string) error {
	d, err := a.catalog.GetDrink(ctx, id)
	if err != nil {
		return err
	}
	opts, err := a.catalog.Options(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%s — %s (%0.2f)\n%s\n", d.Name, d.ID, d.Price, d.Description)
	printOptions := func(label string, options []catalog.Option) {
		fmt.Println(label + ":")
		for _, o := range options {
			fmt.Printf("  %-10s %-14s +%0.2f\n", o.ID, o.Name, o.Price)
		}
	}
	printOptions("beans", opts.Beans)
	printOptions("milk", opts.Milk)
	printOptions("syrups", opts.Syrups)
	return nil
}

func (a *app) add(ctx context.Context, drinkID, beanID, milkID, syrupID string, qty int) error {
	d, err := a.catalog.GetDrink(ctx, drinkID)
	if err != nil {
		return err
	}
	opts, err := a.catalog.Options(ctx)
	if err != nil {
		return err
	}

	bean := catalog.FindOption(opts.Beans, beanID)
	milk := catalog.FindOption(opts.Milk, milkID)
	syrup := catalog.FindOption(opts.Syrups, syrupID)
	if bean == nil || milk == nil || syrup == nil {
		return fmt.Errorf("unknown option (bean=%s milk=%s syrup=%s)", beanID, milkID, syrupID)
	}

	item := cart.Item{
		ID:    cart.NewItemID(d.ID),
		Drink: *d,
		Customization: cart.Customization{
			Bean:  *bean,
			Milk:  *milk,
			Syrup: *syrup,
		},
		Quantity: qty,
	}
	if err := a.cart.Add(item); err != nil {
		return err
	}
	fmt.Printf("added %s (line %s, unit price %0.2f)\n", d.Name, item.ID, pricing.ItemTotal(item))
	return nil
}

func (a *app) showCart() error {
	items := a.cart.Items()
	if len(items) == 0 {
		fmt.Println("cart is empty")
		return nil
	}
	for _, item := range items {
		unit := pricing.ItemTotal(item)
		fmt.Printf("%-28s %-14s x%d  %8.2f\n", item.ID, item.Drink.Name, item.Quantity,
			pricing.LineSubtotal(unit, item.Quantity))
		fmt.Printf("    bean=%s milk=%s syrup=%s\n",
			item.Customization.Bean.Name, item.Customization.Milk.Name, item.Customization.Syrup.Name)
	}
	total := pricing.CartTotal(items)
	fmt.Printf("total: %0.2f (earns %d points)\n", total, pricing.PointsEarned(total))
	return nil
}

func (a *app) checkout(ctx context.Context) error {
	// Checkout is not reachable with an empty cart.
	if a.cart.Len() == 0 {
		return fmt.Errorf("cart is empty, nothing to check out")
	}
	o, err := a.orders.Checkout(ctx, a.cfg.DefaultUserID)
	if err != nil {
		return err
	}
	fmt.Printf("order %s placed: total %0.2f, earned %d points\n", o.ID, o.Total, o.PointsEarned)
	return nil
}

func (a *app) showProfile(ctx context.Context) error {
	if err := a.profile.Load(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "profile unavailable: %v\n", err)
	}
	p := a.profile.Profile()
	fmt.Printf("%s — %d points [%s]\n", p.User.Name, p.User.Points, a.profile.Status())
	fmt.Printf("spent %0.2f, earned %d points over %d orders\n",
		p.TotalSpent, p.TotalPointsEarned, len(p.OrderHistory))
	for _, h := range p.OrderHistory {
		fmt.Printf("  %-10s %s  %8.2f  +%d pts\n", h.ID, h.Date, h.Total, h.PointsEarned)
	}
	return nil
}

func (a *app) listOrders(ctx context.Context) error {
	orders, err := a.users.Orders(ctx, a.cfg.DefaultUserID)
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		fmt.Println("no orders yet")
		return nil
	}
	for _, o := range orders {
		fmt.Printf("%-10s %s  %8.2f  +%d pts\n", o.ID, o.CreatedAt, o.Total, o.PointsEarned)
	}
	return nil
}

func (a *app) runAdmin(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "login":
		if len(args) < 2 {
			return fmt.Errorf("usage: admin login <username> <password>")
		}
		if err := a.session.Login(ctx, args[0], args[1]); err != nil {
			return err
		}
		fmt.Println("logged in")
		return nil
	case "logout":
		return a.session.Logout()
	case "orders":
		orders, err := a.admin.ListOrders(ctx)
		if err != nil {
			return err
		}
		for _, o := range orders {
			fmt.Printf("%-10s %-8s %8.2f  +%d pts  %s\n", o.ID, o.UserID, o.Total, o.PointsEarned, o.CreatedAt)
		}
		return nil
	case "users":
		users, err := a.admin.ListUsers(ctx)
		if err != nil {
			return err
		}
		for _, u := range users {
			fmt.Printf("%-10s %-16s %d pts\n", u.ID, u.Name, u.Points)
		}
		return nil
	case "drinks":
		drinks, err := a.admin.ListDrinks(ctx)
		if err != nil {
			return err
		}
		for _, d := range drinks {
			state := "active"
			if !d.IsActive {
				state = "inactive"
			}
			fmt.Printf("%-14s %-18s %8.2f  %s\n", d.ID, d.Name, d.Price, state)
		}
		return nil
	case "create-drink":
		if len(args) < 4 {
			return fmt.Errorf("usage: admin create-drink <name> <price> <description> <image>")
		}
		price, err := strconv.ParseFloat(args[1], 64)
		if err != nil || price < 0 {
			return fmt.Errorf("price must be a non-negative number")
		}
		d, err := a.admin.CreateDrink(ctx, admin.CreateDrinkParams{
			Name:        args[0],
			Price:       price,
			Description: args[2],
			Image:       args[3],
		})
		if err != nil {
			return err
		}
		fmt.Printf("created drink %s\n", d.ID)
		return nil
	case "update-drink":
		return a.updateDrink(ctx, args)
	case "delete-drink":
		if len(args) < 1 {
			return fmt.Errorf("usage: admin delete-drink <id>")
		}
		return a.admin.DeleteDrink(ctx, args[0])
	default:
		return fmt.Errorf("unknown admin command %q", cmd)
	}
}

func (a *app) updateDrink(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: admin update-drink <id> [flags]")
	}
	fs := flag.NewFlagSet("update-drink", flag.ContinueOnError)
	name := fs.String("name", "", "new name")
	description := fs.String("description", "", "new description")
	price := fs.Float64("price", -1, "new price")
	image := fs.String("image", "", "new image reference")
	active := fs.String("active", "", "true or false")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	var params admin.UpdateDrinkParams
	if *name != "" {
		params.Name = name
	}
	if *description != "" {
		params.Description = description
	}
	if *price >= 0 {
		params.Price = price
	}
	if *image != "" {
		params.Image = image
	}
	if *active != "" {
		v, err := strconv.ParseBool(*active)
		if err != nil {
			return fmt.Errorf("-active must be true or false")
		}
		params.IsActive = &v
	}

	d, err := a.admin.UpdateDrink(ctx, args[0], params)
	if err != nil {
		return err
	}
	fmt.Printf("updated drink %s\n", d.ID)
	return nil
}
