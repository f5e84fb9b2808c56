// Package apitest provides an in-memory fake of the coffee-shop backend for
// package tests. It mirrors the real backend's observable behavior: the REST
// routes, the {"detail": ...} error contract, the demo admin credential and
// JWT bearer auth, the seed catalog, and server-side points accrual.
package apitest

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"brewpoint/internal/catalog"
	"brewpoint/internal/order"
	"brewpoint/internal/user"
)

type Server struct {
	mu     sync.Mutex
	drinks []catalog.Drink
	beans  []catalog.Option
	milk   []catalog.Option
	syrups []catalog.Option
	users  []*user.User
	orders []order.Order

	engine *gin.Engine
}

func New() *Server {
	gin.SetMode(gin.TestMode)
	s := &Server{
		drinks: seedDrinks(),
		beans:  seedBeans(),
		milk:   seedMilk(),
		syrups: seedSyrups(),
		users:  seedUsers(),
	}

	r := gin.New()
	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/drinks", s.listDrinks)
		apiGroup.GET("/drinks/options/beans", s.listOptions(&s.beans))
		apiGroup.GET("/drinks/options/milk", s.listOptions(&s.milk))
		apiGroup.GET("/drinks/options/syrups", s.listOptions(&s.syrups))
		apiGroup.GET("/drinks/:id", s.getDrink)

		apiGroup.GET("/users/:id", s.getUser)
		apiGroup.POST("/users", s.createUser)
		apiGroup.PUT("/users/:id", s.updateUser)
		apiGroup.GET("/users/:id/profile", s.getProfile)
		apiGroup.GET("/users/:id/orders", s.listUserOrders)
		apiGroup.POST("/users/:id/orders", s.createOrder)

		apiGroup.POST("/admin/login", s.adminLogin)
		adminGroup := apiGroup.Group("/admin", requireAdmin)
		{
			adminGroup.GET("/orders", s.adminListOrders)
			adminGroup.GET("/users", s.adminListUsers)
			adminGroup.GET("/drinks", s.adminListDrinks)
			adminGroup.POST("/drinks", s.adminCreateDrink)
			adminGroup.PUT("/drinks/:id", s.adminUpdateDrink)
			adminGroup.DELETE("/drinks/:id", s.adminDeleteDrink)
		}
	}
	s.engine = r
	return s
}

// Router returns the handler to mount in an httptest.Server.
func (s *Server) Router() http.Handler {
	return s.engine
}

// Drink returns the current state of a drink, for assertions.
func (s *Server) Drink(id string) *catalog.Drink {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findDrink(id)
}

// User returns the current state of a user, for assertions.
func (s *Server) User(id string) *user.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findUser(id)
}

// Orders returns all orders taken so far, oldest first.
func (s *Server) Orders() []order.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]order.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

func (s *Server) findDrink(id string) *catalog.Drink {
	for i := range s.drinks {
		if s.drinks[i].ID == id {
			return &s.drinks[i]
		}
	}
	return nil
}

func (s *Server) findUser(id string) *user.User {
	for _, u := range s.users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

func detail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"detail": msg})
}

// -- catalog --

func (s *Server) listDrinks(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	active := make([]catalog.Drink, 0, len(s.drinks))
	for _, d := range s.drinks {
		if d.IsActive {
			active = append(active, d)
		}
	}
	c.JSON(http.StatusOK, active)
}

func (s *Server) getDrink(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.findDrink(c.Param("id"))
	if d == nil || !d.IsActive {
		detail(c, http.StatusNotFound, "Drink not found")
		return
	}
	c.JSON(http.StatusOK, d)
}

func (s *Server) listOptions(opts *[]catalog.Option) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.Lock()
		defer s.mu.Unlock()
		c.JSON(http.StatusOK, *opts)
	}
}

// -- users --

func (s *Server) getUser(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.findUser(c.Param("id"))
	if u == nil {
		detail(c, http.StatusNotFound, "User not found")
		return
	}
	c.JSON(http.StatusOK, u)
}

func (s *Server) createUser(c *gin.Context) {
	var params user.CreateParams
	if err := c.ShouldBindJSON(&params); err != nil {
		detail(c, http.StatusUnprocessableEntity, "Invalid user payload")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	u := &user.User{
		ID:        fmt.Sprintf("user-%d", len(s.users)+1),
		Name:      params.Name,
		Points:    params.Points,
		Avatar:    params.Avatar,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	s.users = append(s.users, u)
	c.JSON(http.StatusOK, u)
}

func (s *Server) updateUser(c *gin.Context) {
	var params user.UpdateParams
	if err := c.ShouldBindJSON(&params); err != nil {
		detail(c, http.StatusUnprocessableEntity, "Invalid user payload")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.findUser(c.Param("id"))
	if u == nil {
		detail(c, http.StatusNotFound, "User not found")
		return
	}
	if params.Name != nil {
		u.Name = *params.Name
	}
	if params.Points != nil {
		u.Points = *params.Points
	}
	if params.Avatar != nil {
		u.Avatar = params.Avatar
	}
	c.JSON(http.StatusOK, u)
}

func (s *Server) getProfile(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.findUser(c.Param("id"))
	if u == nil {
		detail(c, http.StatusNotFound, "User not found")
		return
	}

	history := make([]gin.H, 0)
	totalSpent := 0.0
	totalPoints := 0
	for i := len(s.orders) - 1; i >= 0; i-- {
		o := s.orders[i]
		if o.UserID != u.ID {
			continue
		}
		totalSpent += o.Total
		totalPoints += o.PointsEarned
		history = append(history, gin.H{
			"id":           o.ID,
			"date":         o.CreatedAt,
			"items":        o.Items,
			"total":        o.Total,
			"pointsEarned": o.PointsEarned,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"user":              u,
		"orderHistory":      history,
		"totalSpent":        totalSpent,
		"totalPointsEarned": totalPoints,
	})
}

func (s *Server) listUserOrders(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]order.Order, 0)
	for i := len(s.orders) - 1; i >= 0; i-- {
		if s.orders[i].UserID == c.Param("id") {
			out = append(out, s.orders[i])
		}
	}
	c.JSON(http.StatusOK, out)
}

// -- orders --

func (s *Server) createOrder(c *gin.Context) {
	var req order.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusUnprocessableEntity, "Invalid order payload")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.findUser(c.Param("id"))
	if u == nil {
		detail(c, http.StatusNotFound, "User not found")
		return
	}

	// The backend trusts client line prices but recomputes the total and
	// points for its own ledger.
	total := 0.0
	orderID := fmt.Sprintf("order-%d", len(s.orders)+1)
	items := make([]order.Item, 0, len(req.Items))
	for i, item := range req.Items {
		d := s.findDrink(item.DrinkID)
		if d == nil || !d.IsActive {
			detail(c, http.StatusNotFound, fmt.Sprintf("Drink %s not found", item.DrinkID))
			return
		}
		total += item.Price * float64(item.Quantity)
		drink := *d
		items = append(items, order.Item{
			ID:          fmt.Sprintf("%s-item-%d", orderID, i+1),
			OrderID:     orderID,
			DrinkID:     item.DrinkID,
			Quantity:    item.Quantity,
			BeanOption:  item.BeanOption,
			MilkOption:  item.MilkOption,
			SyrupOption: item.SyrupOption,
			Price:       item.Price,
			Drink:       &drink,
		})
	}

	points := int(total * 0.1)
	o := order.Order{
		ID:           orderID,
		UserID:       u.ID,
		Total:        total,
		PointsEarned: points,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
		Items:        items,
	}
	s.orders = append(s.orders, o)
	u.Points += points

	c.JSON(http.StatusOK, o)
}

// -- admin --

func (s *Server) adminLogin(c *gin.Context) {
	var creds struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&creds); err != nil {
		detail(c, http.StatusUnprocessableEntity, "Invalid login payload")
		return
	}
	if creds.Username != AdminUsername || !checkPassword(creds.Password) {
		detail(c, http.StatusUnauthorized, "Incorrect username or password")
		return
	}
	token, err := issueToken(creds.Username)
	if err != nil {
		detail(c, http.StatusInternalServerError, "Token issue failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"access_token": token, "token_type": "bearer"})
}

func (s *Server) adminListOrders(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]order.Order, 0, len(s.orders))
	for i := len(s.orders) - 1; i >= 0; i-- {
		out = append(out, s.orders[i])
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) adminListUsers(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]user.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, *u)
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) adminListDrinks(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, s.drinks)
}

func (s *Server) adminCreateDrink(c *gin.Context) {
	var params struct {
		Name        string  `json:"name"`
		Description string  `json:"description"`
		Price       float64 `json:"price"`
		Image       string  `json:"image"`
	}
	if err := c.ShouldBindJSON(&params); err != nil {
		detail(c, http.StatusUnprocessableEntity, "Invalid drink payload")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	d := catalog.Drink{
		ID:          fmt.Sprintf("drink-%d", len(s.drinks)+1),
		Name:        params.Name,
		Description: params.Description,
		Price:       params.Price,
		Image:       params.Image,
		IsActive:    true,
	}
	s.drinks = append(s.drinks, d)
	c.JSON(http.StatusOK, d)
}

func (s *Server) adminUpdateDrink(c *gin.Context) {
	var params struct {
		Name        *string  `json:"name"`
		Description *string  `json:"description"`
		Price       *float64 `json:"price"`
		Image       *string  `json:"image"`
		IsActive    *bool    `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&params); err != nil {
		detail(c, http.StatusUnprocessableEntity, "Invalid drink payload")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.findDrink(c.Param("id"))
	if d == nil {
		detail(c, http.StatusNotFound, "Drink not found")
		return
	}
	if params.Name != nil {
		d.Name = *params.Name
	}
	if params.Description != nil {
		d.Description = *params.Description
	}
	if params.Price != nil {
		d.Price = *params.Price
	}
	if params.Image != nil {
		d.Image = *params.Image
	}
	if params.IsActive != nil {
		d.IsActive = *params.IsActive
	}
	c.JSON(http.StatusOK, d)
}

func (s *Server) adminDeleteDrink(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.drinks {
		if s.drinks[i].ID == c.Param("id") {
			s.drinks = append(s.drinks[:i], s.drinks[i+1:]...)
			c.JSON(http.StatusOK, gin.H{"message": "Drink deleted"})
			return
		}
	}
	detail(c, http.StatusNotFound, "Drink not found")
}
