package profile

import (
	"brewpoint/internal/order"
	"brewpoint/internal/user"
)

// History is one past order as the profile endpoint reports it.
type History struct {
	ID           string       `json:"id"`
	Date         string       `json:"date"`
	Items        []order.Item `json:"items"`
	Total        float64      `json:"total"`
	PointsEarned int          `json:"pointsEarned"`
}

// Profile aggregates a user's record, order history and lifetime totals. The
// backend is the single source of truth for all of it.
type Profile struct {
	User              user.User `json:"user"`
	OrderHistory      []History `json:"orderHistory"`
	TotalSpent        float64   `json:"totalSpent"`
	TotalPointsEarned int       `json:"totalPointsEarned"`
}

// Status is the lifecycle of the profile view.
type Status int

const (
	Uninitialized Status = iota
	Loading
	Ready
	Degraded
)

func (s Status) String() string {
	switch s {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Degraded:
		return "degraded"
	default:
		return "uninitialized"
	}
}
