package profile

import (
	"context"

	"brewpoint/internal/api"
	"brewpoint/internal/logger"
	"brewpoint/internal/order"
	"brewpoint/internal/user"

	"go.uber.org/zap"
)

// View drives the profile state machine:
// Uninitialized -> Loading -> Ready | Degraded. A refresh re-enters Loading
// without clearing the previously displayed profile; if that refresh fails
// the stale profile stays visible and the error is surfaced instead of
// degrading to the placeholder.
type View struct {
	client *api.Client
	userID string

	status  Status
	profile Profile
	err     error
}

func NewView(client *api.Client, userID string) *View {
	return &View{client: client, userID: userID, status: Uninitialized}
}

// Load fetches the profile. On failure with nothing previously displayed the
// view degrades to a placeholder user with zero points and no history; it
// never fabricates historical data.
func (v *View) Load(ctx context.Context) error {
	wasReady := v.status == Ready
	v.status = Loading

	var p Profile
	err := v.client.Get(ctx, "/users/"+v.userID+"/profile", &p)
	if err != nil {
		v.err = err
		if wasReady {
			v.status = Ready
			logger.FromCtx(ctx).Warn("profile refresh failed, keeping stale profile", zap.Error(err))
			return err
		}
		v.status = Degraded
		v.profile = Profile{User: user.User{ID: v.userID, Name: "Guest", Points: 0}}
		logger.FromCtx(ctx).Warn("profile load failed, showing placeholder", zap.Error(err))
		return err
	}

	v.status = Ready
	v.err = nil
	v.profile = p
	return nil
}

// Refresh re-fetches after an order completes.
func (v *View) Refresh(ctx context.Context) error {
	return v.Load(ctx)
}

// ApplyOrder folds a just-created order into the view optimistically, using
// the order's server-reported total and points, never client-recomputed
// values. A Refresh remains the authoritative path.
func (v *View) ApplyOrder(o *order.Order) {
	if v.status != Ready && v.status != Degraded {
		return
	}
	entry := History{
		ID:           o.ID,
		Date:         o.CreatedAt,
		Items:        o.Items,
		Total:        o.Total,
		PointsEarned: o.PointsEarned,
	}
	v.profile.OrderHistory = append([]History{entry}, v.profile.OrderHistory...)
	v.profile.TotalSpent += o.Total
	v.profile.TotalPointsEarned += o.PointsEarned
	v.profile.User.Points += o.PointsEarned
}

func (v *View) Status() Status   { return v.status }
func (v *View) Profile() Profile { return v.profile }
func (v *View) Err() error       { return v.err }
