package admin

import "errors"

var ErrNotAuthenticated = errors.New("not authenticated")
