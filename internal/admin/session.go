package admin

import (
	"context"
	"errors"

	"brewpoint/internal/api"
	"brewpoint/internal/logger"
	"brewpoint/internal/storage"

	"go.uber.org/zap"
)

// TokenKey is the durable-storage key the bearer token is persisted under.
const TokenKey = "admin_token"

// Session holds the admin bearer credential: LoggedOut -> LoggingIn ->
// LoggedIn(token) -> LoggedOut. The token is opaque to the client; expiry is
// a backend concern surfaced only as a request failure.
type Session struct {
	client  *api.Client
	storage *storage.Store
	token   string
}

// NewSession restores any previously persisted token.
func NewSession(client *api.Client, st *storage.Store) *Session {
	s := &Session{client: client, storage: st}

	var token string
	err := st.Get(TokenKey, &token)
	switch {
	case err == nil:
		s.token = token
	case errors.Is(err, storage.ErrNotFound):
	default:
		logger.L().Warn("discarding malformed persisted admin token", zap.Error(err))
	}
	return s
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

// Login exchanges credentials for a bearer token and persists it. On
// rejection the backend's reason passes through verbatim and nothing is
// stored. There is no retry and no lockout.
func (s *Session) Login(ctx context.Context, username, password string) error {
	var resp loginResponse
	err := s.client.Post(ctx, "/admin/login", loginRequest{Username: username, Password: password}, &resp)
	if err != nil {
		return err
	}

	s.token = resp.AccessToken
	if err := s.storage.Set(TokenKey, s.token); err != nil {
		return err
	}
	logger.FromCtx(ctx).Info("admin logged in", zap.String("username", username))
	return nil
}

// Logout discards the token from memory and durable storage.
func (s *Session) Logout() error {
	s.token = ""
	return s.storage.Delete(TokenKey)
}

func (s *Session) Token() string {
	return s.token
}

func (s *Session) LoggedIn() bool {
	return s.token != ""
}
