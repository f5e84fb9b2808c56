package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return NewClient(srv.URL, 5*time.Second), srv
}

func TestClientGet(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/things", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		w.Write([]byte(`{"name":"latte"}`))
	})
	defer srv.Close()

	var out struct {
		Name string `json:"name"`
	}
	require.NoError(t, client.Get(context.Background(), "/things", &out))
	assert.Equal(t, "latte", out.Name)
}

func TestClientPostSendsJSONBody(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"ok":true}`))
	})
	defer srv.Close()

	var out struct {
		OK bool `json:"ok"`
	}
	err := client.Post(context.Background(), "/things", map[string]string{"a": "b"}, &out)
	require.NoError(t, err)
	assert.True(t, out.OK)
}

func TestClientErrorContract(t *testing.T) {
	t.Run("Detail passes through verbatim", func(t *testing.T) {
		client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"detail":"Drink not found"}`))
		})
		defer srv.Close()

		err := client.Get(context.Background(), "/drinks/nope", nil)
		require.Error(t, err)
		assert.EqualError(t, err, "Drink not found")

		apiErr, ok := err.(*Error)
		require.True(t, ok)
		assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	})

	t.Run("Unparsable body yields generic message", func(t *testing.T) {
		client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("<html>boom</html>"))
		})
		defer srv.Close()

		err := client.Get(context.Background(), "/x", nil)
		require.Error(t, err)
		assert.EqualError(t, err, "Request failed")
	})

	t.Run("Empty body yields generic message", func(t *testing.T) {
		client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})
		defer srv.Close()

		err := client.Get(context.Background(), "/x", nil)
		require.Error(t, err)
		assert.EqualError(t, err, "Request failed")
	})
}

func TestClientBearerOption(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		w.Write([]byte(`[]`))
	})
	defer srv.Close()

	var out []int
	require.NoError(t, client.Get(context.Background(), "/admin/orders", &out, WithBearer("tok-123")))
}

func TestClientDeleteNoBody(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusOK)
	})
	defer srv.Close()

	assert.NoError(t, client.Delete(context.Background(), "/admin/drinks/x"))
}

func TestIsAuth(t *testing.T) {
	assert.True(t, IsAuth(&Error{StatusCode: http.StatusUnauthorized}))
	assert.True(t, IsAuth(&Error{StatusCode: http.StatusForbidden}))
	assert.False(t, IsAuth(&Error{StatusCode: http.StatusNotFound}))
	assert.False(t, IsAuth(context.DeadlineExceeded))
}

func TestErrorMessageFallsBackToStatus(t *testing.T) {
	err := &Error{StatusCode: http.StatusTeapot}
	assert.EqualError(t, err, "HTTP 418")
}
