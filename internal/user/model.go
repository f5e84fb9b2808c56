package user

// User is the shopper record. The points balance lives in the backend
// ledger; the client only caches it.
type User struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Points    int     `json:"points"`
	Avatar    *string `json:"avatar,omitempty"`
	CreatedAt string  `json:"created_at,omitempty"`
}

type CreateParams struct {
	Name   string  `json:"name"`
	Points int     `json:"points,omitempty"`
	Avatar *string `json:"avatar,omitempty"`
}

// UpdateParams is a partial update; nil fields are left unchanged.
type UpdateParams struct {
	Name   *string `json:"name,omitempty"`
	Points *int    `json:"points,omitempty"`
	Avatar *string `json:"avatar,omitempty"`
}
