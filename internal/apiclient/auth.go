package apiclient

import (
	"context"
	"net/http"

	"github.com/yigit/campusconnect/internal/app/models/dto"
)

// Login exchanges credentials for a session token. A 2xx answer without a
// token is returned as-is; the caller decides what that means.
func (c *Client) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	var resp dto.LoginResponse
	err := c.do(ctx, call{method: http.MethodPost, path: "/auth/login", body: req}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates a new account
func (c *Client) Register(ctx context.Context, req dto.RegisterRequest) error {
	return c.do(ctx, call{method: http.MethodPost, path: "/auth/register", body: req}, nil)
}
