package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/yigit/campusconnect/internal/app/models/dto"
	"github.com/yigit/campusconnect/internal/pkg/apperrors"
)

// SendConnection sends a connection request to an alumni member
func (c *Client) SendConnection(ctx context.Context, alumniID int64) error {
	if alumniID <= 0 {
		return apperrors.NewBadRequestError("alumni id is required")
	}
	path := fmt.Sprintf("/requests/send/%d", alumniID)
	return c.do(ctx, call{method: http.MethodPost, path: path, auth: true}, nil)
}

// ReceivedConnections lists connection requests sent to the viewer
func (c *Client) ReceivedConnections(ctx context.Context) ([]dto.ConnectionRequest, error) {
	var requests []dto.ConnectionRequest
	if err := c.do(ctx, call{method: http.MethodGet, path: "/requests/received", auth: true}, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}
