package apiclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/yigit/campusconnect/internal/app/models/dto"
	"github.com/yigit/campusconnect/internal/pkg/apperrors"
)

// GetOwnProfile looks up the viewer's profile. A 404, or a success body
// without an id, is reported as ProfileNotFound. Every other failure is an
// error so "no profile" and "fetch failed" stay distinct.
func (c *Client) GetOwnProfile(ctx context.Context) (dto.ProfileLookup, error) {
	var p dto.OwnProfile
	err := c.do(ctx, call{method: http.MethodGet, path: "/profiles/me", auth: true}, &p)
	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return dto.ProfileLookup{State: dto.ProfileNotFound}, nil
	case err != nil:
		return dto.ProfileLookup{}, err
	case p.ID == 0:
		return dto.ProfileLookup{State: dto.ProfileNotFound}, nil
	}
	return dto.ProfileLookup{State: dto.ProfileFound, Profile: &p}, nil
}

// CreateProfile creates the viewer's profile and returns the stored copy
func (c *Client) CreateProfile(ctx context.Context, p dto.OwnProfile) (*dto.OwnProfile, error) {
	p.ID = 0
	var created dto.OwnProfile
	if err := c.do(ctx, call{method: http.MethodPost, path: "/profiles", body: p, auth: true}, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateProfile replaces the profile with the given id
func (c *Client) UpdateProfile(ctx context.Context, id int64, p dto.OwnProfile) (*dto.OwnProfile, error) {
	if id <= 0 {
		return nil, apperrors.NewBadRequestError("profile id is required for an update")
	}
	p.ID = id
	var updated dto.OwnProfile
	path := fmt.Sprintf("/profiles/%d", id)
	if err := c.do(ctx, call{method: http.MethodPut, path: path, body: p, auth: true}, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
