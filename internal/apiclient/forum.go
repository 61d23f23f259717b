package apiclient

import (
	"context"
	"net/http"

	"github.com/yigit/campusconnect/internal/app/models/dto"
)

// ListPosts returns forum posts in the order the backend sends them
func (c *Client) ListPosts(ctx context.Context) ([]dto.ForumPost, error) {
	var posts []dto.ForumPost
	if err := c.do(ctx, call{method: http.MethodGet, path: "/forum", auth: true}, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// CreatePost publishes a new forum post
func (c *Client) CreatePost(ctx context.Context, req dto.CreatePostRequest) error {
	return c.do(ctx, call{method: http.MethodPost, path: "/forum", body: req, auth: true}, nil)
}
