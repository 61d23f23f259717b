package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/yigit/campusconnect/internal/app/models/dto"
)

// ListAlumni returns the full alumni directory
func (c *Client) ListAlumni(ctx context.Context) ([]dto.AlumniProfile, error) {
	var alumni []dto.AlumniProfile
	if err := c.do(ctx, call{method: http.MethodGet, path: "/alumni", auth: true}, &alumni); err != nil {
		return nil, err
	}
	return alumni, nil
}

// SearchAlumni filters the directory. Empty parameters are left out of the
// query string entirely.
func (c *Client) SearchAlumni(ctx context.Context, keyword, company string) ([]dto.AlumniProfile, error) {
	q := url.Values{}
	if keyword = strings.TrimSpace(keyword); keyword != "" {
		q.Set("keyword", keyword)
	}
	if company = strings.TrimSpace(company); company != "" {
		q.Set("company", company)
	}

	var alumni []dto.AlumniProfile
	if err := c.do(ctx, call{method: http.MethodGet, path: "/alumni/search", query: q, auth: true}, &alumni); err != nil {
		return nil, err
	}
	return alumni, nil
}
