package services

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/yigit/campusconnect/internal/app/models/dto"
)

// recentLimit is how many posts and requests the dashboard previews
const recentLimit = 3

// DashboardStats holds the three headline counts
type DashboardStats struct {
	TotalAlumni     int
	TotalPosts      int
	PendingRequests int
}

// StatCard is one clickable dashboard tile
type StatCard struct {
	Title       string
	Value       int
	Description string
	Link        string
}

// DashboardView is the dashboard page model
type DashboardView struct {
	Stats       DashboardStats
	RecentPosts []dto.ForumPost
	Requests    []dto.ConnectionRequest
	Toasts      []dto.Toast
}

// Cards returns the stat tiles in display order
func (v DashboardView) Cards() []StatCard {
	return []StatCard{
		{Title: "Alumni Network", Value: v.Stats.TotalAlumni, Description: "Connected professionals", Link: "/alumni"},
		{Title: "Forum Posts", Value: v.Stats.TotalPosts, Description: "Active discussions", Link: "/forum"},
		{Title: "Connection Requests", Value: v.Stats.PendingRequests, Description: "Pending requests", Link: "#requests"},
	}
}

// DashboardService aggregates the dashboard data
type DashboardService struct {
	api    DashboardAPI
	logger zerolog.Logger
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(api DashboardAPI, logger zerolog.Logger) *DashboardService {
	return &DashboardService{
		api:    api,
		logger: logger,
	}
}

// Load fetches alumni, posts and received requests concurrently. The result is
// all or nothing: if any fetch fails the view keeps zero counts and no lists.
func (s *DashboardService) Load(ctx context.Context) DashboardView {
	var (
		alumni   []dto.AlumniProfile
		posts    []dto.ForumPost
		requests []dto.ConnectionRequest
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		alumni, err = s.api.ListAlumni(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		posts, err = s.api.ListPosts(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		requests, err = s.api.ReceivedConnections(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return DashboardView{
			Toasts: []dto.Toast{ToastForError(s.logger, err, "Error", "Failed to load dashboard data")},
		}
	}

	return DashboardView{
		Stats: DashboardStats{
			TotalAlumni:     len(alumni),
			TotalPosts:      len(posts),
			PendingRequests: len(requests),
		},
		RecentPosts: head(posts, recentLimit),
		Requests:    head(requests, recentLimit),
	}
}

func head[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}
