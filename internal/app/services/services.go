package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/yigit/campusconnect/internal/app/models/dto"
	"github.com/yigit/campusconnect/internal/pkg/apperrors"
	"github.com/yigit/campusconnect/internal/pkg/validation"
)

// Services defined in this package:
// - AuthService: login, registration and logout
// - DashboardService: aggregate counts and recent activity
// - AlumniService: directory listing, search and connection requests
// - ForumService: posts and post creation
// - ProfileService: the viewer's own profile
// - ChatbotService: canned questions and the conversation log
//
// Every page method returns a view model plus toasts. Failures never panic
// and are never retried.

// AuthAPI is the backend surface used by AuthService
type AuthAPI interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Register(ctx context.Context, req dto.RegisterRequest) error
}

// AlumniAPI is the backend surface used by AlumniService
type AlumniAPI interface {
	ListAlumni(ctx context.Context) ([]dto.AlumniProfile, error)
	SearchAlumni(ctx context.Context, keyword, company string) ([]dto.AlumniProfile, error)
	SendConnection(ctx context.Context, alumniID int64) error
}

// ConnectionsAPI lists received connection requests
type ConnectionsAPI interface {
	ReceivedConnections(ctx context.Context) ([]dto.ConnectionRequest, error)
}

// ForumAPI is the backend surface used by ForumService
type ForumAPI interface {
	ListPosts(ctx context.Context) ([]dto.ForumPost, error)
	CreatePost(ctx context.Context, req dto.CreatePostRequest) error
}

// ProfileAPI is the backend surface used by ProfileService
type ProfileAPI interface {
	GetOwnProfile(ctx context.Context) (dto.ProfileLookup, error)
	CreateProfile(ctx context.Context, p dto.OwnProfile) (*dto.OwnProfile, error)
	UpdateProfile(ctx context.Context, id int64, p dto.OwnProfile) (*dto.OwnProfile, error)
}

// ChatbotAPI is the backend surface used by ChatbotService
type ChatbotAPI interface {
	ChatbotQuestions(ctx context.Context) ([]string, error)
	AskChatbot(ctx context.Context, question string) (string, error)
}

// DashboardAPI is what the dashboard fans out to
type DashboardAPI interface {
	ListAlumni(ctx context.Context) ([]dto.AlumniProfile, error)
	ListPosts(ctx context.Context) ([]dto.ForumPost, error)
	ConnectionsAPI
}

// API is the full backend surface, implemented by *apiclient.Client
type API interface {
	AuthAPI
	AlumniAPI
	ConnectionsAPI
	ForumAPI
	ProfileAPI
	ChatbotAPI
}

// ToastForError logs err and turns it into a destructive toast. Validation
// problems replace the fallback description with their own message; backend
// failures keep the fallback so raw server text never reaches the page.
func ToastForError(logger zerolog.Logger, err error, title, fallback string) dto.Toast {
	description := fallback

	var fields validation.FieldErrors
	var custom *apperrors.CustomError
	switch {
	case errors.As(err, &fields):
		description = fields.Error()
	case errors.As(err, &custom) && custom.Message != "":
		description = custom.Message
	}

	event := logger.Warn()
	if errors.Is(err, apperrors.ErrValidationFailed) {
		event = logger.Debug()
	}
	event.Err(err).Int("status", apperrors.StatusCode(err)).Str("toast", title).Msg("Operation failed")

	return dto.ErrorToast(title, description)
}
