package services

import (
	"context"
	"html/template"

	"github.com/rs/zerolog"

	"github.com/yigit/campusconnect/internal/app/models/dto"
	"github.com/yigit/campusconnect/internal/pkg/helpers"
	"github.com/yigit/campusconnect/internal/pkg/markup"
	"github.com/yigit/campusconnect/internal/pkg/validation"
)

// excerptLength bounds post previews on the dashboard and CLI
const excerptLength = 160

// PostView is a forum post prepared for display
type PostView struct {
	dto.ForumPost
	Body    template.HTML
	Excerpt string
	Date    string
}

// ForumView is the forum page model
type ForumView struct {
	Posts   []PostView
	Form    dto.PostForm
	Created bool
	Errors  validation.FieldErrors
	Toasts  []dto.Toast
}

// ForumService defines the interface for forum operations
type ForumService interface {
	Load(ctx context.Context) ForumView
	CreatePost(ctx context.Context, form dto.PostForm) ForumView
}

// forumServiceImpl implements the ForumService interface
type forumServiceImpl struct {
	api      ForumAPI
	renderer *markup.Renderer
	logger   zerolog.Logger
}

// NewForumService creates a new forum service instance
func NewForumService(api ForumAPI, renderer *markup.Renderer, logger zerolog.Logger) ForumService {
	if renderer == nil {
		renderer = markup.NewRenderer()
	}
	return &forumServiceImpl{
		api:      api,
		renderer: renderer,
		logger:   logger,
	}
}

// Load fetches the posts in server order
func (s *forumServiceImpl) Load(ctx context.Context) ForumView {
	posts, err := s.api.ListPosts(ctx)
	if err != nil {
		return ForumView{Toasts: []dto.Toast{ToastForError(s.logger, err, "Error", "Failed to load forum posts")}}
	}
	return ForumView{Posts: s.present(posts)}
}

// CreatePost publishes the form. Blank fields are rejected without any
// backend call. On success the form is cleared and the list is fetched once.
// The returned view carries no posts when validation fails.
func (s *forumServiceImpl) CreatePost(ctx context.Context, form dto.PostForm) ForumView {
	if err := validation.Struct(&form); err != nil {
		fields, _ := err.(validation.FieldErrors)
		s.logger.Debug().Err(err).Msg("Rejected forum post")
		description := "Please fill in both title and content"
		if form.Title != "" && form.Content != "" {
			description = err.Error()
		}
		return ForumView{
			Form:   form,
			Errors: fields,
			Toasts: []dto.Toast{dto.ErrorToast("Validation Error", description)},
		}
	}

	if err := s.api.CreatePost(ctx, dto.CreatePostRequest{Title: form.Title, Content: form.Content}); err != nil {
		return ForumView{
			Form:   form,
			Toasts: []dto.Toast{ToastForError(s.logger, err, "Failed to create post", "Unable to publish your post")},
		}
	}
	s.logger.Info().Str("title", form.Title).Msg("Forum post created")

	view := s.Load(ctx)
	view.Created = true
	view.Toasts = append([]dto.Toast{dto.SuccessToast("Post created!", "Your post has been published")}, view.Toasts...)
	return view
}

func (s *forumServiceImpl) present(posts []dto.ForumPost) []PostView {
	views := make([]PostView, 0, len(posts))
	for _, p := range posts {
		views = append(views, PostView{
			ForumPost: p,
			Body:      s.renderer.Render(p.Content),
			Excerpt:   markup.Excerpt(p.Content, excerptLength),
			Date:      helpers.FormatDate(p.CreatedAt),
		})
	}
	return views
}
