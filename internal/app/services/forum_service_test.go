package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/campusconnect/internal/app/models/dto"
)

func TestForumLoad_RendersMarkdown(t *testing.T) {
	api := &fakeAPI{posts: []dto.ForumPost{{ID: 1, Title: "Hi", Content: "**bold** <script>x()</script>", CreatedAt: "2024-03-05T10:00:00Z"}}}

	view := NewForumService(api, nil, zerolog.Nop()).Load(context.Background())

	require.Len(t, view.Posts, 1)
	p := view.Posts[0]
	assert.Contains(t, string(p.Body), "<strong>bold</strong>")
	assert.NotContains(t, string(p.Body), "<script")
	assert.Equal(t, "Mar 5, 2024", p.Date)
	assert.Equal(t, "Anonymous", p.AuthorName())
	assert.Equal(t, "General", p.CategoryName())
}

func TestForumLoad_Failure(t *testing.T) {
	view := NewForumService(&fakeAPI{postsErr: errors.New("down")}, nil, zerolog.Nop()).Load(context.Background())
	assert.Empty(t, view.Posts)
	require.Len(t, view.Toasts, 1)
	assert.Equal(t, "Failed to load forum posts", view.Toasts[0].Description)
}

func TestForumCreate_BlankFieldsMakeNoCall(t *testing.T) {
	for _, form := range []dto.PostForm{
		{Title: "", Content: "body"},
		{Title: "title", Content: "   "},
		{},
	} {
		api := &fakeAPI{}
		view := NewForumService(api, nil, zerolog.Nop()).CreatePost(context.Background(), form)

		assert.False(t, view.Created)
		require.Len(t, view.Toasts, 1)
		assert.Equal(t, "Validation Error", view.Toasts[0].Title)
		assert.Equal(t, "Please fill in both title and content", view.Toasts[0].Description)
		assert.Zero(t, api.total(), "no backend call for %+v", form)
	}
}

func TestForumCreate_TooLongTitleNamesTheLimit(t *testing.T) {
	api := &fakeAPI{}
	form := dto.PostForm{Title: strings.Repeat("a", 201), Content: "body"}

	view := NewForumService(api, nil, zerolog.Nop()).CreatePost(context.Background(), form)

	assert.False(t, view.Created)
	require.Len(t, view.Toasts, 1)
	assert.Equal(t, "Title must be at most 200 characters", view.Toasts[0].Description)
	assert.Equal(t, "Title must be at most 200 characters", view.Errors["title"])
	assert.Zero(t, api.total())
}

func TestForumCreate_SuccessRefetchesOnce(t *testing.T) {
	api := &fakeAPI{posts: []dto.ForumPost{{ID: 1, Title: "Existing"}}}

	view := NewForumService(api, nil, zerolog.Nop()).CreatePost(context.Background(), dto.PostForm{Title: " New ", Content: "Hello"})

	assert.True(t, view.Created)
	assert.Equal(t, dto.PostForm{}, view.Form)
	assert.Len(t, view.Posts, 1)
	assert.Equal(t, "Post created!", view.Toasts[0].Title)
	assert.Equal(t, 1, api.count("CreatePost"))
	assert.Equal(t, 1, api.count("ListPosts"))
	assert.Equal(t, []dto.CreatePostRequest{{Title: "New", Content: "Hello"}}, api.created)
}

func TestForumCreate_FailureKeepsForm(t *testing.T) {
	api := &fakeAPI{createPostErr: errors.New("down")}
	form := dto.PostForm{Title: "T", Content: "C"}

	view := NewForumService(api, nil, zerolog.Nop()).CreatePost(context.Background(), form)

	assert.False(t, view.Created)
	assert.Equal(t, form, view.Form)
	assert.Equal(t, "Failed to create post", view.Toasts[0].Title)
	assert.Zero(t, api.count("ListPosts"))
}
