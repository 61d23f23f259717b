package services

import (
	"context"
	"sync"

	"github.com/yigit/campusconnect/internal/app/models/dto"
)

// fakeAPI is an in-memory backend that records every call by name
type fakeAPI struct {
	mu    sync.Mutex
	calls []string

	loginResp   *dto.LoginResponse
	loginErr    error
	registerErr error

	alumni       []dto.AlumniProfile
	alumniErr    error
	searchResult []dto.AlumniProfile
	searchErr    error
	searchArgs   [2]string
	connectErr   error

	requests    []dto.ConnectionRequest
	requestsErr error

	posts         []dto.ForumPost
	postsErr      error
	createPostErr error
	created       []dto.CreatePostRequest

	lookup       dto.ProfileLookup
	lookupErr    error
	saveErr      error
	createdID    int64
	updatedID    int64
	savedProfile dto.OwnProfile

	questions    []string
	questionsErr error
	answer       string
	askErr       error
}

func (f *fakeAPI) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
}

func (f *fakeAPI) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == name {
			n++
		}
	}
	return n
}

func (f *fakeAPI) total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeAPI) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	f.record("Login")
	return f.loginResp, f.loginErr
}

func (f *fakeAPI) Register(ctx context.Context, req dto.RegisterRequest) error {
	f.record("Register")
	return f.registerErr
}

func (f *fakeAPI) ListAlumni(ctx context.Context) ([]dto.AlumniProfile, error) {
	f.record("ListAlumni")
	return f.alumni, f.alumniErr
}

func (f *fakeAPI) SearchAlumni(ctx context.Context, keyword, company string) ([]dto.AlumniProfile, error) {
	f.record("SearchAlumni")
	f.mu.Lock()
	f.searchArgs = [2]string{keyword, company}
	f.mu.Unlock()
	return f.searchResult, f.searchErr
}

func (f *fakeAPI) SendConnection(ctx context.Context, alumniID int64) error {
	f.record("SendConnection")
	return f.connectErr
}

func (f *fakeAPI) ReceivedConnections(ctx context.Context) ([]dto.ConnectionRequest, error) {
	f.record("ReceivedConnections")
	return f.requests, f.requestsErr
}

func (f *fakeAPI) ListPosts(ctx context.Context) ([]dto.ForumPost, error) {
	f.record("ListPosts")
	return f.posts, f.postsErr
}

func (f *fakeAPI) CreatePost(ctx context.Context, req dto.CreatePostRequest) error {
	f.record("CreatePost")
	if f.createPostErr != nil {
		return f.createPostErr
	}
	f.mu.Lock()
	f.created = append(f.created, req)
	f.mu.Unlock()
	return nil
}

func (f *fakeAPI) GetOwnProfile(ctx context.Context) (dto.ProfileLookup, error) {
	f.record("GetOwnProfile")
	return f.lookup, f.lookupErr
}

func (f *fakeAPI) CreateProfile(ctx context.Context, p dto.OwnProfile) (*dto.OwnProfile, error) {
	f.record("CreateProfile")
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	f.savedProfile = p
	p.ID = f.createdID
	return &p, nil
}

func (f *fakeAPI) UpdateProfile(ctx context.Context, id int64, p dto.OwnProfile) (*dto.OwnProfile, error) {
	f.record("UpdateProfile")
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	f.updatedID = id
	f.savedProfile = p
	p.ID = id
	return &p, nil
}

func (f *fakeAPI) ChatbotQuestions(ctx context.Context) ([]string, error) {
	f.record("ChatbotQuestions")
	return f.questions, f.questionsErr
}

func (f *fakeAPI) AskChatbot(ctx context.Context, question string) (string, error) {
	f.record("AskChatbot")
	return f.answer, f.askErr
}

var _ API = (*fakeAPI)(nil)
