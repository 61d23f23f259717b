package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/campusconnect/internal/app/models/dto"
	"github.com/yigit/campusconnect/internal/pkg/apperrors"
	"github.com/yigit/campusconnect/internal/session"
)

func newSession(t *testing.T, token string) *session.Session {
	t.Helper()
	s, err := session.New(session.NewMemoryStore(token))
	require.NoError(t, err)
	return s
}

func TestLogin_TokenMarksAuthenticated(t *testing.T) {
	api := &fakeAPI{loginResp: &dto.LoginResponse{Token: "tok"}}
	sess := newSession(t, "")

	res := NewAuthService(api, zerolog.Nop()).Login(context.Background(), sess, dto.LoginForm{Email: " ada@uni.edu ", Password: "secret"})

	assert.True(t, res.Success)
	assert.Equal(t, "/dashboard", res.Redirect)
	assert.Equal(t, "Welcome back!", res.Toast.Title)
	assert.False(t, res.Toast.IsError())
	assert.True(t, sess.IsAuthenticated())
	assert.Equal(t, "tok", sess.Token(context.Background()))
}

func TestLogin_NoTokenIsLoginFailed(t *testing.T) {
	api := &fakeAPI{loginResp: &dto.LoginResponse{}}
	sess := newSession(t, "")

	res := NewAuthService(api, zerolog.Nop()).Login(context.Background(), sess, dto.LoginForm{Email: "ada@uni.edu", Password: "secret"})

	assert.False(t, res.Success)
	assert.Equal(t, "Login failed", res.Toast.Title)
	assert.True(t, res.Toast.IsError())
	assert.False(t, sess.IsAuthenticated())
}

func TestLogin_BackendErrorIsError(t *testing.T) {
	api := &fakeAPI{loginErr: &apperrors.APIError{Method: "POST", Path: "/auth/login", StatusCode: 500}}
	sess := newSession(t, "")

	res := NewAuthService(api, zerolog.Nop()).Login(context.Background(), sess, dto.LoginForm{Email: "ada@uni.edu", Password: "secret"})

	assert.Equal(t, "Error", res.Toast.Title)
	assert.Equal(t, "Something went wrong. Please try again.", res.Toast.Description)
	assert.False(t, sess.IsAuthenticated())
}

func TestLogin_InvalidFormMakesNoCall(t *testing.T) {
	api := &fakeAPI{}
	res := NewAuthService(api, zerolog.Nop()).Login(context.Background(), newSession(t, ""), dto.LoginForm{Email: "not-an-email"})

	assert.False(t, res.Success)
	assert.Contains(t, res.Errors, "email")
	assert.Contains(t, res.Errors, "password")
	assert.Zero(t, api.total())
}

func TestRegister(t *testing.T) {
	form := dto.RegisterForm{Name: "Ada", Email: "ada@uni.edu", Password: "secret1", Role: "alumni"}

	api := &fakeAPI{}
	res := NewAuthService(api, zerolog.Nop()).Register(context.Background(), form)
	assert.True(t, res.Success)
	assert.Equal(t, "/login", res.Redirect)
	assert.Equal(t, 1, api.count("Register"))

	api = &fakeAPI{registerErr: errors.New("boom")}
	res = NewAuthService(api, zerolog.Nop()).Register(context.Background(), form)
	assert.False(t, res.Success)
	assert.True(t, res.Toast.IsError())

	form.Password = "123"
	form.Role = "professor"
	api = &fakeAPI{}
	res = NewAuthService(api, zerolog.Nop()).Register(context.Background(), form)
	assert.Contains(t, res.Errors, "password")
	assert.Contains(t, res.Errors, "role")
	assert.Zero(t, api.total())
}

func TestLogout_ClearsSession(t *testing.T) {
	sess := newSession(t, "tok")
	res := NewAuthService(&fakeAPI{}, zerolog.Nop()).Logout(sess)

	assert.True(t, res.Success)
	assert.Equal(t, "/", res.Redirect)
	assert.False(t, sess.IsAuthenticated())
}
