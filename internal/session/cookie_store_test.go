package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/campusconnect/internal/pkg/apperrors"
)

const testSecret = "0123456789abcdef-test"

func TestSealer(t *testing.T) {
	sealer, err := NewSealer(testSecret, "session")
	require.NoError(t, err)

	sealed, err := sealer.Seal([]byte("tok"))
	require.NoError(t, err)
	plain, err := sealer.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, "tok", string(plain))

	tampered := []byte(sealed)
	mid := len(tampered) / 2
	if tampered[mid] == 'A' {
		tampered[mid] = 'B'
	} else {
		tampered[mid] = 'A'
	}
	_, err = sealer.Open(string(tampered))
	assert.ErrorIs(t, err, apperrors.ErrInvalidSession)

	_, err = sealer.Open("short")
	assert.ErrorIs(t, err, apperrors.ErrInvalidSession)

	other, err := NewSealer(testSecret, "flash")
	require.NoError(t, err)
	_, err = other.Open(sealed)
	assert.ErrorIs(t, err, apperrors.ErrInvalidSession, "keys differ per purpose")
}

func TestNewSealer_ShortSecret(t *testing.T) {
	_, err := NewSealer("short", "session")
	assert.Error(t, err)
}

func TestCookieStore(t *testing.T) {
	sealer, err := NewSealer(testSecret, "session")
	require.NoError(t, err)
	opts := CookieOptions{Name: "cc_session", Secure: true, MaxAge: time.Hour}

	rec := httptest.NewRecorder()
	store := NewCookieStore(rec, httptest.NewRequest(http.MethodGet, "/", nil), sealer, opts)
	require.NoError(t, store.Save("abc"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	assert.Equal(t, "cc_session", c.Name)
	assert.True(t, c.HttpOnly)
	assert.True(t, c.Secure)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	assert.Equal(t, 3600, c.MaxAge)
	assert.NotContains(t, c.Value, "abc")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(c)
	s, err := New(NewCookieStore(httptest.NewRecorder(), req, sealer, opts))
	require.NoError(t, err)
	assert.True(t, s.IsAuthenticated())

	forged := httptest.NewRequest(http.MethodGet, "/", nil)
	forged.AddCookie(&http.Cookie{Name: "cc_session", Value: "plain-token"})
	s, err = New(NewCookieStore(httptest.NewRecorder(), forged, sealer, opts))
	require.NoError(t, err)
	assert.False(t, s.IsAuthenticated())
}

func TestCookieStore_Clear(t *testing.T) {
	sealer, err := NewSealer(testSecret, "session")
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	store := NewCookieStore(rec, httptest.NewRequest(http.MethodGet, "/", nil), sealer, CookieOptions{Name: "cc_session"})
	require.NoError(t, store.Clear())

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)
	assert.Empty(t, cookies[0].Value)
}
