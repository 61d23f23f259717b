package session

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/campusconnect/internal/pkg/apperrors"
)

type failingStore struct {
	loadErr, saveErr, clearErr error
}

func (f failingStore) Load() (string, error) { return "", f.loadErr }
func (f failingStore) Save(string) error     { return f.saveErr }
func (f failingStore) Clear() error          { return f.clearErr }

func TestNew_DerivesStateFromStore(t *testing.T) {
	s, err := New(NewMemoryStore(""))
	require.NoError(t, err)
	assert.False(t, s.IsAuthenticated())

	s, err = New(NewMemoryStore(" tok "))
	require.NoError(t, err)
	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, "tok", s.Token(context.Background()))
}

func TestNew_LoadErrorLeavesSignedOut(t *testing.T) {
	boom := errors.New("disk gone")
	s, err := New(failingStore{loadErr: boom})
	assert.ErrorIs(t, err, boom)
	require.NotNil(t, s)
	assert.False(t, s.IsAuthenticated())
}

func TestMarkAuthenticatedAndClear(t *testing.T) {
	store := NewMemoryStore("")
	s, err := New(store)
	require.NoError(t, err)

	require.NoError(t, s.MarkAuthenticated("abc"))
	assert.True(t, s.IsAuthenticated())
	stored, _ := store.Load()
	assert.Equal(t, "abc", stored)

	require.NoError(t, s.Clear())
	assert.False(t, s.IsAuthenticated())
	assert.Empty(t, s.Token(context.Background()))
	stored, _ = store.Load()
	assert.Empty(t, stored)
}

func TestMarkAuthenticated_RejectsEmptyToken(t *testing.T) {
	s, _ := New(NewMemoryStore(""))
	assert.ErrorIs(t, s.MarkAuthenticated("   "), apperrors.ErrInvalidSession)
	assert.False(t, s.IsAuthenticated())
}

func TestMarkAuthenticated_SaveFailureKeepsState(t *testing.T) {
	boom := errors.New("read-only")
	s, _ := New(failingStore{saveErr: boom})
	assert.ErrorIs(t, s.MarkAuthenticated("tok"), boom)
	assert.False(t, s.IsAuthenticated())
}

func TestClear_StoreFailureStillSignsOut(t *testing.T) {
	boom := errors.New("locked")
	s := &Session{store: failingStore{clearErr: boom}, token: "tok"}
	assert.ErrorIs(t, s.Clear(), boom)
	assert.False(t, s.IsAuthenticated())
}

func TestContextSource(t *testing.T) {
	var src ContextSource
	assert.Empty(t, src.Token(context.Background()))

	s, _ := New(NewMemoryStore("ctx-token"))
	ctx := WithSession(context.Background(), s)
	assert.Same(t, s, FromContext(ctx))
	assert.Equal(t, "ctx-token", src.Token(ctx))
}

func TestSession_ConcurrentAccess(t *testing.T) {
	s, _ := New(NewMemoryStore(""))
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = s.MarkAuthenticated("tok")
		}()
		go func() {
			defer wg.Done()
			_ = s.IsAuthenticated()
			_ = s.Token(context.Background())
		}()
	}
	wg.Wait()
	assert.True(t, s.IsAuthenticated())
}
