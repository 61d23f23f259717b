package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/campusconnect/internal/app/models/dto"
)

func TestProfileLoad_States(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		view := NewProfileService(&fakeAPI{lookup: dto.ProfileLookup{State: dto.ProfileNotFound}}, zerolog.Nop()).Load(context.Background())
		assert.Equal(t, dto.ProfileForm{Mode: ProfileModeCreate}, view.Form)
		assert.Empty(t, view.Toasts)
	})

	t.Run("found", func(t *testing.T) {
		api := &fakeAPI{lookup: dto.ProfileLookup{
			State: dto.ProfileFound,
			Profile: &dto.OwnProfile{
				ID:        7,
				Name:      "Ada",
				Expertise: "go, ml",
				User:      &dto.UserSummary{Email: "ada@uni.edu"},
			},
		}}
		view := NewProfileService(api, zerolog.Nop()).Load(context.Background())

		want := ProfileView{
			Form: dto.ProfileForm{Mode: ProfileModeUpdate, ID: 7, Name: "Ada", Email: "ada@uni.edu", Expertise: "go, ml"},
			Tags: []string{"go", "ml"},
		}
		if diff := cmp.Diff(want, view); diff != "" {
			t.Errorf("profile view mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("error", func(t *testing.T) {
		view := NewProfileService(&fakeAPI{lookupErr: errors.New("down")}, zerolog.Nop()).Load(context.Background())
		assert.Equal(t, ProfileModeCreate, view.Form.Mode)
		require.Len(t, view.Toasts, 1)
		assert.True(t, view.Toasts[0].IsError())
	})
}

func TestProfileSave_CreateThenUpdate(t *testing.T) {
	api := &fakeAPI{createdID: 11}
	svc := NewProfileService(api, zerolog.Nop())

	view := svc.Save(context.Background(), dto.ProfileForm{Mode: ProfileModeCreate, Name: "Ada"})
	assert.True(t, view.Saved)
	assert.Equal(t, ProfileModeUpdate, view.Form.Mode)
	assert.Equal(t, int64(11), view.Form.ID)
	assert.Equal(t, 1, api.count("CreateProfile"))

	view = svc.Save(context.Background(), view.Form)
	assert.True(t, view.Saved)
	assert.Equal(t, 1, api.count("UpdateProfile"))
	assert.Equal(t, int64(11), api.updatedID)
	assert.Equal(t, "Profile saved!", view.Toasts[0].Title)
}

func TestProfileSave_FailureAndValidation(t *testing.T) {
	api := &fakeAPI{saveErr: errors.New("down")}
	view := NewProfileService(api, zerolog.Nop()).Save(context.Background(), dto.ProfileForm{Mode: ProfileModeUpdate, ID: 3, Name: "Ada"})
	assert.False(t, view.Saved)
	assert.Equal(t, "Failed to save", view.Toasts[0].Title)

	api = &fakeAPI{}
	view = NewProfileService(api, zerolog.Nop()).Save(context.Background(), dto.ProfileForm{Email: "nope"})
	assert.Contains(t, view.Errors, "email")
	assert.Zero(t, api.total())
}
