package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/yigit/campusconnect/internal/app/models/dto"
	"github.com/yigit/campusconnect/internal/pkg/validation"
)

// Profile form modes
const (
	ProfileModeCreate = "create"
	ProfileModeUpdate = "update"
)

// ProfileView is the profile editor model
type ProfileView struct {
	Form   dto.ProfileForm
	Tags   []string
	Saved  bool
	Errors validation.FieldErrors
	Toasts []dto.Toast
}

// ProfileService defines the interface for the viewer's profile
type ProfileService interface {
	Load(ctx context.Context) ProfileView
	Save(ctx context.Context, form dto.ProfileForm) ProfileView
}

// profileServiceImpl implements the ProfileService interface
type profileServiceImpl struct {
	api    ProfileAPI
	logger zerolog.Logger
}

// NewProfileService creates a new profile service instance
func NewProfileService(api ProfileAPI, logger zerolog.Logger) ProfileService {
	return &profileServiceImpl{
		api:    api,
		logger: logger,
	}
}

// Load fetches the profile. A missing profile opens an empty create form; a
// failed fetch does too, with a toast, so the two stay distinguishable.
func (s *profileServiceImpl) Load(ctx context.Context) ProfileView {
	lookup, err := s.api.GetOwnProfile(ctx)
	if err != nil {
		return ProfileView{
			Form:   dto.ProfileForm{Mode: ProfileModeCreate},
			Toasts: []dto.Toast{ToastForError(s.logger, err, "Error", "Failed to load your profile")},
		}
	}

	if lookup.State != dto.ProfileFound {
		return ProfileView{Form: dto.ProfileForm{Mode: ProfileModeCreate}}
	}

	form := dto.FormFromProfile(lookup.Profile)
	form.Mode = ProfileModeUpdate
	return ProfileView{Form: form, Tags: dto.SplitExpertise(form.Expertise)}
}

// Save creates or updates depending on the mode the form was loaded with.
// After a create the form switches to update mode with the new id.
func (s *profileServiceImpl) Save(ctx context.Context, form dto.ProfileForm) ProfileView {
	if form.Mode == "" {
		form.Mode = ProfileModeCreate
	}
	if err := validation.Struct(&form); err != nil {
		fields, _ := err.(validation.FieldErrors)
		return ProfileView{
			Form:   form,
			Tags:   dto.SplitExpertise(form.Expertise),
			Errors: fields,
			Toasts: []dto.Toast{ToastForError(s.logger, err, "Failed to save", "Unable to update your profile")},
		}
	}

	var (
		saved *dto.OwnProfile
		err   error
	)
	if form.Mode == ProfileModeUpdate && form.ID > 0 {
		saved, err = s.api.UpdateProfile(ctx, form.ID, form.ToProfile())
	} else {
		saved, err = s.api.CreateProfile(ctx, form.ToProfile())
	}
	if err != nil {
		return ProfileView{
			Form:   form,
			Tags:   dto.SplitExpertise(form.Expertise),
			Toasts: []dto.Toast{ToastForError(s.logger, err, "Failed to save", "Unable to update your profile")},
		}
	}

	if saved != nil && saved.ID > 0 {
		form.ID = saved.ID
	}
	if form.ID > 0 {
		form.Mode = ProfileModeUpdate
	}
	s.logger.Info().Int64("profileId", form.ID).Str("mode", form.Mode).Msg("Profile saved")

	return ProfileView{
		Form:   form,
		Tags:   dto.SplitExpertise(form.Expertise),
		Saved:  true,
		Toasts: []dto.Toast{dto.SuccessToast("Profile saved!", "Your profile has been updated successfully")},
	}
}
