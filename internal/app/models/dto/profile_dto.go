package dto

// ProfileState is the outcome of looking up the viewer's own profile
type ProfileState int

const (
	// ProfileNotFound means the viewer has no profile yet
	ProfileNotFound ProfileState = iota
	// ProfileFound means Profile holds the viewer's profile
	ProfileFound
)

// String implements fmt.Stringer
func (s ProfileState) String() string {
	if s == ProfileFound {
		return "found"
	}
	return "not-found"
}

// ProfileLookup is the result of GET /profiles/me. Failures are reported as
// errors, never as ProfileNotFound.
type ProfileLookup struct {
	State   ProfileState
	Profile *OwnProfile
}

// OwnProfile is the viewer's editable profile
type OwnProfile struct {
	ID        int64        `json:"id,omitempty"`
	Name      string       `json:"name"`
	Email     string       `json:"email"`
	Bio       string       `json:"bio"`
	Company   string       `json:"company"`
	Location  string       `json:"location"`
	Expertise string       `json:"expertise"`
	Website   string       `json:"website"`
	Phone     string       `json:"phone"`
	User      *UserSummary `json:"user,omitempty"`
}

// ProfileForm is the profile editor form. Mode and ID carry the load result
// across the round trip so a save knows whether to create or update.
type ProfileForm struct {
	Mode      string `form:"mode" validate:"omitempty,oneof=create update"`
	ID        int64  `form:"id"`
	Name      string `form:"name" validate:"max=100"`
	Email     string `form:"email" validate:"omitempty,email"`
	Bio       string `form:"bio" validate:"max=2000"`
	Company   string `form:"company" validate:"max=200"`
	Location  string `form:"location" validate:"max=200"`
	Expertise string `form:"expertise" validate:"max=500"`
	Website   string `form:"website" validate:"omitempty,url"`
	Phone     string `form:"phone" validate:"max=40"`
}

// ToProfile converts the form into the backend payload
func (f ProfileForm) ToProfile() OwnProfile {
	return OwnProfile{
		ID:        f.ID,
		Name:      f.Name,
		Email:     f.Email,
		Bio:       f.Bio,
		Company:   f.Company,
		Location:  f.Location,
		Expertise: f.Expertise,
		Website:   f.Website,
		Phone:     f.Phone,
	}
}

// FormFromProfile fills the editor from a loaded profile, falling back to the
// nested user's email like the directory does.
func FormFromProfile(p *OwnProfile) ProfileForm {
	if p == nil {
		return ProfileForm{}
	}
	email := p.Email
	if email == "" && p.User != nil {
		email = p.User.Email
	}
	return ProfileForm{
		ID:        p.ID,
		Name:      p.Name,
		Email:     email,
		Bio:       p.Bio,
		Company:   p.Company,
		Location:  p.Location,
		Expertise: p.Expertise,
		Website:   p.Website,
		Phone:     p.Phone,
	}
}
