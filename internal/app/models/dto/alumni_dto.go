package dto

import "strings"

// UserSummary is the nested user object some backend payloads carry
type UserSummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AlumniProfile is one entry of the alumni directory
type AlumniProfile struct {
	ID        int64        `json:"id"`
	Name      string       `json:"name"`
	Email     string       `json:"email"`
	Company   string       `json:"company"`
	Location  string       `json:"location"`
	Expertise string       `json:"expertise"`
	Bio       string       `json:"bio"`
	User      *UserSummary `json:"user,omitempty"`
}

// DisplayEmail falls back to the nested user's email
func (a AlumniProfile) DisplayEmail() string {
	if a.Email != "" {
		return a.Email
	}
	if a.User != nil {
		return a.User.Email
	}
	return ""
}

// ConnectID is the id a connection request should target
func (a AlumniProfile) ConnectID() int64 {
	if a.ID != 0 {
		return a.ID
	}
	if a.User != nil {
		return a.User.ID
	}
	return 0
}

// Tags splits the comma-joined expertise field for display
func (a AlumniProfile) Tags() []string {
	return SplitExpertise(a.Expertise)
}

// SplitExpertise turns "go, kubernetes,,ml" into ["go" "kubernetes" "ml"].
// The wire format stays a single comma-joined string.
func SplitExpertise(expertise string) []string {
	if strings.TrimSpace(expertise) == "" {
		return nil
	}
	parts := strings.Split(expertise, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}

// AlumniSearchForm holds the two optional directory filters
type AlumniSearchForm struct {
	Keyword string `form:"keyword"`
	Company string `form:"company"`
	Page    int    `form:"page"`
}

// IsEmpty reports whether neither filter is set
func (f AlumniSearchForm) IsEmpty() bool {
	return strings.TrimSpace(f.Keyword) == "" && strings.TrimSpace(f.Company) == ""
}
