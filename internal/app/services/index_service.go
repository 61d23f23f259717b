package services

// Feature is one card of the landing page
type Feature struct {
	Icon        string
	Title       string
	Description string
}

// Stat is one headline number of the landing page
type Stat struct {
	Number string
	Label  string
}

// IndexView is the landing page model
type IndexView struct {
	Headline      string
	Tagline       string
	Features      []Feature
	Stats         []Stat
	Authenticated bool
}

var landingFeatures = []Feature{
	{
		Icon:        "users",
		Title:       "Alumni Network",
		Description: "Connect with successful graduates from your institution and expand your professional network.",
	},
	{
		Icon:        "message-square",
		Title:       "Discussion Forum",
		Description: "Engage in meaningful conversations, share knowledge, and learn from the community.",
	},
	{
		Icon:        "bot",
		Title:       "Smart Assistant",
		Description: "Get instant help with our AI-powered chatbot for common questions and guidance.",
	},
}

var landingStats = []Stat{
	{Number: "10,000+", Label: "Active Alumni"},
	{Number: "500+", Label: "Companies"},
	{Number: "50+", Label: "Countries"},
}

// Index returns the static landing content. Signed-in visitors get a
// dashboard call to action instead of the sign-up buttons.
func Index(authenticated bool) IndexView {
	return IndexView{
		Headline:      "CampusConnect",
		Tagline:       "Bridge the gap between students and alumni. Connect, learn, and grow together in our professional community.",
		Features:      landingFeatures,
		Stats:         landingStats,
		Authenticated: authenticated,
	}
}
