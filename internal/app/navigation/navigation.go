// Package navigation builds the top bar shown on every page.
package navigation

import "strings"

// Link is one entry of the bar
type Link struct {
	Label  string
	Path   string
	Icon   string
	Active bool
	// Method is "post" for actions that must not be triggered by a plain link
	Method string
}

// Bar is the rendered navigation model
type Bar struct {
	Brand         string
	Authenticated bool
	Identity      string
	Links         []Link
	Actions       []Link
}

var memberLinks = []Link{
	{Label: "Dashboard", Path: "/dashboard", Icon: "home"},
	{Label: "Alumni", Path: "/alumni", Icon: "users"},
	{Label: "Forum", Path: "/forum", Icon: "message-square"},
	{Label: "Profile", Path: "/profile", Icon: "user"},
}

// Build returns the bar for the current visitor. identity is an optional
// display label and may be empty.
func Build(authenticated bool, currentPath, identity string) Bar {
	bar := Bar{Brand: "CampusConnect", Authenticated: authenticated}

	if !authenticated {
		bar.Actions = []Link{
			{Label: "Login", Path: "/login", Active: currentPath == "/login"},
			{Label: "Register", Path: "/register", Active: currentPath == "/register"},
		}
		return bar
	}

	bar.Identity = identity
	bar.Links = make([]Link, len(memberLinks))
	for i, l := range memberLinks {
		l.Active = isActive(currentPath, l.Path)
		bar.Links[i] = l
	}
	bar.Actions = []Link{{Label: "Logout", Path: "/logout", Icon: "log-out", Method: "post"}}
	return bar
}

func isActive(current, path string) bool {
	return current == path || strings.HasPrefix(current, path+"/")
}
