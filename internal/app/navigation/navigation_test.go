package navigation

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestBuild_SignedOut(t *testing.T) {
	bar := Build(false, "/login", "ignored")

	want := Bar{
		Brand: "CampusConnect",
		Actions: []Link{
			{Label: "Login", Path: "/login", Active: true},
			{Label: "Register", Path: "/register"},
		},
	}
	if diff := cmp.Diff(want, bar); diff != "" {
		t.Errorf("bar mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_SignedIn(t *testing.T) {
	bar := Build(true, "/alumni/5/connect", "ada@uni.edu")

	assert.True(t, bar.Authenticated)
	assert.Equal(t, "ada@uni.edu", bar.Identity)

	labels := make([]string, 0, len(bar.Links))
	for _, l := range bar.Links {
		labels = append(labels, l.Label)
		assert.Equal(t, l.Path == "/alumni", l.Active, l.Label)
	}
	assert.Equal(t, []string{"Dashboard", "Alumni", "Forum", "Profile"}, labels)

	if assert.Len(t, bar.Actions, 1) {
		assert.Equal(t, "Logout", bar.Actions[0].Label)
		assert.Equal(t, "post", bar.Actions[0].Method)
	}
}

func TestBuild_DoesNotShareLinks(t *testing.T) {
	first := Build(true, "/forum", "")
	second := Build(true, "/profile", "")
	assert.True(t, first.Links[2].Active)
	assert.False(t, second.Links[2].Active)
}
