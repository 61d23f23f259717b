package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitExpertise(t *testing.T) {
	assert.Equal(t, []string{"Go", "Kubernetes", "ML"}, SplitExpertise(" Go, Kubernetes,,ML ,"))
	assert.Nil(t, SplitExpertise("   "))
	assert.Equal(t, []string{"Data Science"}, SplitExpertise("Data Science"))
}

func TestAlumniProfile_Fallbacks(t *testing.T) {
	a := AlumniProfile{User: &UserSummary{ID: 7, Email: "ada@uni.edu"}}
	assert.Equal(t, "ada@uni.edu", a.DisplayEmail())
	assert.Equal(t, int64(7), a.ConnectID())

	a.ID, a.Email = 3, "direct@uni.edu"
	assert.Equal(t, "direct@uni.edu", a.DisplayEmail())
	assert.Equal(t, int64(3), a.ConnectID())

	assert.Zero(t, AlumniProfile{}.ConnectID())
	assert.Empty(t, AlumniProfile{}.DisplayEmail())
}

func TestForumPost_Defaults(t *testing.T) {
	p := ForumPost{}
	assert.Equal(t, "Anonymous", p.AuthorName())
	assert.Equal(t, "General", p.CategoryName())

	p = ForumPost{Author: "grace", User: &UserSummary{Name: "Grace Hopper"}, Category: "Careers"}
	assert.Equal(t, "Grace Hopper", p.AuthorName())
	assert.Equal(t, "Careers", p.CategoryName())
}

func TestAlumniSearchForm_IsEmpty(t *testing.T) {
	assert.True(t, AlumniSearchForm{Keyword: "  ", Company: ""}.IsEmpty())
	assert.False(t, AlumniSearchForm{Company: "Acme"}.IsEmpty())
}

func TestFormFromProfile(t *testing.T) {
	form := FormFromProfile(&OwnProfile{ID: 9, Name: "Linus", User: &UserSummary{Email: "linus@uni.edu"}})
	assert.Equal(t, int64(9), form.ID)
	assert.Equal(t, "linus@uni.edu", form.Email)
	assert.Equal(t, ProfileForm{}, FormFromProfile(nil))
}

func TestErrorBody_Text(t *testing.T) {
	assert.Equal(t, "bad", ErrorBody{Message: "bad"}.Text())
	assert.Equal(t, "flat", ErrorBody{Error: []byte(`"flat"`)}.Text())
	assert.Equal(t, "nested", ErrorBody{Error: []byte(`{"message":"nested"}`)}.Text())
	assert.Equal(t, "extra", ErrorBody{Error: []byte(`{}`), Details: "extra"}.Text())
}

func TestPaginationInfo(t *testing.T) {
	p := PaginationInfo{CurrentPage: 2, TotalPages: 3}
	assert.True(t, p.HasPrev())
	assert.True(t, p.HasNext())
	assert.False(t, PaginationInfo{CurrentPage: 1, TotalPages: 1}.HasNext())
}
