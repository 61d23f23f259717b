package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/campusconnect/internal/app/models/dto"
	"github.com/yigit/campusconnect/internal/pkg/apperrors"
)

func TestStruct_PostFormRejectsBlankFields(t *testing.T) {
	form := dto.PostForm{Title: "   ", Content: "\n\t"}
	err := Struct(&form)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	var fields FieldErrors
	require.ErrorAs(t, err, &fields)
	assert.Equal(t, "Title is required", fields["title"])
	assert.Equal(t, "Content is required", fields["content"])
}

func TestStruct_TrimsBeforeValidating(t *testing.T) {
	form := dto.PostForm{Title: "  Hiring in Berlin ", Content: " Ping me "}
	require.NoError(t, Struct(&form))
	assert.Equal(t, "Hiring in Berlin", form.Title)
	assert.Equal(t, "Ping me", form.Content)
}

func TestStruct_LoginAndRegister(t *testing.T) {
	login := dto.LoginForm{Email: "not-an-email", Password: ""}
	err := Struct(&login)
	var fields FieldErrors
	require.ErrorAs(t, err, &fields)
	assert.Contains(t, fields["email"], "valid email")
	assert.Equal(t, "Password is required", fields["password"])

	reg := dto.RegisterForm{Name: "Ada", Email: "ada@uni.edu", Password: " 12345", Role: "student"}
	require.NoError(t, Struct(&reg))
	assert.Equal(t, " 12345", reg.Password, "passwords are not trimmed")

	reg.Role = "dean"
	reg.GraduationYear = 1800
	err = Struct(&reg)
	require.ErrorAs(t, err, &fields)
	assert.Contains(t, fields["role"], "one of")
	assert.Contains(t, fields["graduationYear"], "Graduation year")
}

func TestStruct_ProfileFormOptionalFields(t *testing.T) {
	require.NoError(t, Struct(&dto.ProfileForm{}))

	err := Struct(&dto.ProfileForm{Website: "not a url"})
	var fields FieldErrors
	require.ErrorAs(t, err, &fields)
	assert.Contains(t, fields, "website")
}

func TestIsEmail(t *testing.T) {
	assert.True(t, IsEmail(" Ada@Uni.EDU "))
	assert.False(t, IsEmail("ada@"))
}

func TestHumanize(t *testing.T) {
	assert.Equal(t, "Graduation year", humanize("graduationYear"))
	assert.Equal(t, "Title", humanize("title"))
}
