package enums

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	assert.Equal(t, RoleAlumni, ParseRole(" ALUMNI "))
	assert.Equal(t, RoleStudent, ParseRole("student"))
	assert.Equal(t, RoleType("professor"), ParseRole("Professor"))
}

func TestRoles(t *testing.T) {
	assert.Equal(t, []RoleType{RoleStudent, RoleAlumni}, Roles())
	assert.Equal(t, "Alumni", RoleAlumni.Label())
	assert.Equal(t, "professor", RoleType("professor").Label())
}
