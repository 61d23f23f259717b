package session

import (
	"github.com/golang-jwt/jwt/v5"
)

// Identity is what the nav bar shows about the signed-in user. It is read
// from the token without verifying it and never drives access decisions.
type Identity struct {
	Subject string
	Email   string
	Name    string
	Role    string
}

// Label returns the best display name
func (i Identity) Label() string {
	if i.Email != "" {
		return i.Email
	}
	if i.Name != "" {
		return i.Name
	}
	return i.Subject
}

// IdentityFromToken decodes the claims of a JWT token. Opaque tokens report ok=false.
func IdentityFromToken(token string) (Identity, bool) {
	if token == "" {
		return Identity{}, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return Identity{}, false
	}

	id := Identity{
		Email: stringClaim(claims, "email"),
		Name:  stringClaim(claims, "name"),
		Role:  stringClaim(claims, "role", "roleType"),
	}
	id.Subject, _ = claims.GetSubject()
	if id.Label() == "" {
		return Identity{}, false
	}
	return id, true
}

func stringClaim(claims jwt.MapClaims, keys ...string) string {
	for _, k := range keys {
		if v, ok := claims[k].(string); ok && v != "" {
			return v
		}
	}
	return ""
}
