package session

import (
	"github.com/golang-jwt/jwt/v4"
)

// Identity is the user identity embedded in the backend's JWT.
type Identity struct {
	UserID   int
	Username string
}

// DecodeIdentity extracts the id and username claims from a token without
// verifying the signature; the backend is the only party that needs to verify,
// the client just reads its own identity out of the payload. A token that
// cannot be decoded yields UserID -1, which callers treat as invalid.
func DecodeIdentity(token string) Identity {
	ident := Identity{UserID: -1, Username: "User"}

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return ident
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return ident
	}

	if id, ok := claims["id"].(float64); ok {
		ident.UserID = int(id)
	}
	if name, ok := claims["username"].(string); ok && name != "" {
		ident.Username = name
	}
	return ident
}
