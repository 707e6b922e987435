package service

import "github.com/golang-jwt/jwt/v5"

// Claims is the authenticated identity payload embedded in a bearer token.
// The registered Subject claim carries the account's email.
type Claims struct {
	jwt.RegisteredClaims
}

// Email returns the account email the token was issued for.
func (c *Claims) Email() string {
	return c.Subject
}

// TokenService defines the interface for issuing and verifying bearer tokens.
// Issued tokens carry no expiry; they stay valid until the signing secret rotates.
type TokenService interface {
	// Generate creates a signed token bound to the given account email.
	Generate(email string) (string, error)

	// Validate checks the signature and structure of a token string and
	// returns the embedded claims.
	Validate(tokenString string) (*Claims, error)
}
