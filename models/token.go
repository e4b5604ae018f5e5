package models

import "github.com/golang-jwt/jwt/v5"

// Claims is the JWT claim set carried by a session token. The subject
// holds the user ID; username and role are custom claims so that the
// access gate can authorize requests without a store lookup.
type Claims struct {
	jwt.RegisteredClaims

	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// Token pairs the compact signed serialization of a session token with
// its decoded claim set.
type Token struct {
	// SignedString is the compact JWS form (header.payload.signature)
	// ready to be placed in the session cookie or a bearer header.
	// Excluded from JSON; use [Token.String].
	SignedString string `json:"-"`

	// Claims is the decoded claim set of the token.
	Claims Claims `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}

// Principal returns the authenticated identity described by the token's
// claims.
func (t Token) Principal() Principal {
	return Principal{
		UserID:   t.Claims.Subject,
		Username: t.Claims.Username,
		Role:     t.Claims.Role,
	}
}
