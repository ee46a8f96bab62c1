package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT with convenience accessors used by bearer auth.
//
// It embeds [jwt.Token] for signing and parsing and [jwt.RegisteredClaims]
// for the standard claim set. SignedString holds the compact
// header.payload.signature form sent in the Authorization header.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	SignedString string `json:"-"`
}

// SubjectName returns the "sub" claim, failing when it is missing or empty.
func (t *Token) SubjectName() (string, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting subject from token: %w", err)
	}
	if subject == "" {
		return "", fmt.Errorf("error extracting subject from token: empty subject")
	}

	return subject, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
