package utils // package utils provides helper functions for password hashing and token creation

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessToken represents a signed HS256 JWT along with its expiry. The Token
// field contains the serialized JWT string; Exp stores the UTC expiration
// time. Access tokens are short-lived bearer tokens; this service issues no
// refresh tokens.
type AccessToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// NewAccessToken builds and signs an HS256 JWT for a user. The subject claim
// carries the user's phone number, which is the login identifier of this
// system. ttlMin must be positive so every issued token has a finite expiry.
func NewAccessToken(secret, phoneNumber string, ttlMin int) (AccessToken, error) {
	now := time.Now().UTC()
	exp := now.Add(time.Duration(ttlMin) * time.Minute)
	claims := jwt.MapClaims{
		"sub": phoneNumber,
		"exp": exp.Unix(),
		"iat": now.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{Token: signed, Exp: exp}, nil
}
