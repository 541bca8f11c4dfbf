// Package session implements signed, time-boxed session tokens and the
// cookie they travel in.
//
// Tokens are stateless JWTs carrying the user uid; expiry is checked on
// every parse. There is no server-side revocation list, so logout only
// clears the client cookie and an issued token stays valid until it
// expires.
package session

import "time"

// Maker issues and verifies session tokens.
type Maker interface {
	// GenerateToken issues a token bound to the given user uid.
	GenerateToken(userUID string) (string, error)
	// ParseToken verifies the signature and expiry and returns the claims.
	ParseToken(tokenStr string) (*Claims, error)
}

// MakerImpl implements Maker with an HMAC secret and a token TTL.
type MakerImpl struct {
	secretKey string
	tokenTTL  time.Duration
}

// NewMaker creates a MakerImpl from the signing secret and TTL.
func NewMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}
