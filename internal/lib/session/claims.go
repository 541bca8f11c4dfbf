package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the custom JWT claims of a session token.
type Claims struct {
	UserUID              string `json:"uid"`
	jwt.RegisteredClaims        // ExpiresAt, IssuedAt and friends
}

// GenerateToken signs a token for the given user uid with HS256.
func (m *MakerImpl) GenerateToken(userUID string) (string, error) {
	claims := Claims{
		UserUID: userUID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.secretKey))
}

// ParseToken verifies the token signature and validity and returns the
// claims. Expired, tampered and malformed tokens all fail here.
func (m *MakerImpl) ParseToken(tokenStr string) (*Claims, error) {
	const op = "session.ParseToken"
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(_ *jwt.Token) (any, error) {
		return []byte(m.secretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%s: invalid token", op)
	}
	return claims, nil
}
