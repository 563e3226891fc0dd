// Package auth mints and verifies the signed session tokens carried in the
// session cookie. Tokens are self-contained: validity is purely signature
// plus expiry, there is no server-side session store or revocation list, so
// every protected request verifies the token fresh.
package auth

import (
	"time"

	"github.com/daynu/herejpg/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the session claim set: the registered claims plus the user's
// identity and role as issued at login.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// Identity is the verified result of a token check, handed to handlers and
// to the authorization policy.
type Identity struct {
	UserID string
	Name   string
	Email  string
	Role   string
}

// GenerateToken signs a session token for the given identity, valid for
// validityDuration from now (HS256).
func GenerateToken(id Identity, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		UserID: id.UserID,
		Name:   id.Name,
		Email:  id.Email,
		Role:   id.Role,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetIdentityFromToken verifies signature and expiry and returns the
// embedded identity. Malformed, forged and expired tokens all fail with
// common.ErrInvalidToken.
func GetIdentityFromToken(tokenString string, secretKey []byte) (*Identity, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrInvalidToken
		}
		return secretKey, nil
	})
	if err != nil {
		return nil, common.ErrInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return &Identity{
		UserID: claims.UserID,
		Name:   claims.Name,
		Email:  claims.Email,
		Role:   claims.Role,
	}, nil
}
