package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var ErrBadToken = errors.New("invalid token")

const (
	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour

	refreshTokenType = "refresh"
)

// HashPassword hashes a given password using bcrypt.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPassword compares a plain password with its hashed version.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

type Claims struct {
	UserID    string `json:"userId"`
	Role      string `json:"role"`
	TokenType string `json:"typ,omitempty"`
	jwt.RegisteredClaims
}

func (c *Claims) IsRefresh() bool { return c.TokenType == refreshTokenType }

// MakeAccessToken mints the short-lived token that authorizes requests.
func MakeAccessToken(userID, role, secret string) (string, error) {
	return makeToken(userID, role, "", AccessTokenTTL, secret)
}

// MakeRefreshToken mints the longer-lived token. It carries a typ claim so
// it can never be replayed as an access token.
func MakeRefreshToken(userID, role, secret string) (string, error) {
	return makeToken(userID, role, refreshTokenType, RefreshTokenTTL, secret)
}

func makeToken(userID, role, typ string, ttl time.Duration, secret string) (string, error) {
	claims := &Claims{
		UserID:    userID,
		Role:      role,
		TokenType: typ,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseToken validates a given token string.
func ParseToken(raw, secret string) (*Claims, error) {
	tok, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (any, error) {
		// block alg confusion
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrBadToken
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return nil, ErrBadToken
	}
	return claims, nil
}
