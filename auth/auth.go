package auth

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Local HS256 tokens back the development login flow when no Auth0
// tenant is configured. Production traffic uses Auth0 bearer tokens and
// never touches this package.

func secretKey() ([]byte, error) {
	secret := os.Getenv("JWT_SECRET_KEY")
	if secret == "" {
		return nil, errors.New("JWT_SECRET_KEY not set")
	}
	return []byte(secret), nil
}

// CreateToken issues a signed session token for the given subject.
func CreateToken(subject, nickname string) (string, error) {
	key, err := secretKey()
	if err != nil {
		return "", err
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256,
		jwt.MapClaims{
			"sub":      subject,
			"nickname": nickname,
			"exp":      time.Now().Add(24 * time.Hour).Unix(),
		})
	return token.SignedString(key)
}

// ParseToken verifies a session token and returns its subject and
// nickname claims.
func ParseToken(tokenString string) (subject, nickname string, err error) {
	key, err := secretKey()
	if err != nil {
		return "", "", err
	}
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return key, nil
	})
	if err != nil {
		return "", "", err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", "", errors.New("invalid token")
	}
	subject, _ = claims["sub"].(string)
	nickname, _ = claims["nickname"].(string)
	if subject == "" {
		return "", "", errors.New("token missing subject")
	}
	return subject, nickname, nil
}
