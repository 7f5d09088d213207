package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/ougirez/perdash/internal/pkg/constants"
	"github.com/spf13/viper"
)

const AuthTokenTTL = 24 * time.Hour

var errEmptySigningKey = errors.New("empty signing key")

type AuthTokenWrapper struct {
	Secret string `json:"secret"`
	jwt.StandardClaims
}

func signingKey() ([]byte, error) {
	key := viper.GetString(constants.ViperSecretKey)
	if key == "" {
		return nil, errEmptySigningKey
	}

	return []byte(key), nil
}

// GenerateAuthToken signs the wrapper with the server secret. A zero expiry
// is replaced by AuthTokenTTL from now.
func GenerateAuthToken(wrapper *AuthTokenWrapper) (string, error) {
	key, err := signingKey()
	if err != nil {
		return "", err
	}

	if wrapper.ExpiresAt == 0 {
		wrapper.ExpiresAt = time.Now().Add(AuthTokenTTL).Unix()
	}
	if wrapper.IssuedAt == 0 {
		wrapper.IssuedAt = time.Now().Unix()
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, wrapper).SignedString(key)
	if err != nil {
		return "", fmt.Errorf("jwt.SignedString: %w", err)
	}

	return token, nil
}

func ParseAuthToken(tokenString string) (*AuthTokenWrapper, error) {
	key, err := signingKey()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", constants.ErrUnauthorized, err)
	}

	wrapper := new(AuthTokenWrapper)
	token, err := jwt.ParseWithClaims(tokenString, wrapper, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return key, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", constants.ErrUnauthorized, err)
	}
	if !token.Valid {
		return nil, constants.ErrUnauthorized
	}

	return wrapper, nil
}
