package security

import (
	"fmt"
	"net/http"
	"time"

	"github.com/dgrijalva/jwt-go"

	"github.com/wayfarer-app/wayfarer/pkg/errors"
	"github.com/wayfarer-app/wayfarer/pkg/i18n"
)

const (
	TOKEN_KEY = "Authorization"
)

// TokenClaims is the authenticated identity attached to every request that
// carries one. Issuing these is the login collaborator's job; this service
// only verifies them.
type TokenClaims struct {
	Appid      string `json:"aid"`
	User       string `json:"u"`   // platform user id
	Email      string `json:"e"`   // used to claim pending invites
	ExpireTime int64  `json:"exp"` // unix expiry
	NotBefore  int64  `json:"nbf"`
}

func NewTokenClaims(appid, userID, email string, expireTime int64) TokenClaims {
	return TokenClaims{
		Appid:      appid,
		User:       userID,
		Email:      email,
		ExpireTime: expireTime,
		NotBefore:  time.Now().Unix() - 1,
	}
}

func (t TokenClaims) Valid() error {
	now := time.Now().Unix()
	if t.ExpireTime != 0 && now > t.ExpireTime {
		return fmt.Errorf("token expired")
	}
	if now < t.NotBefore {
		return fmt.Errorf("token not effective yet")
	}
	return nil
}

// SignJWT mints a token for the given claims with the service encrypt key.
func SignJWT(claims TokenClaims, encryptKey string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(encryptKey))
}

// VerifyJWT parses and validates a bearer token, returning its claims.
func VerifyJWT(tokenValue, encryptKey string) (TokenClaims, error) {
	claims := TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenValue, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(encryptKey), nil
	})
	if err != nil {
		return claims, errors.New("security.VerifyJWT", i18n.ERROR_UNAUTHORIZED, err).Code(http.StatusUnauthorized)
	}
	if !token.Valid {
		return claims, errors.New("security.VerifyJWT.invalid", i18n.ERROR_UNAUTHORIZED, nil).Code(http.StatusUnauthorized)
	}
	return claims, nil
}
