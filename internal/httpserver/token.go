package httpserver

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var errBadToken = errors.New("invalid session token")

// tokenSigner issues HS256 JWTs binding a client to one game ID.
type tokenSigner struct {
	secret []byte
	ttl    time.Duration
}

// sign creates a token whose "gid" claim is the game ID.
func (t tokenSigner) sign(gameID string) (string, error) {
	now := time.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"gid": gameID,
		"iat": now.Unix(),
		"exp": now.Add(t.ttl).Unix(),
	})
	return tok.SignedString(t.secret)
}

// parse verifies a token and returns its game ID.
func (t tokenSigner) parse(raw string) (string, error) {
	if raw == "" {
		return "", errBadToken
	}
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return "", errBadToken
	}
	gid, _ := claims["gid"].(string)
	if gid == "" {
		return "", errBadToken
	}
	return gid, nil
}
