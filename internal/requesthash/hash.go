// Package requesthash signs and verifies the "hash" header sent by the
// client in production mode. The header is an HS256 JWT whose claims carry
// the request payload, so the backend can check the request was built by a
// holder of the shared hash key.
package requesthash

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/staffview/internal/common"
)

const (
	Issuer   = "urn:example:issuer"
	Audience = "urn:example:audience"
	Marker   = "urn:example:claim"
	TTL      = time.Minute
)

var reserved = map[string]struct{}{
	"iss": {}, "aud": {}, "iat": {}, "exp": {}, "nbf": {}, "sub": {}, "jti": {}, Marker: {},
}

// Payload builds the claim set for a request. The top-level fields of a JSON
// object body are used as is; any other body is carried under "body".
// Without a body the raw query string is carried under "url", and an empty
// query yields an empty payload.
func Payload(body []byte, rawQuery string) map[string]any {
	out := map[string]any{}

	if len(body) > 0 {
		var obj map[string]any
		if err := json.Unmarshal(body, &obj); err == nil && obj != nil {
			return obj
		}
		out["body"] = string(body)
		return out
	}

	if rawQuery != "" {
		out["url"] = rawQuery
	}
	return out
}

// Sign returns the compact JWT for payload, issued at now.
func Sign(key []byte, payload map[string]any, now time.Time) (string, error) {
	if len(key) == 0 {
		return "", errors.New("empty hash key")
	}

	claims := jwt.MapClaims{Marker: true}
	for k, v := range payload {
		claims[k] = v
	}
	claims["iss"] = Issuer
	claims["aud"] = Audience
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(TTL).Unix()

	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	if err != nil {
		return "", fmt.Errorf("sign hash: %w", err)
	}
	return s, nil
}

// Verify checks the signature, issuer, audience and expiry of token and that
// every field of payload appears in its claims with the same value.
// All failures wrap common.ErrInvalidHash.
func Verify(key []byte, token string, payload map[string]any, now time.Time) error {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithAudience(Audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrInvalidHash, err)
	}

	if v, ok := claims[Marker].(bool); !ok || !v {
		return fmt.Errorf("%w: missing %s", common.ErrInvalidHash, Marker)
	}

	want, err := normalize(payload)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrInvalidHash, err)
	}

	for k, v := range want {
		if _, skip := reserved[k]; skip {
			continue
		}
		got, ok := claims[k]
		if !ok || !reflect.DeepEqual(got, v) {
			return fmt.Errorf("%w: claim %q does not match request", common.ErrInvalidHash, k)
		}
	}
	return nil
}

// normalize round-trips payload through JSON so values compare the way the
// decoded claims do (numbers as float64, nested objects as maps).
func normalize(payload map[string]any) (map[string]any, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	out := map[string]any{}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}
