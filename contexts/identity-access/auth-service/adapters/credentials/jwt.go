package credentials

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	domainerrors "maxhelp/contexts/identity-access/auth-service/domain/errors"
	"maxhelp/contexts/identity-access/auth-service/ports"
)

// TokenCodec implements ports.TokenCodec with HS256-signed JWTs. Verify
// fails closed: signature mismatch, malformed input, wrong algorithm, and
// past expiry all collapse into ErrInvalidToken.
type TokenCodec struct {
	Secret []byte
}

type tokenClaims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

func (c TokenCodec) Issue(claims ports.TokenClaims, issuedAt time.Time, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		Role: claims.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.Subject,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
		},
	})
	return token.SignedString(c.Secret)
}

func (c TokenCodec) Verify(raw string) (ports.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(raw, &tokenClaims{}, func(_ *jwt.Token) (interface{}, error) {
		return c.Secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return ports.TokenClaims{}, domainerrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || claims.Subject == "" {
		return ports.TokenClaims{}, domainerrors.ErrInvalidToken
	}
	return ports.TokenClaims{
		Subject: claims.Subject,
		Role:    claims.Role,
	}, nil
}
