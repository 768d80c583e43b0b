package tokens

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessTokenTTL is the fixed lifetime of every issued token. There is no
// refresh flow and no revocation list; expiry is the only terminator.
const AccessTokenTTL = 15 * time.Minute

const tokenType = "access_token"

// ErrInvalidToken is the single rejection surfaced to callers regardless of
// whether the signature, issuer, audience, expiry or type check failed.
var ErrInvalidToken = errors.New("invalid token")

type AccessClaims struct {
	Role      string `json:"role"`
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}

// Service issues and validates HS256 bearer tokens. Secret, issuer and
// audience are fixed at construction from the process configuration.
type Service struct {
	Secret   []byte
	Issuer   string
	Audience string
}

func (s *Service) Issue(username, role string) (string, error) {
	now := time.Now()
	claims := AccessClaims{
		Role:      role,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ID:        uuid.NewString(),
			Issuer:    s.Issuer,
			Audience:  jwt.ClaimStrings{s.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(AccessTokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.Secret)
}

func (s *Service) Parse(raw string) (*AccessClaims, error) {
	var claims AccessClaims
	tkn, err := jwt.ParseWithClaims(raw, &claims,
		func(t *jwt.Token) (any, error) { return s.Secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.Issuer),
		jwt.WithAudience(s.Audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !tkn.Valid {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != tokenType {
		return nil, ErrInvalidToken
	}
	return &claims, nil
}
