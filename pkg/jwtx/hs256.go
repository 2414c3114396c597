package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Verifier validates a JWT and gives you back the claims if it's legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// Signer mints signed tokens from claims.
type Signer interface {
	Sign(Claims) (string, error)
}

// HS256 signs and verifies tokens with a single shared secret. The portal is
// both issuer and sole consumer of its session tokens, so a symmetric key
// keeps the deployment to one configured secret.
type HS256 struct {
	secret   []byte
	issuer   string
	audience []string
}

// NewHS256 returns a combined Signer/Verifier over the given secret.
func NewHS256(secret []byte, issuer string, audience []string) *HS256 {
	return &HS256{secret: secret, issuer: issuer, audience: audience}
}

func (h *HS256) Sign(c Claims) (string, error) {
	if len(h.secret) == 0 {
		return "", errors.New("jwtx: empty signing secret")
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return tok.SignedString(h.secret)
}

func (h *HS256) Verify(token string) (Claims, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, ErrAlgMismatch
		}
		return h.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrAlgMismatch):
			return Claims{}, ErrAlgMismatch
		case errors.Is(err, jwt.ErrTokenMalformed):
			return Claims{}, ErrMalformed
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return Claims{}, ErrInvalidSig
		case errors.Is(err, jwt.ErrTokenExpired):
			return Claims{}, ErrExpired
		case errors.Is(err, jwt.ErrTokenNotValidYet):
			return Claims{}, ErrNotYetValid
		default:
			return Claims{}, err
		}
	}
	if !parsed.Valid {
		return Claims{}, ErrInvalidSig
	}

	if err := claims.ValidateIssuer(h.issuer); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateAudience(h.audience); err != nil {
		return Claims{}, err
	}

	return claims, nil
}
