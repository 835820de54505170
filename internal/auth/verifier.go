package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/designforge/design-forge-backend/internal/apperr"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the claim set carried by caller credentials. Tokens are minted
// by the design tool's session issuer; this service only verifies them.
type Claims struct {
	jwt.RegisteredClaims
	Scope string `json:"scope,omitempty"`
	Team  string `json:"team,omitempty"`
}

// Identity is the validated caller identity attached to the request context.
type Identity struct {
	UserID string
	Scope  string
	Team   string
}

// Verifier validates bearer tokens against a shared HMAC secret and a fixed
// trusted issuer.
type Verifier struct {
	secret   []byte
	issuer   string
	audience string
}

func NewVerifier(secret []byte, issuer, audience string) *Verifier {
	return &Verifier{secret: secret, issuer: issuer, audience: audience}
}

// Verify checks the token signature, required claims, issuer and expiry.
// Caller mistakes come back as apperr.Unauthenticated with a reason-specific
// message; a missing signing secret is a server misconfiguration and is
// reported as apperr.ConfigurationError instead.
func (v *Verifier) Verify(tokenString string) (*Identity, error) {
	if len(v.secret) == 0 {
		return nil, apperr.New(apperr.ConfigurationError, "signing secret not configured")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, apperr.Wrap(apperr.Unauthenticated, verifyFailureMessage(err), err)
	}
	if !token.Valid {
		return nil, apperr.New(apperr.Unauthenticated, "invalid token")
	}

	if strings.TrimSpace(claims.Subject) == "" {
		return nil, apperr.New(apperr.Unauthenticated, "token missing subject claim")
	}
	if len(claims.Audience) == 0 {
		return nil, apperr.New(apperr.Unauthenticated, "token missing audience claim")
	}
	if claims.Issuer == "" {
		return nil, apperr.New(apperr.Unauthenticated, "token missing issuer claim")
	}
	if claims.Issuer != v.issuer {
		return nil, apperr.New(apperr.Unauthenticated, "token issued by untrusted issuer")
	}
	if v.audience != "" && !hasAudience(claims.Audience, v.audience) {
		return nil, apperr.New(apperr.Unauthenticated, "token audience mismatch")
	}

	return &Identity{
		UserID: claims.Subject,
		Scope:  claims.Scope,
		Team:   claims.Team,
	}, nil
}

func hasAudience(aud jwt.ClaimStrings, want string) bool {
	for _, a := range aud {
		if a == want {
			return true
		}
	}
	return false
}

func verifyFailureMessage(err error) string {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return "token expired"
	case errors.Is(err, jwt.ErrTokenMalformed):
		return "malformed token"
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return "invalid token signature"
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return "token not valid yet"
	default:
		return "invalid token"
	}
}
