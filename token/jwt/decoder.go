package jwt

import (
	"strings"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	apperrors "github.com/jrsteele09/ayursetu-client/internal/errors"
	"github.com/jrsteele09/ayursetu-client/internal/utils"
)

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

// Claims holds the identity fields carried by a session token.
// Raw keeps every claim, including the ones mapped onto named fields.
type Claims struct {
	Subject   string
	Email     string
	Name      string
	Role      string
	Roles     []string
	IssuedAt  time.Time
	ExpiresAt time.Time // zero when the token carries no exp claim
	Raw       map[string]any
}

// Decode extracts the claims of rawToken without verifying its signature.
// Verification belongs to the backend; the client only reads identity and expiry.
func Decode(rawToken string) (*Claims, error) {
	if strings.TrimSpace(rawToken) == "" {
		return nil, apperrors.ErrNoToken
	}

	unverifiedToken, _, err := jwtlib.NewParser().ParseUnverified(rawToken, jwtlib.MapClaims{})
	if err != nil {
		return nil, apperrors.Wrapf(apperrors.ErrInvalidToken, "parse token: %s", err.Error())
	}

	claims, ok := unverifiedToken.Claims.(jwtlib.MapClaims)
	if !ok {
		return nil, apperrors.Wrapf(apperrors.ErrInvalidToken, "error extracting claims")
	}

	sub, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)
	role, _ := claims["role"].(string)

	if email == "" && strings.Contains(sub, "@") {
		email = sub
	}

	roles := utils.ToStringSlice(claims["roles"])
	if len(roles) == 0 && role != "" {
		roles = []string{role}
	}

	c := &Claims{
		Subject: sub,
		Email:   email,
		Name:    name,
		Role:    role,
		Roles:   roles,
		Raw:     map[string]any(claims),
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return nil, apperrors.Wrapf(apperrors.ErrInvalidToken, "exp claim: %s", err.Error())
	}
	if exp != nil {
		c.ExpiresAt = exp.Time
	}

	iat, err := claims.GetIssuedAt()
	if err == nil && iat != nil {
		c.IssuedAt = iat.Time
	}

	return c, nil
}

// ValidAt reports whether the token is still live at t: exp must be strictly after t.
func (c *Claims) ValidAt(t time.Time) bool {
	if c == nil || c.ExpiresAt.IsZero() {
		return false
	}
	return c.ExpiresAt.After(t)
}

// Validate checks expiry against NowTimeFunc.
func (c *Claims) Validate() error {
	if !c.ValidAt(NowTimeFunc()) {
		return apperrors.ErrTokenExpired
	}
	return nil
}
