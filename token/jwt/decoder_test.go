package jwt_test

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	apperrors "github.com/jrsteele09/ayursetu-client/internal/errors"
	"github.com/jrsteele09/ayursetu-client/token/jwt"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, claims jwtlib.MapClaims) string {
	t.Helper()
	raw, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte("backend-only-secret"))
	require.NoError(t, err)
	return raw
}

func TestDecode(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	raw := signToken(t, jwtlib.MapClaims{
		"sub":       "a@b.com",
		"name":      "A",
		"role":      "PATIENT",
		"iat":       now.Unix(),
		"exp":       now.Add(time.Hour).Unix(),
		"patientId": 42,
	})

	claims, err := jwt.Decode(raw)
	require.NoError(t, err)
	require.Equal(t, "a@b.com", claims.Subject)
	require.Equal(t, "a@b.com", claims.Email, "email falls back to an email-shaped subject")
	require.Equal(t, "A", claims.Name)
	require.Equal(t, "PATIENT", claims.Role)
	require.Equal(t, []string{"PATIENT"}, claims.Roles)
	require.Equal(t, now.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())
	require.Equal(t, now.Unix(), claims.IssuedAt.Unix())
	require.EqualValues(t, 42, claims.Raw["patientId"])
}

func TestDecodeSignatureIsNotChecked(t *testing.T) {
	raw := signToken(t, jwtlib.MapClaims{"email": "a@b.com", "exp": time.Now().Add(time.Hour).Unix()})
	tampered := raw[:len(raw)-4] + "AAAA"

	claims, err := jwt.Decode(tampered)
	require.NoError(t, err)
	require.Equal(t, "a@b.com", claims.Email)
}

func TestDecodeFailures(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		_, err := jwt.Decode("  ")
		require.ErrorIs(t, err, apperrors.ErrNoToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := jwt.Decode("not-a-jwt")
		require.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("malformed exp", func(t *testing.T) {
		raw := signToken(t, jwtlib.MapClaims{"exp": "tomorrow"})
		_, err := jwt.Decode(raw)
		require.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})
}

func TestValidAt(t *testing.T) {
	exp := time.Unix(1_700_000_000, 0)
	claims := &jwt.Claims{ExpiresAt: exp}

	require.True(t, claims.ValidAt(exp.Add(-time.Second)))
	require.False(t, claims.ValidAt(exp), "exp equal to now is expired")
	require.False(t, claims.ValidAt(exp.Add(time.Millisecond)))
	require.False(t, (&jwt.Claims{}).ValidAt(exp), "missing exp is never valid")
}

func TestValidateUsesNowTimeFunc(t *testing.T) {
	exp := time.Unix(1_700_000_000, 0)
	original := jwt.NowTimeFunc
	t.Cleanup(func() { jwt.NowTimeFunc = original })

	claims := &jwt.Claims{ExpiresAt: exp}

	jwt.NowTimeFunc = func() time.Time { return exp.Add(-time.Minute) }
	require.NoError(t, claims.Validate())

	jwt.NowTimeFunc = func() time.Time { return exp.Add(time.Minute) }
	require.ErrorIs(t, claims.Validate(), apperrors.ErrTokenExpired)
}
