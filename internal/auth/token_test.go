package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tokenTestTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// testCodec builds a codec with a controllable clock.
func testCodec(t *testing.T, clock *time.Time) *TokenCodec {
	t.Helper()
	codec, err := NewTokenCodec(TokenCodecOptions{
		Secret: []byte("unit-test-secret"),
		Clock:  func() time.Time { return *clock },
	})
	require.NoError(t, err)
	return codec
}

func TestNewTokenCodecRequiresSecret(t *testing.T) {
	_, err := NewTokenCodec(TokenCodecOptions{})
	assert.Error(t, err)
}

func TestTokenCodecRoundTrip(t *testing.T) {
	now := tokenTestTime
	codec := testCodec(t, &now)

	token, expiresAt, err := codec.Issue("user-123", 30*time.Minute, map[string]string{"role": "listener"})
	require.NoError(t, err)
	assert.Equal(t, now.Add(30*time.Minute), expiresAt)

	claims, err := codec.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "listener", claims.Extra["role"])
	assert.True(t, claims.IssuedAt.Equal(now))
	assert.True(t, claims.ExpiresAt.Equal(expiresAt))
}

func TestTokenCodecIssueValidation(t *testing.T) {
	now := tokenTestTime
	codec := testCodec(t, &now)

	t.Run("zero ttl", func(t *testing.T) {
		_, _, err := codec.Issue("user-123", 0, nil)
		assert.ErrorIs(t, err, ErrInvalidTTL)
	})

	t.Run("negative ttl", func(t *testing.T) {
		_, _, err := codec.Issue("user-123", -time.Minute, nil)
		assert.ErrorIs(t, err, ErrInvalidTTL)
	})

	t.Run("empty subject", func(t *testing.T) {
		_, _, err := codec.Issue("", time.Minute, nil)
		assert.Error(t, err)
	})
}

func TestTokenCodecExpiry(t *testing.T) {
	now := tokenTestTime
	codec := testCodec(t, &now)

	token, _, err := codec.Issue("user-123", 30*time.Minute, nil)
	require.NoError(t, err)

	t.Run("valid until expiry", func(t *testing.T) {
		now = tokenTestTime.Add(29 * time.Minute)
		_, verifyErr := codec.Verify(token)
		assert.NoError(t, verifyErr)
	})

	t.Run("expired after ttl", func(t *testing.T) {
		now = tokenTestTime.Add(31 * time.Minute)
		_, verifyErr := codec.Verify(token)
		assert.ErrorIs(t, verifyErr, ErrTokenExpired)
	})

	t.Run("expired is never reported as tampered", func(t *testing.T) {
		now = tokenTestTime.Add(24 * time.Hour)
		_, verifyErr := codec.Verify(token)
		assert.ErrorIs(t, verifyErr, ErrTokenExpired)
		assert.NotErrorIs(t, verifyErr, ErrTokenTampered)
	})
}

func TestTokenCodecTampering(t *testing.T) {
	now := tokenTestTime
	codec := testCodec(t, &now)

	t.Run("payload swapped under a stale signature", func(t *testing.T) {
		tokenA, _, err := codec.Issue("user-a", time.Hour, nil)
		require.NoError(t, err)
		tokenB, _, err := codec.Issue("user-b", time.Hour, nil)
		require.NoError(t, err)

		partsA := strings.Split(tokenA, ".")
		partsB := strings.Split(tokenB, ".")
		require.Len(t, partsA, 3)
		require.Len(t, partsB, 3)

		// Claims from token B with the signature from token A.
		forged := partsB[0] + "." + partsB[1] + "." + partsA[2]
		_, verifyErr := codec.Verify(forged)
		assert.ErrorIs(t, verifyErr, ErrTokenTampered)
	})

	t.Run("token signed with a different secret", func(t *testing.T) {
		otherNow := tokenTestTime
		other, err := NewTokenCodec(TokenCodecOptions{
			Secret: []byte("some-other-secret"),
			Clock:  func() time.Time { return otherNow },
		})
		require.NoError(t, err)

		token, _, err := other.Issue("user-123", time.Hour, nil)
		require.NoError(t, err)

		_, verifyErr := codec.Verify(token)
		assert.ErrorIs(t, verifyErr, ErrTokenTampered)
	})
}

func TestTokenCodecMalformedInput(t *testing.T) {
	now := tokenTestTime
	codec := testCodec(t, &now)

	for _, token := range []string{
		"",
		"garbage",
		"a.b",
		"not.a.jwt",
		"....",
	} {
		_, err := codec.Verify(token)
		assert.ErrorIs(t, err, ErrTokenMalformed, "token %q", token)
	}
}

func TestTokenCodecRejectsUnsignedToken(t *testing.T) {
	now := tokenTestTime
	codec := testCodec(t, &now)

	// {"alg":"none","typ":"JWT"} with an empty signature segment.
	header := "eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0"
	payload := "eyJzdWIiOiJ1c2VyLTEyMyIsImV4cCI6NDEwMjQ0NDgwMH0"
	_, err := codec.Verify(header + "." + payload + ".")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrTokenExpired)
}
