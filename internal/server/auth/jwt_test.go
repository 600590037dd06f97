package auth

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/sessionkeeper/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testSecret = []byte("super-secret")
	t0         = time.Unix(1_700_000_000, 0).UTC()
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	t.Parallel()

	in := NewClaims("user-123", RoleAdmin, KindAccess, "jti-1", t0, 15*time.Minute)

	tok, err := Encode(in, testSecret)
	require.NoError(t, err)

	out, err := Decode(tok, testSecret, t0.Add(time.Minute))
	require.NoError(t, err)

	assert.Equal(t, "user-123", out.Subject)
	assert.Equal(t, RoleAdmin, out.Role)
	assert.Equal(t, KindAccess, out.Kind)
	assert.Equal(t, "jti-1", out.ID)
	assert.True(t, out.ExpiresAtTime().Equal(t0.Add(15*time.Minute)))
	assert.True(t, out.IssuedAt.Time.Equal(t0))
}

func TestEncode_Deterministic(t *testing.T) {
	t.Parallel()

	c := NewClaims("u1", RoleUser, KindRefresh, "same", t0, time.Hour)

	a, err := Encode(c, testSecret)
	require.NoError(t, err)
	b, err := Encode(c, testSecret)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestEncode_EmptySecret(t *testing.T) {
	t.Parallel()

	_, err := Encode(NewClaims("u1", RoleUser, KindAccess, "x", t0, time.Hour), nil)
	require.Error(t, err)
}

func TestDecode_Expired(t *testing.T) {
	t.Parallel()

	tok, err := Encode(NewClaims("u1", RoleUser, KindAccess, "x", t0, 15*time.Minute), testSecret)
	require.NoError(t, err)

	_, err = Decode(tok, testSecret, t0.Add(16*time.Minute))
	require.ErrorIs(t, err, common.ErrTokenExpired)

	// the expiry instant itself is already expired
	_, err = Decode(tok, testSecret, t0.Add(15*time.Minute))
	require.ErrorIs(t, err, common.ErrTokenExpired)

	// Parse ignores expiry
	c, err := Parse(tok, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "u1", c.Subject)
}

func TestParse_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := Encode(NewClaims("u2", RoleUser, KindAccess, "x", t0, time.Hour), []byte("right-secret"))
	require.NoError(t, err)

	_, err = Parse(tok, []byte("wrong-secret"))
	require.ErrorIs(t, err, common.ErrInvalidSignature)
	require.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestParse_Malformed(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"", "garbage", "not.a.jwt"} {
		_, err := Parse(s, testSecret)
		require.ErrorIs(t, err, common.ErrMalformedToken, "input %q", s)
		require.ErrorIs(t, err, common.ErrInvalidToken, "input %q", s)
	}
}

func TestParse_RejectsOtherAlgorithms(t *testing.T) {
	t.Parallel()

	c := NewClaims("u3", RoleAdmin, KindAccess, "x", t0, time.Hour)
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS384, c).SignedString(testSecret)
	require.NoError(t, err)

	_, err = Parse(tok, testSecret)
	require.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestParse_MissingSubjectOrExpiry(t *testing.T) {
	t.Parallel()

	noSub := NewClaims("", RoleUser, KindAccess, "x", t0, time.Hour)
	tok, err := Encode(noSub, testSecret)
	require.NoError(t, err)
	_, err = Parse(tok, testSecret)
	require.ErrorIs(t, err, common.ErrMalformedToken)

	noExp := NewClaims("u4", RoleUser, KindAccess, "x", t0, time.Hour)
	noExp.ExpiresAt = nil
	tok, err = Encode(noExp, testSecret)
	require.NoError(t, err)
	_, err = Parse(tok, testSecret)
	require.ErrorIs(t, err, common.ErrMalformedToken)
}

func TestClaims_RemainingAndExpired(t *testing.T) {
	t.Parallel()

	c := NewClaims("u5", RoleUser, KindAccess, "x", t0, 10*time.Minute)

	assert.Equal(t, 10*time.Minute, c.Remaining(t0))
	assert.Equal(t, 5*time.Minute, c.Remaining(t0.Add(5*time.Minute)))
	assert.Equal(t, time.Duration(0), c.Remaining(t0.Add(time.Hour)))

	assert.False(t, c.Expired(t0.Add(10*time.Minute-time.Second)))
	assert.True(t, c.Expired(t0.Add(10*time.Minute)))
}

func TestValidRole(t *testing.T) {
	t.Parallel()

	assert.True(t, ValidRole(RoleUser))
	assert.True(t, ValidRole(RoleAdmin))
	assert.False(t, ValidRole("root"))
	assert.False(t, ValidRole(""))
}
