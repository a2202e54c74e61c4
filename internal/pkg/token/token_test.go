package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParse(t *testing.T) {
	t.Parallel()

	m := NewManager([]byte("test-secret"), time.Hour)

	signed, err := m.Issue(42, "몽낙년")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := m.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, "몽낙년", claims.Nickname)

	userID, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	m := NewManager([]byte("test-secret"), -time.Minute)

	signed, err := m.Issue(1, "tester")
	require.NoError(t, err)

	_, err = m.Parse(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	signed, err := NewManager([]byte("secret-a"), time.Hour).Issue(1, "tester")
	require.NoError(t, err)

	_, err = NewManager([]byte("secret-b"), time.Hour).Parse(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsGarbage(t *testing.T) {
	t.Parallel()

	m := NewManager([]byte("test-secret"), time.Hour)

	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		_, err := m.Parse(tok)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestClaimsUserIDRejectsNonNumericSubject(t *testing.T) {
	t.Parallel()

	c := &Claims{}
	c.Subject = "abc"

	_, err := c.UserID()
	assert.ErrorIs(t, err, ErrInvalidToken)
}
