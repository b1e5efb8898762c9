package auth

import (
	"context"
	"testing"
	"time"

	"budget_portal/internal/domain/entities"

	"github.com/cockroachdb/errors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSession(expiresIn time.Duration) entities.Session {
	now := time.Now().UTC()
	return entities.Session{
		ID:         "sess-1",
		UserID:     "creator001",
		Roles:      []entities.Role{entities.RoleCreator},
		ActiveRole: entities.RoleCreator,
		IssuedAt:   now,
		ExpiresAt:  now.Add(expiresIn),
	}
}

func TestJWTIssuer_RoundTrip(t *testing.T) {
	issuer := NewJWTIssuer("secret")
	tok, err := issuer.Issue(testSession(time.Hour))
	require.NoError(t, err)

	sid, err := issuer.SessionID(tok)
	require.NoError(t, err)
	assert.Equal(t, "sess-1", sid)
}

func TestJWTIssuer_TokenNamesOnlyTheSession(t *testing.T) {
	tok, err := NewJWTIssuer("secret").Issue(testSession(time.Hour))
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(tok, claims)
	require.NoError(t, err)

	assert.Equal(t, "sess-1", claims["sid"])
	assert.Equal(t, "creator001", claims["sub"])
	assert.NotContains(t, claims, "role")
}

func TestJWTIssuer_Rejects(t *testing.T) {
	issuer := NewJWTIssuer("secret")

	t.Run("wrong secret", func(t *testing.T) {
		tok, err := NewJWTIssuer("other").Issue(testSession(time.Hour))
		require.NoError(t, err)
		_, err = issuer.SessionID(tok)
		assert.True(t, errors.Is(err, ErrInvalidToken))
	})

	t.Run("expired", func(t *testing.T) {
		tok, err := issuer.Issue(testSession(-time.Minute))
		require.NoError(t, err)
		_, err = issuer.SessionID(tok)
		assert.True(t, errors.Is(err, ErrInvalidToken))
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := issuer.SessionID("not-a-token")
		assert.True(t, errors.Is(err, ErrInvalidToken))
	})
}

func TestCacheSessionStore(t *testing.T) {
	ctx := context.Background()
	store := NewCacheSessionStore(time.Hour)

	sess := testSession(time.Hour)
	sess.Token = "should-not-be-kept"
	require.NoError(t, store.Save(ctx, sess))

	got, ok, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "creator001", got.UserID)
	assert.Empty(t, got.Token)

	require.NoError(t, store.Delete(ctx, "sess-1"))
	_, ok, err = store.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Delete(ctx, "unknown"))
}

func TestCacheSessionStore_ExpiredSessionIsNotKept(t *testing.T) {
	ctx := context.Background()
	store := NewCacheSessionStore(time.Hour)

	require.NoError(t, store.Save(ctx, testSession(-time.Second)))
	_, ok, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.False(t, ok)
}
