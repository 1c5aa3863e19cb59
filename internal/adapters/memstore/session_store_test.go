package memstore

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/jobdeck/jobdeck/internal/domain/auth"
)

func validSession(id string) domainauth.Session {
	return domainauth.Session{
		ID:        id,
		UserID:    "u-1",
		Email:     "pat@example.com",
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func TestSessionStore_SaveAndGet(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	sess := validSession("sess-1")
	require.NoError(t, store.Save(ctx, sess))

	got, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, sess, got)
}

func TestSessionStore_Save_Rejections(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	assert.Error(t, store.Save(ctx, domainauth.Session{ExpiresAt: time.Now().Add(time.Hour)}), "empty ID")

	expired := validSession("sess-old")
	expired.ExpiresAt = time.Now().Add(-time.Minute)
	assert.Error(t, store.Save(ctx, expired), "already expired")
}

func TestSessionStore_Get_Missing(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	_, err := store.Get(ctx, "who")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.Get(ctx, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionStore_Get_LazyExpiry(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	sess := validSession("sess-short")
	sess.ExpiresAt = time.Now().Add(20 * time.Millisecond)
	require.NoError(t, store.Save(ctx, sess))

	time.Sleep(50 * time.Millisecond)

	_, err := store.Get(ctx, "sess-short")
	assert.ErrorIs(t, err, ErrNotFound)

	// The expired entry is gone for good.
	_, err = store.Get(ctx, "sess-short")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionStore_Delete(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, validSession("sess-1")))
	require.NoError(t, store.Delete(ctx, "sess-1"))

	_, err := store.Get(ctx, "sess-1")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting again, or deleting nothing, is a no-op.
	assert.NoError(t, store.Delete(ctx, "sess-1"))
	assert.NoError(t, store.Delete(ctx, ""))
}

func TestSessionStore_ConcurrentAccess(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := string(rune('a' + n%10))
			_ = store.Save(ctx, validSession(id))
			_, _ = store.Get(ctx, id)
			_ = store.Delete(ctx, id)
		}(i)
	}
	wg.Wait()
}
