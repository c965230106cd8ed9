package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewStore(rdb, time.Minute)
}

func TestRequireSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := newTestStore(t)

	sid, err := store.Create(context.Background(), 42)
	require.NoError(t, err)

	r := gin.New()
	r.GET("/whoami", RequireSession(store), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": UserIDFromContext(c)})
	})

	// No cookie.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Garbage cookie.
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "nope"})
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Live session resolves to the account ID.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: sid})
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":42}`, w.Body.String())
}

func TestSessionDeleteRevokesAccess(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	sid, err := store.Create(ctx, 7)
	require.NoError(t, err)
	id, ok := store.GetUserID(ctx, sid)
	require.True(t, ok)
	assert.EqualValues(t, 7, id)

	require.NoError(t, store.Delete(ctx, sid))
	_, ok = store.GetUserID(ctx, sid)
	assert.False(t, ok)
}
