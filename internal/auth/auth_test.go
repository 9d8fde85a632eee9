package auth

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore() *Store {
	return NewStore(nil, bytes.Repeat([]byte{0x01}, 32), bytes.Repeat([]byte{0x02}, 32))
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.True(t, CheckPassword(hash, "s3cret"))
	assert.False(t, CheckPassword(hash, "wrong"))
}

func TestSessionRoundTrip(t *testing.T) {
	s := testStore()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, s.SetSession(rec, req, 42))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	req2 := httptest.NewRequest(http.MethodGet, "/", nil)
	req2.AddCookie(cookies[0])
	sess, ok := s.GetSession(req2)
	require.True(t, ok)
	assert.Equal(t, int64(42), sess.UserID)
}

func TestGetSessionRejectsTampering(t *testing.T) {
	s := testStore()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "branchsched_session", Value: "garbage"})
	_, ok := s.GetSession(req)
	assert.False(t, ok)

	// a cookie minted with different keys must not validate
	other := NewStore(nil, bytes.Repeat([]byte{0x09}, 32), bytes.Repeat([]byte{0x0a}, 32))
	rec := httptest.NewRecorder()
	require.NoError(t, other.SetSession(rec, req, 7))
	req2 := httptest.NewRequest(http.MethodGet, "/", nil)
	req2.AddCookie(rec.Result().Cookies()[0])
	_, ok = s.GetSession(req2)
	assert.False(t, ok)
}

func TestRequireAuth(t *testing.T) {
	s := testStore()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uid, ok := UserIDFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, int64(9), uid)
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	s.RequireAuth(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/branches", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	mint := httptest.NewRecorder()
	require.NoError(t, s.SetSession(mint, httptest.NewRequest(http.MethodGet, "/", nil), 9))
	req := httptest.NewRequest(http.MethodGet, "/api/branches", nil)
	req.AddCookie(mint.Result().Cookies()[0])
	rec = httptest.NewRecorder()
	s.RequireAuth(next).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
