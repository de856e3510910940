package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"penlink/internal/reqctx"
	"penlink/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func token(t *testing.T, id int64, role string) string {
	t.Helper()
	tok, err := utils.GenerateToken(testSecret, id, "kullanici", role, time.Minute)
	require.NoError(t, err)
	return "Bearer " + tok
}

// echoIdentity bağlamdaki kimliği yanıt başlığına yazar.
var echoIdentity = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	if id, ok := reqctx.GetIdentity(r.Context()); ok {
		w.Header().Set("X-Role", id.Role)
	}
	w.WriteHeader(http.StatusOK)
})

func serve(h http.Handler, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestJWTAuth(t *testing.T) {
	h := JWTAuth(testSecret)(echoIdentity)

	rr := serve(h, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"error":"Authentication required"}`, rr.Body.String())

	rr = serve(h, "Bearer garbage")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = serve(h, token(t, 1, "user"))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "user", rr.Header().Get("X-Role"))
}

func TestOptionalJWTAuth(t *testing.T) {
	h := OptionalJWTAuth(testSecret)(echoIdentity)

	rr := serve(h, "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Header().Get("X-Role"))

	rr = serve(h, "Bearer garbage")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Header().Get("X-Role"))

	rr = serve(h, token(t, 2, "admin"))
	assert.Equal(t, "admin", rr.Header().Get("X-Role"))
}

func TestOnlyRole(t *testing.T) {
	h := JWTAuth(testSecret)(OnlyRole("admin")(echoIdentity))

	rr := serve(h, token(t, 1, "user"))
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.JSONEq(t, `{"error":"Access denied"}`, rr.Body.String())

	rr = serve(h, token(t, 1, "admin"))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = serve(OnlyRole("admin")(echoIdentity), "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAnyRole(t *testing.T) {
	h := JWTAuth(testSecret)(AnyRole("user", "admin")(echoIdentity))

	assert.Equal(t, http.StatusOK, serve(h, token(t, 1, "user")).Code)
	assert.Equal(t, http.StatusOK, serve(h, token(t, 1, "admin")).Code)
	assert.Equal(t, http.StatusForbidden, serve(h, token(t, 1, "guest")).Code)
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = reqctx.GetRequestID(r.Context())
	}))

	rr := serve(h, "")
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rr.Header().Get(HeaderRequestID))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, "abc-123", seen)
}

func TestRecoverer(t *testing.T) {
	h := Recoverer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rr := serve(h, "")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rr.Body.String())
}
