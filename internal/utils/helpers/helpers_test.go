package helpers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestError_WritesErrorBody(t *testing.T) {
	rr := httptest.NewRecorder()
	Error(rr, http.StatusNotFound, "Post not found")

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"Post not found"}`, rr.Body.String())
}

func TestBuildContactNotificationHTML_Escapes(t *testing.T) {
	out := BuildContactNotificationHTML("<b>Ali</b>", "ali@example.com", "satır1\nsatır2", time.Date(2024, 1, 2, 3, 4, 0, 0, time.UTC))

	assert.Contains(t, out, "&lt;b&gt;Ali&lt;/b&gt;")
	assert.Contains(t, out, "satır1<br>satır2")
	assert.Contains(t, out, "02.01.2024 03:04")
}
