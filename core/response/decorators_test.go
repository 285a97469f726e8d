package response_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrhq/zephyr/core/response"
)

func TestWithHeaders(t *testing.T) {
	t.Parallel()

	t.Run("sets_headers_before_body", func(t *testing.T) {
		t.Parallel()

		resp := response.WithHeaders(response.String("ok"), map[string]string{
			"X-Frame-Options": "DENY",
			"X-Robots-Tag":    "noindex",
		})

		w := httptest.NewRecorder()
		require.NoError(t, resp(w, httptest.NewRequest(http.MethodGet, "/", nil)))

		assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
		assert.Equal(t, "noindex", w.Header().Get("X-Robots-Tag"))
		assert.Equal(t, "ok", w.Body.String())
	})

	t.Run("nil_response_stays_nil", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, response.WithHeaders(nil, map[string]string{"X": "y"}))
	})

	t.Run("empty_headers_passthrough", func(t *testing.T) {
		t.Parallel()

		resp := response.WithHeaders(response.String("ok"), nil)

		w := httptest.NewRecorder()
		require.NoError(t, resp(w, httptest.NewRequest(http.MethodGet, "/", nil)))
		assert.Equal(t, "ok", w.Body.String())
	})
}

func TestWithCookie(t *testing.T) {
	t.Parallel()

	resp := response.WithCookie(response.String("ok"), &http.Cookie{
		Name:  "theme",
		Value: "dark",
		Path:  "/",
	})

	w := httptest.NewRecorder()
	require.NoError(t, resp(w, httptest.NewRequest(http.MethodGet, "/", nil)))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "theme", cookies[0].Name)
	assert.Equal(t, "dark", cookies[0].Value)
}

func TestWithCache(t *testing.T) {
	t.Parallel()

	t.Run("positive_max_age", func(t *testing.T) {
		t.Parallel()

		resp := response.WithCache(response.String("ok"), 5*time.Minute)

		w := httptest.NewRecorder()
		require.NoError(t, resp(w, httptest.NewRequest(http.MethodGet, "/", nil)))

		assert.Equal(t, "public, max-age=300", w.Header().Get("Cache-Control"))
		assert.NotEmpty(t, w.Header().Get("Expires"))
	})

	t.Run("zero_forbids_caching", func(t *testing.T) {
		t.Parallel()

		resp := response.WithCache(response.String("ok"), 0)

		w := httptest.NewRecorder()
		require.NoError(t, resp(w, httptest.NewRequest(http.MethodGet, "/", nil)))

		assert.Equal(t, "no-cache, no-store, must-revalidate", w.Header().Get("Cache-Control"))
		assert.Equal(t, "0", w.Header().Get("Expires"))
	})
}
