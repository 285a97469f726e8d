package response_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrhq/zephyr/core/response"
)

func TestString(t *testing.T) {
	t.Parallel()

	t.Run("basic_content", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		err := response.String("hello")(w, r)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Equal(t, "hello", w.Body.String())
	})

	t.Run("custom_status", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		err := response.StringWithStatus("created", http.StatusCreated)(w, r)
		require.NoError(t, err)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "created", w.Body.String())
	})

	t.Run("zero_status_defaults_to_ok", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		require.NoError(t, response.StringWithStatus("x", 0)(w, r))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestHTML(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	err := response.HTML("<h1>hi</h1>")(w, r)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "<h1>hi</h1>", w.Body.String())
}

func TestBytes(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	err := response.Bytes([]byte{0x1f, 0x8b, 0x00}, "application/octet-stream")(w, r)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/octet-stream", w.Header().Get("Content-Type"))
	assert.Equal(t, []byte{0x1f, 0x8b, 0x00}, w.Body.Bytes())
}

func TestNoContent(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	require.NoError(t, response.NoContent()(w, r))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("object_payload", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		err := response.JSON(map[string]string{"status": "ok"})(w, r)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))

		var got map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "ok", got["status"])
	})

	t.Run("nil_with_zero_status_is_204", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		require.NoError(t, response.JSONWithStatus(nil, 0)(w, r))
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("explicit_status", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		require.NoError(t, response.JSONWithStatus(map[string]int{"n": 1}, http.StatusAccepted)(w, r))
		assert.Equal(t, http.StatusAccepted, w.Code)
		assert.JSONEq(t, `{"n":1}`, w.Body.String())
	})
}

func TestRedirect(t *testing.T) {
	t.Parallel()

	t.Run("found_by_default", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/old", nil)

		require.NoError(t, response.Redirect("/new")(w, r))
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/new", w.Header().Get("Location"))
	})

	t.Run("invalid_status_falls_back_to_found", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/old", nil)

		require.NoError(t, response.RedirectWithStatus("/new", http.StatusOK)(w, r))
		assert.Equal(t, http.StatusFound, w.Code)
	})
}
