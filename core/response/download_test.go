package response_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrhq/zephyr/core/response"
)

func TestAttachment(t *testing.T) {
	t.Parallel()

	t.Run("explicit_content_type", func(t *testing.T) {
		t.Parallel()

		resp := response.Attachment([]byte("a,b\n1,2\n"), "export.csv", "text/csv")

		w := httptest.NewRecorder()
		require.NoError(t, resp(w, httptest.NewRequest(http.MethodGet, "/", nil)))

		assert.Equal(t, `attachment; filename=export.csv`, w.Header().Get("Content-Disposition"))
		assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
		assert.Equal(t, "8", w.Header().Get("Content-Length"))
		assert.Equal(t, "a,b\n1,2\n", w.Body.String())
	})

	t.Run("type_detected_from_filename", func(t *testing.T) {
		t.Parallel()

		resp := response.Attachment([]byte("{}"), "data.json", "")

		w := httptest.NewRecorder()
		require.NoError(t, resp(w, httptest.NewRequest(http.MethodGet, "/", nil)))

		assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	})

	t.Run("unknown_extension_falls_back", func(t *testing.T) {
		t.Parallel()

		resp := response.Attachment([]byte{0x1, 0x2}, "blob.zzz", "")

		w := httptest.NewRecorder()
		require.NoError(t, resp(w, httptest.NewRequest(http.MethodGet, "/", nil)))

		assert.Equal(t, "application/octet-stream", w.Header().Get("Content-Type"))
	})
}

func TestAttachmentReader(t *testing.T) {
	t.Parallel()

	resp := response.AttachmentReader(strings.NewReader("streamed payload"), "dump.txt", "")

	w := httptest.NewRecorder()
	require.NoError(t, resp(w, httptest.NewRequest(http.MethodGet, "/", nil)))

	assert.Contains(t, w.Header().Get("Content-Disposition"), `filename=dump.txt`)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	assert.Empty(t, w.Header().Get("Content-Length"))
	assert.Equal(t, "streamed payload", w.Body.String())
}
