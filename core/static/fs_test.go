package static_test

import (
	"io"
	"net/http"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrhq/zephyr/core/router"
	"github.com/zephyrhq/zephyr/core/static"
)

func embeddedSite() fstest.MapFS {
	return fstest.MapFS{
		"index.html":      {Data: []byte("<!doctype html><title>embedded</title>" + strings.Repeat("<p>hi</p>", 200))},
		"assets/app.js":   {Data: []byte("console.log('boot');" + strings.Repeat("function noop(){};", 100))},
		"assets/data.bin": {Data: fileContent(4096)},
	}
}

func serveFS(t *testing.T, fsys fstest.MapFS, opts ...static.Option) http.Handler {
	t.Helper()

	r := router.New[*router.Context]()
	r.Get("/*", static.FS[*router.Context](fsys, opts...))
	return r
}

func TestFSServesFiles(t *testing.T) {
	t.Parallel()

	site := embeddedSite()
	h := serveFS(t, site)

	t.Run("file", func(t *testing.T) {
		t.Parallel()

		w := doGet(h, "/assets/app.js", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/javascript; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Equal(t, site["assets/app.js"].Data, w.Body.Bytes())
	})

	t.Run("root_index", func(t *testing.T) {
		t.Parallel()

		w := doGet(h, "/", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, site["index.html"].Data, w.Body.Bytes())
	})

	t.Run("compressed", func(t *testing.T) {
		t.Parallel()

		w := doGet(h, "/assets/app.js", map[string]string{"Accept-Encoding": "gzip"})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))

		zr, err := gzip.NewReader(w.Body)
		require.NoError(t, err)
		decoded, err := io.ReadAll(zr)
		require.NoError(t, err)
		assert.Equal(t, site["assets/app.js"].Data, decoded)
	})

	t.Run("range", func(t *testing.T) {
		t.Parallel()

		w := doGet(h, "/assets/data.bin", map[string]string{"Range": "bytes=100-299"})

		assert.Equal(t, http.StatusPartialContent, w.Code)
		assert.Equal(t, "bytes 100-299/4096", w.Header().Get("Content-Range"))
		assert.Equal(t, site["assets/data.bin"].Data[100:300], w.Body.Bytes())
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()

		w := doGet(h, "/assets/vendor.js", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestFSSubFS(t *testing.T) {
	t.Parallel()

	site := fstest.MapFS{
		"dist/index.html": {Data: []byte("<!doctype html><h1>built</h1>")},
		"dist/app.css":    {Data: []byte("h1{font-weight:bold}")},
		"Makefile":        {Data: []byte("all:")},
	}

	h := serveFS(t, site, static.WithSubFS("dist"))

	w := doGet(h, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, site["dist/index.html"].Data, w.Body.Bytes())

	w = doGet(h, "/app.css", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, site["dist/app.css"].Data, w.Body.Bytes())

	// Files outside the sub directory are not reachable.
	w = doGet(h, "/Makefile", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFSInvalidSubDir(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		static.FS[*router.Context](embeddedSite(), static.WithSubFS("../escape"))
	})
}
