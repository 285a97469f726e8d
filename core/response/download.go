package response

import (
	"io"
	"mime"
	"net/http"
	"path"
	"strconv"

	"github.com/zephyrhq/zephyr/core/handler"
)

// Attachment serves in-memory data as a browser download. The filename
// lands in Content-Disposition; an empty contentType is detected from the
// filename's extension, falling back to application/octet-stream.
func Attachment(data []byte, filename, contentType string) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		h := w.Header()
		h.Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
		h.Set("Content-Type", attachmentType(contentType, filename))
		h.Set("Content-Length", strconv.Itoa(len(data)))

		_, err := w.Write(data)
		return err
	}
}

// AttachmentReader streams a reader as a browser download. No
// Content-Length is set; the server switches to chunked transfer.
func AttachmentReader(reader io.Reader, filename, contentType string) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		h := w.Header()
		h.Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
		h.Set("Content-Type", attachmentType(contentType, filename))

		_, err := io.Copy(w, reader)
		return err
	}
}

func attachmentType(contentType, filename string) string {
	if contentType != "" {
		return contentType
	}
	if detected := mime.TypeByExtension(path.Ext(filename)); detected != "" {
		return detected
	}
	return "application/octet-stream"
}
