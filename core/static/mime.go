package static

// defaultMIMETypes maps lower-case file extensions to media types. The table
// is intentionally small: it covers what web projects actually ship, and
// anything unknown falls back to application/octet-stream.
func defaultMIMETypes() map[string]string {
	return map[string]string{
		".html":  "text/html; charset=utf-8",
		".htm":   "text/html; charset=utf-8",
		".css":   "text/css; charset=utf-8",
		".js":    "text/javascript; charset=utf-8",
		".mjs":   "text/javascript; charset=utf-8",
		".json":  "application/json",
		".map":   "application/json",
		".xml":   "application/xml",
		".txt":   "text/plain; charset=utf-8",
		".md":    "text/markdown; charset=utf-8",
		".csv":   "text/csv; charset=utf-8",
		".svg":   "image/svg+xml",
		".ico":   "image/x-icon",
		".png":   "image/png",
		".jpg":   "image/jpeg",
		".jpeg":  "image/jpeg",
		".gif":   "image/gif",
		".webp":  "image/webp",
		".avif":  "image/avif",
		".mp3":   "audio/mpeg",
		".mp4":   "video/mp4",
		".webm":  "video/webm",
		".woff":  "font/woff",
		".woff2": "font/woff2",
		".ttf":   "font/ttf",
		".otf":   "font/otf",
		".eot":   "application/vnd.ms-fontobject",
		".pdf":   "application/pdf",
		".wasm":  "application/wasm",
		".gz":    "application/gzip",
		".zip":   "application/zip",
	}
}

// defaultCompressible lists the extensions eligible for compression:
// text-like formats that deflate well. Formats with built-in compression
// (most images and fonts, archives, media) are excluded.
func defaultCompressible() map[string]bool {
	return map[string]bool{
		".html": true,
		".htm":  true,
		".css":  true,
		".js":   true,
		".mjs":  true,
		".json": true,
		".map":  true,
		".xml":  true,
		".txt":  true,
		".md":   true,
		".csv":  true,
		".svg":  true,
		".ico":  true,
		".ttf":  true,
		".otf":  true,
		".eot":  true,
		".wasm": true,
	}
}
