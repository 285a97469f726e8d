package static

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// fileConfig is the YAML shape of a config overlay. Pointer fields
// distinguish "absent" from zero values.
type fileConfig struct {
	MIMETypes       map[string]string `yaml:"mime_types"`
	Compressible    []string          `yaml:"compressible"`
	Compression     *bool             `yaml:"compression"`
	CompressMinSize *int64            `yaml:"compress_min_size"`
}

// LoadConfig reads a YAML overlay from path and applies it on top of
// DefaultConfig. MIME entries merge into the default table; a compressible
// list replaces the default set. Unknown keys are rejected.
//
// Example overlay:
//
//	compression: true
//	compress_min_size: 1024
//	mime_types:
//	  ".geojson": "application/geo+json"
//	compressible:
//	  - ".html"
//	  - ".css"
//	  - ".geojson"
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("static: read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig applies a YAML overlay from raw bytes. See LoadConfig.
func ParseConfig(data []byte) (Config, error) {
	var fc fileConfig

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil {
		if errors.Is(err, io.EOF) {
			// Empty overlay, defaults apply.
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("static: parse config: %w", err)
	}

	cfg := DefaultConfig()

	for ext, mimeType := range fc.MIMETypes {
		cfg.MIMETypes[normalizeExt(ext)] = mimeType
	}
	if fc.Compressible != nil {
		set := make(map[string]bool, len(fc.Compressible))
		for _, ext := range fc.Compressible {
			set[normalizeExt(ext)] = true
		}
		cfg.Compressible = set
	}
	if fc.Compression != nil {
		cfg.Compression = *fc.Compression
	}
	if fc.CompressMinSize != nil {
		cfg.CompressMinSize = *fc.CompressMinSize
	}

	return cfg, nil
}

// normalizeExt lower-cases an extension and ensures the leading dot, so
// overlay files may write either "css" or ".CSS".
func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && ext[0] != '.' {
		ext = "." + ext
	}
	return ext
}
