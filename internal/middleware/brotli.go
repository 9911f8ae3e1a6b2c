package middleware

import (
	"bytes"
	"net/http"
	"strconv"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/gin-gonic/gin"
)

// BrotliConfig controls which responses are compressed.
type BrotliConfig struct {
	Quality   int
	MinLength int
	// ContentTypes lists the media type prefixes eligible for compression.
	ContentTypes []string
}

var DefaultBrotliConfig = BrotliConfig{
	Quality:      brotli.DefaultCompression,
	MinLength:    1024,
	ContentTypes: []string{"text/plain", "application/json"},
}

// bufferedWriter holds the whole body until the handler chain returns.
// Reports are rendered in memory anyway, so nothing streams.
type bufferedWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *bufferedWriter) Write(data []byte) (int, error) {
	return w.body.Write(data)
}

func (w *bufferedWriter) WriteString(s string) (int, error) {
	return w.body.WriteString(s)
}

func Brotli() gin.HandlerFunc {
	return BrotliWithConfig(DefaultBrotliConfig)
}

func BrotliWithConfig(cfg BrotliConfig) gin.HandlerFunc {
	if cfg.Quality < brotli.BestSpeed || cfg.Quality > brotli.BestCompression {
		cfg.Quality = brotli.DefaultCompression
	}
	if cfg.MinLength <= 0 {
		cfg.MinLength = DefaultBrotliConfig.MinLength
	}
	if len(cfg.ContentTypes) == 0 {
		cfg.ContentTypes = DefaultBrotliConfig.ContentTypes
	}

	return func(c *gin.Context) {
		if !acceptsBrotli(c.Request) || c.Request.Method == http.MethodHead {
			c.Next()
			return
		}

		original := c.Writer
		bw := &bufferedWriter{ResponseWriter: original}
		c.Writer = bw
		c.Header("Vary", "Accept-Encoding")

		c.Next()

		c.Writer = original
		body := bw.body.Bytes()

		if len(body) < cfg.MinLength || !compressible(original.Header().Get("Content-Type"), cfg.ContentTypes) {
			if _, err := original.Write(body); err != nil {
				_ = c.Error(err)
			}
			return
		}

		var compressed bytes.Buffer
		enc := brotli.NewWriterLevel(&compressed, cfg.Quality)
		if _, err := enc.Write(body); err != nil {
			_ = c.Error(err)
			return
		}
		if err := enc.Close(); err != nil {
			_ = c.Error(err)
			return
		}

		original.Header().Set("Content-Encoding", "br")
		original.Header().Set("Content-Length", strconv.Itoa(compressed.Len()))
		if _, err := original.Write(compressed.Bytes()); err != nil {
			_ = c.Error(err)
		}
	}
}

func compressible(contentType string, allowed []string) bool {
	for _, prefix := range allowed {
		if strings.HasPrefix(contentType, prefix) {
			return true
		}
	}
	return false
}

func acceptsBrotli(r *http.Request) bool {
	ae := r.Header.Get("Accept-Encoding")
	for _, enc := range strings.Split(ae, ",") {
		name := strings.TrimSpace(strings.SplitN(enc, ";", 2)[0])
		if strings.EqualFold(name, "br") {
			return true
		}
	}
	return false
}
