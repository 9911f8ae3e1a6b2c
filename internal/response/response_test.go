package response

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stemsi/gradebook/internal/model"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestFromError(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   ErrCode
	}{
		{fmt.Errorf("load exams: %w", model.ErrNotFound), http.StatusNotFound, ErrNotFound},
		{fmt.Errorf("%w: unknown dbsize", model.ErrInvalidArgument), http.StatusBadRequest, ErrInvalidArgument},
		{errors.New("connection reset"), http.StatusInternalServerError, ErrInternal},
	}
	for _, tt := range tests {
		status, code := FromError(tt.err)
		if status != tt.status || code != tt.code {
			t.Errorf("FromError(%v) = %d, %s; want %d, %s", tt.err, status, code, tt.status, tt.code)
		}
	}
}

func TestFailWithErrorHidesInternalDetail(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	FailWithError(c, errors.New("password=secret"))

	var body Response
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if w.Code != http.StatusInternalServerError || body.Error == nil || body.Error.Detail != "" {
		t.Errorf("unexpected response %d: %s", w.Code, w.Body.String())
	}
	if body.Metadata.RequestID == "" {
		t.Error("request id missing")
	}
}

func TestReport(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set(ContextKeyRequestID, "req-1")

	Report(c, "Rossi Anna\t29.5\n", 1)

	if got := w.Header().Get("Content-Type"); got != "text/plain; charset=utf-8" {
		t.Errorf("Content-Type = %q", got)
	}
	if got := w.Header().Get(HeaderReportCount); got != "1" {
		t.Errorf("%s = %q", HeaderReportCount, got)
	}
	if got := w.Header().Get("X-Request-ID"); got != "req-1" {
		t.Errorf("X-Request-ID = %q", got)
	}
	if w.Body.String() != "Rossi Anna\t29.5\n" {
		t.Errorf("body = %q", w.Body.String())
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(ContextKeyRequestID)) })

	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{"client id kept", "abc-123", true},
		{"missing id generated", "", false},
		{"id with spaces replaced", "abc 123", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set("X-Request-ID", tt.incoming)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			got := w.Header().Get("X-Request-ID")
			if got != w.Body.String() {
				t.Errorf("header %q differs from context %q", got, w.Body.String())
			}
			if tt.keep && got != tt.incoming {
				t.Errorf("id = %q, want %q", got, tt.incoming)
			}
			if !tt.keep && (got == "" || got == tt.incoming) {
				t.Errorf("id = %q, expected a generated one", got)
			}
		})
	}
}
