package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCors(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	tests := []struct {
		name       string
		allowed    []string
		method     string
		origin     string
		preflight  bool
		wantStatus int
		wantOrigin string
	}{
		{"allowed origin", []string{"http://localhost:3000"}, http.MethodGet, "http://localhost:3000", false, http.StatusTeapot, "http://localhost:3000"},
		{"trailing slash in config", []string{"https://app.example.com/"}, http.MethodGet, "https://app.example.com", false, http.StatusTeapot, "https://app.example.com"},
		{"foreign origin", []string{"http://localhost:3000"}, http.MethodGet, "https://evil.example", false, http.StatusTeapot, ""},
		{"wildcard", []string{"*"}, http.MethodGet, "https://any.example", false, http.StatusTeapot, "https://any.example"},
		{"no origin", []string{"*"}, http.MethodGet, "", false, http.StatusTeapot, ""},
		{"preflight", []string{"http://localhost:3000"}, http.MethodOptions, "http://localhost:3000", true, http.StatusNoContent, "http://localhost:3000"},
		{"plain options", []string{"http://localhost:3000"}, http.MethodOptions, "http://localhost:3000", false, http.StatusTeapot, "http://localhost:3000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.preflight {
				req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			}
			rec := httptest.NewRecorder()

			Cors(tt.allowed)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}
