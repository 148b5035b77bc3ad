package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestTokenAuth(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name         string
		token        string
		header       string
		expectedCode int
	}{
		{"valid token", "secret", "Bearer secret", http.StatusOK},
		{"wrong token", "secret", "Bearer nope", http.StatusUnauthorized},
		{"missing header", "secret", "", http.StatusUnauthorized},
		{"auth disabled", "", "", http.StatusOK},
	}

	for _, test := range tests {
		h := TokenAuth(test.token)(next)

		req := httptest.NewRequest(http.MethodGet, "/api/history", nil)
		if test.header != "" {
			req.Header.Set("Authorization", test.header)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != test.expectedCode {
			t.Errorf("%s: expected %d, got %d", test.name, test.expectedCode, rec.Code)
		}
	}
}
