package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHandleOpenAPI(t *testing.T) {
	r, _ := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/openapi.json", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("content type = %q", ct)
	}

	body := w.Body.String()
	if !strings.Contains(body, `"openapi": "3.0`) {
		t.Error("missing openapi version marker")
	}
	for _, path := range []string{
		"/api/places",
		"/api/validate/qr",
		"/api/validate/tag",
		"/api/admin/login",
		"/api/admin/checkins",
		"/api/admin/stats",
	} {
		if !strings.Contains(body, path) {
			t.Errorf("spec missing path %s", path)
		}
	}
}
