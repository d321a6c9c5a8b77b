package httpserver

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func stub(status int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	})
}

func TestRouterMethodGuard(t *testing.T) {
	router := NewRouter(Routes{
		Readings: stub(http.StatusOK),
		Refresh:  stub(http.StatusAccepted),
		Health:   stub(http.StatusOK),
	})

	cases := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/api/readings", http.StatusOK},
		{http.MethodPost, "/api/readings", http.StatusMethodNotAllowed},
		{http.MethodPost, "/api/refresh", http.StatusAccepted},
		{http.MethodGet, "/api/refresh", http.StatusMethodNotAllowed},
		{http.MethodGet, "/health", http.StatusOK},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
		if rec.Code != tc.want {
			t.Errorf("%s %s = %d, want %d", tc.method, tc.path, rec.Code, tc.want)
		}
	}
}

func TestRouterSplitsRangesByMethod(t *testing.T) {
	router := NewRouter(Routes{
		GetRange: stub(http.StatusOK),
		PutRange: stub(http.StatusCreated),
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/ranges", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("GET = %d, want 200", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/ranges", nil))
	if rec.Code != http.StatusCreated {
		t.Fatalf("PUT = %d, want 201", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/ranges", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("DELETE = %d, want 405", rec.Code)
	}
}
