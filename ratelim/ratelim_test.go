package ratelim

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
)

func TestLimitAllowsBurstThenRejects(t *testing.T) {
	rl := NewRateLimiter()

	handler := rl.Limit(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusOK)
	})

	for i := 0; i < rl.burst; i++ {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
		req.RemoteAddr = "10.0.0.1:5000"
		handler(rec, req, nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d within burst rejected with %d", i+1, rec.Code)
		}
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
	req.RemoteAddr = "10.0.0.1:5000"
	handler(rec, req, nil)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after burst, got %d", rec.Code)
	}

	// a different IP has its own bucket
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/login", nil)
	req.RemoteAddr = "10.0.0.2:5000"
	handler(rec, req, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("fresh IP should be allowed, got %d", rec.Code)
	}
}
