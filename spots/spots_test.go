package spots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"voyago/db"
	"voyago/models"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type fakeSpots struct {
	docs []interface{}
}

func (f *fakeSpots) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error) {
	return mongo.NewCursorFromDocuments(f.docs, nil, nil)
}

func TestImageURL(t *testing.T) {
	base := "http://localhost:8080"

	if got := ImageURL(base, "gateway-of-india.jpg"); got != "http://localhost:8080/images/gateway-of-india.jpg" {
		t.Fatalf("unexpected derived URL: %q", got)
	}
	if got := ImageURL(base, "https://cdn.example.com/pic.jpg"); got != "https://cdn.example.com/pic.jpg" {
		t.Fatalf("absolute URL should pass through, got %q", got)
	}
	if got := ImageURL(base, ""); got != "" {
		t.Fatalf("empty image should stay empty, got %q", got)
	}
}

func TestNewHandlerTrimsBaseURL(t *testing.T) {
	h := NewHandler(&db.Store{}, nil, "http://localhost:8080/")
	if h.baseURL != "http://localhost:8080" {
		t.Fatalf("trailing slash not trimmed: %q", h.baseURL)
	}
}

func TestGetSpotsEnvelopeAndImageRewrite(t *testing.T) {
	h := &Handler{
		spots: &fakeSpots{docs: []interface{}{
			models.Spot{SpotID: 1, Title: "Gateway of India", Image: "gateway-of-india.jpg"},
		}},
		baseURL: "http://localhost:8080",
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/spots", nil)
	h.GetSpots(rec, req, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if body["status"] != float64(http.StatusOK) {
		t.Errorf("expected status field 200, got %v", body["status"])
	}
	if body["message"] != "Spots fetched successfully" {
		t.Errorf("unexpected message %v", body["message"])
	}
	if _, ok := body["timestamp"].(string); !ok {
		t.Error("envelope missing timestamp")
	}

	data, ok := body["data"].([]interface{})
	if !ok || len(data) != 1 {
		t.Fatalf("expected 1 spot, got %v", body["data"])
	}
	spot := data[0].(map[string]interface{})
	if spot["image"] != "http://localhost:8080/images/gateway-of-india.jpg" {
		t.Errorf("image not rewritten to absolute URL: %v", spot["image"])
	}
}
