package passport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Adithya4code/Ambari/internal/ambari"
)

func fakeBackend(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/places", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]ambari.Place{
			{ID: "mysore_palace", Title: "Mysore Palace", Latitude: 12.305199, Longitude: 76.654549, TagCode: "TAG-MYSPAL"},
		})
	})
	mux.HandleFunc("/api/validate/qr", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			PlaceID string `json:"placeId"`
			QRToken string `json:"qrToken"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		if body.PlaceID == "mysore_palace" && body.QRToken == "QR-MYSPAL-001" {
			json.NewEncoder(w).Encode(ValidateResponse{OK: true, PlaceID: body.PlaceID})
			return
		}
		json.NewEncoder(w).Encode(ValidateResponse{OK: false, Reason: "invalid_qr"})
	})
	mux.HandleFunc("/api/validate/tag", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			PlaceID string `json:"placeId"`
			TagCode string `json:"tagCode"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		if body.PlaceID == "mysore_palace" && body.TagCode == "TAG-MYSPAL" {
			json.NewEncoder(w).Encode(ValidateResponse{OK: true, PlaceID: body.PlaceID})
			return
		}
		json.NewEncoder(w).Encode(ValidateResponse{OK: false, Reason: "invalid_tag"})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestAPIClientPlaces(t *testing.T) {
	srv := fakeBackend(t)
	c := NewAPIClient(srv.URL)

	places, err := c.Places(context.Background())
	if err != nil {
		t.Fatalf("places: %v", err)
	}
	if len(places) != 1 || places[0].ID != "mysore_palace" {
		t.Errorf("places = %+v", places)
	}
}

func TestAPIClientSyncCheckin(t *testing.T) {
	srv := fakeBackend(t)
	c := NewAPIClient(srv.URL)
	ctx := context.Background()

	ok := ambari.QueuedCheckin{ID: "1", PlaceID: "mysore_palace", Token: "QR-MYSPAL-001"}
	if err := c.SyncCheckin(ctx, ok); err != nil {
		t.Errorf("valid checkin: %v", err)
	}

	// Tag-origin items are rejected on the qr path and accepted on the
	// tag retry.
	tag := ambari.QueuedCheckin{ID: "2", PlaceID: "mysore_palace", Token: "TAG-MYSPAL"}
	if err := c.SyncCheckin(ctx, tag); err != nil {
		t.Errorf("tag checkin: %v", err)
	}

	bad := ambari.QueuedCheckin{ID: "3", PlaceID: "mysore_palace", Token: "wrong"}
	if err := c.SyncCheckin(ctx, bad); err == nil {
		t.Error("rejected checkin did not error")
	}
}

func TestAPIClientBackendDown(t *testing.T) {
	srv := fakeBackend(t)
	url := srv.URL
	srv.Close()

	c := NewAPIClient(url)
	if _, err := c.Places(context.Background()); err == nil {
		t.Error("expected error with backend down")
	}
}
