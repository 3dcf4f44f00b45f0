package passport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Adithya4code/Ambari/internal/ambari"
)

// APIClient talks to the backend's validation API. It implements Syncer so
// the queue processor can replay offline check-ins against it.
type APIClient struct {
	baseURL string
	http    *http.Client
}

func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// ValidateResponse is the body of POST /api/validate/{qr,tag}.
type ValidateResponse struct {
	OK      bool   `json:"ok"`
	PlaceID string `json:"placeId,omitempty"`
	Reason  string `json:"reason,omitempty"`
}

// Places fetches the place registry from the backend.
func (c *APIClient) Places(ctx context.Context) ([]ambari.Place, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/places", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching places: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching places: status %d", resp.StatusCode)
	}
	var places []ambari.Place
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return nil, fmt.Errorf("decoding places: %w", err)
	}
	return places, nil
}

// ValidateQR validates a scanned QR token server-side. OK=false with a
// reason is a validation outcome, not an error.
func (c *APIClient) ValidateQR(ctx context.Context, placeID, qrToken string) (ValidateResponse, error) {
	return c.validate(ctx, "/api/validate/qr", map[string]string{
		"placeId": placeID,
		"qrToken": qrToken,
	})
}

// ValidateTag validates a scanned NFC tag code server-side.
func (c *APIClient) ValidateTag(ctx context.Context, placeID, tagCode string) (ValidateResponse, error) {
	return c.validate(ctx, "/api/validate/tag", map[string]string{
		"placeId": placeID,
		"tagCode": tagCode,
	})
}

func (c *APIClient) validate(ctx context.Context, path string, body map[string]string) (ValidateResponse, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return ValidateResponse{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return ValidateResponse{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return ValidateResponse{}, fmt.Errorf("posting %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return ValidateResponse{}, fmt.Errorf("posting %s: status %d", path, resp.StatusCode)
	}
	var vr ValidateResponse
	if err := json.NewDecoder(resp.Body).Decode(&vr); err != nil {
		return ValidateResponse{}, fmt.Errorf("decoding %s response: %w", path, err)
	}
	return vr, nil
}

// SyncCheckin replays one queued check-in through the validation API.
// Queue items don't record which kind of code was scanned, so the QR
// endpoint is tried first and a rejected token is retried as a tag code.
// A token neither endpoint accepts counts as a sync failure, so the item
// stays visible in the queue as failed.
func (c *APIClient) SyncCheckin(ctx context.Context, item ambari.QueuedCheckin) error {
	vr, err := c.ValidateQR(ctx, item.PlaceID, item.Token)
	if err != nil {
		return err
	}
	if vr.OK {
		return nil
	}
	vr, err = c.ValidateTag(ctx, item.PlaceID, item.Token)
	if err != nil {
		return err
	}
	if !vr.OK {
		return fmt.Errorf("checkin rejected: %s", vr.Reason)
	}
	return nil
}
