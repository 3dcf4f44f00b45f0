package server

import "net/http"

// PlaceItem is one entry of GET /api/places. QR tokens are never exposed
// here: they only travel inside generated codes.
type PlaceItem struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	BadgeURL  string  `json:"badgeUrl"`
	TagCode   string  `json:"tagCode"`
}

func handlePlaces(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		places, err := store.ListPlaces(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed_to_fetch_places")
			return
		}

		items := make([]PlaceItem, 0, len(places))
		for _, p := range places {
			items = append(items, PlaceItem{
				ID:        p.ID,
				Title:     p.Title,
				Latitude:  p.Latitude,
				Longitude: p.Longitude,
				BadgeURL:  p.BadgeURL,
				TagCode:   p.TagCode,
			})
		}
		writeJSON(w, http.StatusOK, items)
	}
}
