package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Adithya4code/Ambari/internal/ambari"
)

// ValidateRequest is the body of POST /api/validate/qr and /api/validate/tag.
// QRToken is read on the qr path, TagCode on the tag path.
type ValidateRequest struct {
	PlaceID string `json:"placeId"`
	QRToken string `json:"qrToken,omitempty"`
	TagCode string `json:"tagCode,omitempty"`
}

// ValidateResponse is the body of both validate endpoints. OK=false carries
// a machine-readable reason; mismatches are 200s, not errors.
type ValidateResponse struct {
	OK      bool   `json:"ok"`
	PlaceID string `json:"placeId,omitempty"`
	Reason  string `json:"reason,omitempty"`
}

func handleValidateQR(logger *slog.Logger, store Store) http.HandlerFunc {
	return handleValidate(logger, store, ambari.SourceQR)
}

func handleValidateTag(logger *slog.Logger, store Store) http.HandlerFunc {
	return handleValidate(logger, store, ambari.SourceTag)
}

// handleValidate implements both validation entry points. The two paths are
// independent one-field comparisons: the qr path matches only qr_token, the
// tag path only tag_code. A successful match appends a CheckinRecord; a
// duplicate scan inserts a second record, which is tolerated.
func handleValidate(logger *slog.Logger, store Store, source ambari.Source) http.HandlerFunc {
	mismatch := "invalid_qr"
	if source == ambari.SourceTag {
		mismatch = "invalid_tag"
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req ValidateRequest
		if err := readJSON(r, &req); err != nil {
			writeJSON(w, http.StatusBadRequest, ValidateResponse{OK: false, Reason: "missing_params"})
			return
		}

		credential := req.QRToken
		if source == ambari.SourceTag {
			credential = req.TagCode
		}
		if req.PlaceID == "" || credential == "" {
			writeJSON(w, http.StatusBadRequest, ValidateResponse{OK: false, Reason: "missing_params"})
			return
		}

		var (
			place ambari.Place
			err   error
		)
		if source == ambari.SourceQR {
			place, err = store.PlaceByQRToken(r.Context(), req.PlaceID, credential)
		} else {
			place, err = store.PlaceByTagCode(r.Context(), req.PlaceID, credential)
		}
		if errors.Is(err, ErrNotFound) {
			writeJSON(w, http.StatusOK, ValidateResponse{OK: false, Reason: mismatch})
			return
		}
		if err != nil {
			logger.Error("validating place token", "place_id", req.PlaceID, "source", source, "error", err)
			writeJSON(w, http.StatusInternalServerError, ValidateResponse{OK: false, Reason: "server_error"})
			return
		}

		if _, err := store.RecordCheckin(r.Context(), place.ID, credential, source); err != nil {
			logger.Error("recording checkin", "place_id", place.ID, "source", source, "error", err)
			writeJSON(w, http.StatusInternalServerError, ValidateResponse{OK: false, Reason: "server_error"})
			return
		}

		writeJSON(w, http.StatusOK, ValidateResponse{OK: true, PlaceID: place.ID})
	}
}
