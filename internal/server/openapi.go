package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"
)

// ErrorResponse is returned for all admin error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "Ambari API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Backend API for the Ambari heritage stamp-collection app.")

	// GET /api/health
	getHealth, _ := r.NewOperationContext(http.MethodGet, "/api/health")
	getHealth.SetSummary("Health check")
	getHealth.SetDescription("Returns ok when the storage backend is reachable.")
	getHealth.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealth.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealth)

	// GET /api/places
	getPlaces, _ := r.NewOperationContext(http.MethodGet, "/api/places")
	getPlaces.SetSummary("List places")
	getPlaces.SetDescription("Returns the place registry without QR tokens.")
	getPlaces.AddRespStructure([]PlaceItem{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getPlaces)

	// POST /api/validate/qr
	postQR, _ := r.NewOperationContext(http.MethodPost, "/api/validate/qr")
	postQR.SetSummary("Validate a scanned QR token")
	postQR.SetDescription("Checks the token against the place registry and records a check-in on match. Mismatches return 200 with ok=false.")
	postQR.AddReqStructure(ValidateRequest{})
	postQR.AddRespStructure(ValidateResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postQR.AddRespStructure(ValidateResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postQR.AddRespStructure(ValidateResponse{}, openapi.WithHTTPStatus(http.StatusInternalServerError))
	_ = r.AddOperation(postQR)

	// POST /api/validate/tag
	postTag, _ := r.NewOperationContext(http.MethodPost, "/api/validate/tag")
	postTag.SetSummary("Validate a scanned NFC tag code")
	postTag.SetDescription("Same contract as /api/validate/qr, matching the place's tag code instead.")
	postTag.AddReqStructure(ValidateRequest{})
	postTag.AddRespStructure(ValidateResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postTag.AddRespStructure(ValidateResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postTag.AddRespStructure(ValidateResponse{}, openapi.WithHTTPStatus(http.StatusInternalServerError))
	_ = r.AddOperation(postTag)

	// POST /api/admin/login
	postLogin, _ := r.NewOperationContext(http.MethodPost, "/api/admin/login")
	postLogin.SetSummary("Admin login")
	postLogin.AddReqStructure(AdminLoginRequest{})
	postLogin.AddRespStructure(AdminMeResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postLogin.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(postLogin)

	// GET /api/admin/checkins
	getCheckins, _ := r.NewOperationContext(http.MethodGet, "/api/admin/checkins")
	getCheckins.SetSummary("List recent check-ins")
	getCheckins.SetDescription("Requires an admin session cookie.")
	getCheckins.AddRespStructure([]CheckinItem{}, openapi.WithHTTPStatus(http.StatusOK))
	getCheckins.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(getCheckins)

	// GET /api/admin/stats
	getStats, _ := r.NewOperationContext(http.MethodGet, "/api/admin/stats")
	getStats.SetSummary("Per-place check-in counts")
	getStats.AddRespStructure([]PlaceStats{}, openapi.WithHTTPStatus(http.StatusOK))
	getStats.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(getStats)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		spec := newOpenAPISpec()
		data, err := json.MarshalIndent(spec, "", "  ")
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Write(data)
	}
}
