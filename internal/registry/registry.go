// Package registry holds the in-memory place registry and the token
// validator. The registry is built once from seed data or from the backend's
// place list and is read-only afterwards.
package registry

import "github.com/Adithya4code/Ambari/internal/ambari"

// Status is the tri-state outcome of validating a scanned token.
type Status string

const (
	StatusOK           Status = "ok"
	StatusUnknownPlace Status = "unknown_place"
	StatusInvalidToken Status = "invalid_token"
)

// Result carries the validation outcome. Place is set whenever the place id
// resolved, including on a token mismatch, so the caller can show which
// place was attempted.
type Result struct {
	Status Status
	Place  *ambari.Place
}

// Registry indexes places by id.
type Registry struct {
	byID  map[string]*ambari.Place
	order []string
}

// New builds a registry from a place list. Later duplicates of an id are
// ignored; ids are unique by invariant.
func New(places []ambari.Place) *Registry {
	r := &Registry{byID: make(map[string]*ambari.Place, len(places))}
	for i := range places {
		p := places[i]
		if _, ok := r.byID[p.ID]; ok {
			continue
		}
		r.byID[p.ID] = &p
		r.order = append(r.order, p.ID)
	}
	return r
}

// Lookup returns the place for id, or nil if unknown.
func (r *Registry) Lookup(id string) *ambari.Place {
	return r.byID[id]
}

// Places returns all places in registration order.
func (r *Registry) Places() []ambari.Place {
	out := make([]ambari.Place, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.byID[id])
	}
	return out
}

// ValidateQR checks a scanned QR token against the place's stored QR token.
// Comparison is exact and case-sensitive; a tag code is never accepted here.
func (r *Registry) ValidateQR(placeID, token string) Result {
	return r.validate(placeID, token, func(p *ambari.Place) string { return p.QRToken })
}

// ValidateTag checks a scanned NFC tag code against the place's stored tag
// code. A QR token is never accepted here.
func (r *Registry) ValidateTag(placeID, code string) Result {
	return r.validate(placeID, code, func(p *ambari.Place) string { return p.TagCode })
}

func (r *Registry) validate(placeID, token string, stored func(*ambari.Place) string) Result {
	p := r.byID[placeID]
	if p == nil {
		return Result{Status: StatusUnknownPlace}
	}
	if want := stored(p); want == "" || token != want {
		return Result{Status: StatusInvalidToken, Place: p}
	}
	return Result{Status: StatusOK, Place: p}
}
