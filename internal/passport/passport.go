package passport

import (
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/Adithya4code/Ambari/internal/ambari"
)

// Passport owns the collected stamps, the offline queue, and the score
// ledger of one device.
type Passport struct {
	store Store
	log   *slog.Logger
	now   func() time.Time
}

func New(store Store, logger *slog.Logger) *Passport {
	return &Passport{store: store, log: logger, now: time.Now}
}

// CheckIn records a successful on-site validation: the place's stamp is
// added to the collected set (idempotently) and a queued check-in is
// appended for later sync. Stamp collection is best-effort: storage errors
// are logged, never returned, because the UI has already shown success.
// Returns the queued item, or nil if enqueueing failed.
func (p *Passport) CheckIn(placeID, token string) *ambari.QueuedCheckin {
	if err := p.addStamp(placeID); err != nil {
		p.log.Error("saving stamp", "place_id", placeID, "error", err)
	}

	item := ambari.QueuedCheckin{
		ID:         uuid.NewString(),
		PlaceID:    placeID,
		Token:      token,
		EnqueuedAt: p.now(),
		Status:     ambari.QueueStatusQueued,
	}
	var queue []ambari.QueuedCheckin
	if _, err := p.store.Get(keyQueue, &queue); err != nil {
		p.log.Error("loading queue", "error", err)
		return nil
	}
	queue = append(queue, item)
	if err := p.store.Set(keyQueue, queue); err != nil {
		p.log.Error("saving queue", "place_id", placeID, "error", err)
		return nil
	}
	return &item
}

func (p *Passport) addStamp(placeID string) error {
	var stamps []string
	if _, err := p.store.Get(keyStamps, &stamps); err != nil {
		return err
	}
	if slices.Contains(stamps, placeID) {
		return nil
	}
	return p.store.Set(keyStamps, append(stamps, placeID))
}

// Stamps returns the collected place ids in collection order.
func (p *Passport) Stamps() ([]string, error) {
	var stamps []string
	_, err := p.store.Get(keyStamps, &stamps)
	return stamps, err
}

// HasStamp reports whether the place has been collected.
func (p *Passport) HasStamp(placeID string) (bool, error) {
	stamps, err := p.Stamps()
	if err != nil {
		return false, err
	}
	return slices.Contains(stamps, placeID), nil
}

// ResetStamps clears the stamp set and the queue. Scores are untouched.
func (p *Passport) ResetStamps() error {
	return p.store.Delete(keyStamps, keyQueue)
}
