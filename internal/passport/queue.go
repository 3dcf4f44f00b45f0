package passport

import (
	"context"
	"fmt"

	"github.com/Adithya4code/Ambari/internal/ambari"
)

// Syncer pushes one queued check-in to the backend. Implemented by the API
// client; tests substitute fakes.
type Syncer interface {
	SyncCheckin(ctx context.Context, item ambari.QueuedCheckin) error
}

// Report summarizes one queue-processing pass.
type Report struct {
	Synced int
	Failed int
}

// Queue returns the offline queue in insertion order.
func (p *Passport) Queue() ([]ambari.QueuedCheckin, error) {
	var queue []ambari.QueuedCheckin
	_, err := p.store.Get(keyQueue, &queue)
	return queue, err
}

// ProcessQueue replays every item whose status is not synced against the
// backend, in insertion order. Success marks the item synced, failure marks
// it failed; failed items are picked up again on the next pass. The queue
// is persisted after each item, so an interrupted run leaves earlier items
// synced and later ones untouched: re-running is idempotent per item.
func (p *Passport) ProcessQueue(ctx context.Context, s Syncer) (Report, error) {
	var report Report

	queue, err := p.Queue()
	if err != nil {
		return report, fmt.Errorf("loading queue: %w", err)
	}

	for i := range queue {
		if queue[i].Status == ambari.QueueStatusSynced {
			continue
		}
		if err := s.SyncCheckin(ctx, queue[i]); err != nil {
			p.log.Warn("sync failed", "id", queue[i].ID, "place_id", queue[i].PlaceID, "error", err)
			queue[i].Status = ambari.QueueStatusFailed
			report.Failed++
		} else {
			queue[i].Status = ambari.QueueStatusSynced
			report.Synced++
		}
		if err := p.store.Set(keyQueue, queue); err != nil {
			return report, fmt.Errorf("saving queue: %w", err)
		}
	}
	return report, nil
}
