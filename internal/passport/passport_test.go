package passport

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/Adithya4code/Ambari/internal/ambari"
)

func testPassport(t *testing.T) *Passport {
	t.Helper()
	store, err := NewFileStore(filepath.Join(t.TempDir(), "passport.json"))
	if err != nil {
		t.Fatalf("creating store: %v", err)
	}
	return New(store, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCheckInIdempotentOnStamps(t *testing.T) {
	p := testPassport(t)

	if item := p.CheckIn("mysore_palace", "QR-MYSPAL-001"); item == nil {
		t.Fatal("first check-in returned nil item")
	}
	if item := p.CheckIn("mysore_palace", "QR-MYSPAL-001"); item == nil {
		t.Fatal("second check-in returned nil item")
	}

	stamps, err := p.Stamps()
	if err != nil {
		t.Fatalf("stamps: %v", err)
	}
	if len(stamps) != 1 || stamps[0] != "mysore_palace" {
		t.Errorf("stamps = %v, want exactly one mysore_palace", stamps)
	}

	// The queue is append-only: both check-ins are recorded.
	queue, err := p.Queue()
	if err != nil {
		t.Fatalf("queue: %v", err)
	}
	if len(queue) != 2 {
		t.Fatalf("queue length = %d, want 2", len(queue))
	}
	for _, item := range queue {
		if item.Status != ambari.QueueStatusQueued {
			t.Errorf("item %s status = %q, want queued", item.ID, item.Status)
		}
		if item.ID == "" {
			t.Error("item has empty id")
		}
	}
	if queue[0].ID == queue[1].ID {
		t.Error("queue items share an id")
	}
}

func TestHasStampAndReset(t *testing.T) {
	p := testPassport(t)
	p.CheckIn("mysore_zoo", "QR-ZOO-001")

	if ok, _ := p.HasStamp("mysore_zoo"); !ok {
		t.Error("expected stamp for mysore_zoo")
	}
	if ok, _ := p.HasStamp("rail_museum"); ok {
		t.Error("unexpected stamp for rail_museum")
	}

	// Reset clears stamps and queue but not scores.
	if err := p.AddPoints(50); err != nil {
		t.Fatalf("add points: %v", err)
	}
	if err := p.ResetStamps(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if stamps, _ := p.Stamps(); len(stamps) != 0 {
		t.Errorf("stamps after reset = %v", stamps)
	}
	if queue, _ := p.Queue(); len(queue) != 0 {
		t.Errorf("queue after reset = %v", queue)
	}
	if points, _ := p.TotalPoints(); points != 50 {
		t.Errorf("points after stamp reset = %d, want 50", points)
	}
}

type fakeSyncer struct {
	fail  map[string]bool // place ids that fail
	calls []string
}

func (f *fakeSyncer) SyncCheckin(_ context.Context, item ambari.QueuedCheckin) error {
	f.calls = append(f.calls, item.PlaceID)
	if f.fail[item.PlaceID] {
		return errors.New("backend unreachable")
	}
	return nil
}

func TestProcessQueue(t *testing.T) {
	p := testPassport(t)
	p.CheckIn("a", "t1")
	p.CheckIn("b", "t2")
	p.CheckIn("c", "t3")

	s := &fakeSyncer{fail: map[string]bool{"b": true}}
	report, err := p.ProcessQueue(context.Background(), s)
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if report.Synced != 2 || report.Failed != 1 {
		t.Fatalf("report = %+v, want 2 synced 1 failed", report)
	}
	if len(s.calls) != 3 || s.calls[0] != "a" || s.calls[2] != "c" {
		t.Errorf("calls = %v, want insertion order a b c", s.calls)
	}

	queue, _ := p.Queue()
	wantStatus := []ambari.QueueStatus{
		ambari.QueueStatusSynced,
		ambari.QueueStatusFailed,
		ambari.QueueStatusSynced,
	}
	for i, item := range queue {
		if item.Status != wantStatus[i] {
			t.Errorf("item %d status = %q, want %q", i, item.Status, wantStatus[i])
		}
	}

	// Second pass retries only the failed item.
	s2 := &fakeSyncer{}
	report, err = p.ProcessQueue(context.Background(), s2)
	if err != nil {
		t.Fatalf("second pass: %v", err)
	}
	if report.Synced != 1 || report.Failed != 0 {
		t.Errorf("second report = %+v, want 1 synced", report)
	}
	if len(s2.calls) != 1 || s2.calls[0] != "b" {
		t.Errorf("second pass calls = %v, want [b]", s2.calls)
	}
}

func TestProcessQueueEmptyAndFullySynced(t *testing.T) {
	p := testPassport(t)

	s := &fakeSyncer{}
	report, err := p.ProcessQueue(context.Background(), s)
	if err != nil {
		t.Fatalf("process empty: %v", err)
	}
	if report.Synced != 0 || report.Failed != 0 || len(s.calls) != 0 {
		t.Errorf("empty queue report = %+v calls = %v", report, s.calls)
	}

	p.CheckIn("a", "t")
	if _, err := p.ProcessQueue(context.Background(), s); err != nil {
		t.Fatal(err)
	}
	s.calls = nil

	report, err = p.ProcessQueue(context.Background(), s)
	if err != nil {
		t.Fatal(err)
	}
	if report.Synced != 0 || report.Failed != 0 || len(s.calls) != 0 {
		t.Errorf("fully-synced rerun report = %+v calls = %v", report, s.calls)
	}
}

func TestSaveQuizResultAccumulates(t *testing.T) {
	p := testPassport(t)
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return now }

	res := ambari.QuizResult{
		PlaceID:            "mysore_palace",
		TotalQuestions:     10,
		CorrectAnswers:     9,
		PointsEarned:       90,
		DiscountPercentage: 25,
		CompletedAt:        now,
	}
	if err := p.SaveQuizResult(res); err != nil {
		t.Fatalf("save: %v", err)
	}

	if points, _ := p.TotalPoints(); points != 90 {
		t.Errorf("points = %d, want 90", points)
	}
	results, _ := p.QuizResults()
	if len(results) != 1 || results[0].PlaceID != "mysore_palace" {
		t.Errorf("results = %+v", results)
	}
	d, err := p.DiscountFor("mysore_palace")
	if err != nil || d == nil {
		t.Fatalf("discount: %v %v", d, err)
	}
	if d.DiscountPercentage != 25 {
		t.Errorf("discount pct = %d, want 25", d.DiscountPercentage)
	}
	if want := now.Add(DiscountValidity); !d.ExpiresAt.Equal(want) {
		t.Errorf("expiry = %v, want %v", d.ExpiresAt, want)
	}
}

func TestDiscountUpsertKeepsLarger(t *testing.T) {
	p := testPassport(t)
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return now }

	if err := p.upsertDiscount("zoo", 10); err != nil {
		t.Fatal(err)
	}
	firstExpiry := now.Add(DiscountValidity)

	// Higher percentage replaces and refreshes expiry.
	now = now.Add(24 * time.Hour)
	if err := p.upsertDiscount("zoo", 15); err != nil {
		t.Fatal(err)
	}
	d, _ := p.DiscountFor("zoo")
	if d.DiscountPercentage != 15 {
		t.Errorf("pct = %d, want 15", d.DiscountPercentage)
	}
	if !d.ExpiresAt.After(firstExpiry) {
		t.Errorf("expiry not extended: %v", d.ExpiresAt)
	}
	secondExpiry := d.ExpiresAt

	// Lower percentage leaves the stored entry unchanged.
	now = now.Add(24 * time.Hour)
	if err := p.upsertDiscount("zoo", 5); err != nil {
		t.Fatal(err)
	}
	d, _ = p.DiscountFor("zoo")
	if d.DiscountPercentage != 15 || !d.ExpiresAt.Equal(secondExpiry) {
		t.Errorf("discount changed by lower upsert: %+v", d)
	}
}

func TestExpiredDiscountsFilteredAndUse(t *testing.T) {
	p := testPassport(t)
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return now }

	p.upsertDiscount("a", 10)
	p.upsertDiscount("b", 25)

	// Jump past expiry of both, then renew b.
	now = now.Add(DiscountValidity + time.Hour)
	p.upsertDiscount("b", 25) // equal pct: no refresh, so b stays expired too

	active, err := p.ActiveDiscounts()
	if err != nil {
		t.Fatal(err)
	}
	if len(active) != 0 {
		t.Errorf("active = %+v, want none", active)
	}

	// Use consumes; a second use finds nothing.
	p.upsertDiscount("c", 15)
	used, err := p.UseDiscount("c")
	if err != nil || !used {
		t.Fatalf("use = %v, %v", used, err)
	}
	used, err = p.UseDiscount("c")
	if err != nil || used {
		t.Errorf("second use = %v, want false", used)
	}
}

func TestResetScores(t *testing.T) {
	p := testPassport(t)
	p.CheckIn("a", "t")
	p.AddPoints(40)
	p.upsertDiscount("a", 10)

	if err := p.ResetScores(); err != nil {
		t.Fatal(err)
	}
	if points, _ := p.TotalPoints(); points != 0 {
		t.Errorf("points = %d", points)
	}
	if active, _ := p.ActiveDiscounts(); len(active) != 0 {
		t.Errorf("discounts = %+v", active)
	}
	if stamps, _ := p.Stamps(); len(stamps) != 1 {
		t.Errorf("stamps cleared by score reset: %v", stamps)
	}
}
