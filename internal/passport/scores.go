package passport

import (
	"fmt"
	"time"

	"github.com/Adithya4code/Ambari/internal/ambari"
)

// DiscountValidity is how long a quiz-earned discount stays redeemable.
const DiscountValidity = 7 * 24 * time.Hour

// SaveQuizResult appends the result to the results log, adds its points to
// the running total, and upserts the place's active discount.
func (p *Passport) SaveQuizResult(res ambari.QuizResult) error {
	var results []ambari.QuizResult
	if _, err := p.store.Get(keyQuizResults, &results); err != nil {
		return fmt.Errorf("loading quiz results: %w", err)
	}
	results = append(results, res)
	if err := p.store.Set(keyQuizResults, results); err != nil {
		return fmt.Errorf("saving quiz results: %w", err)
	}

	if err := p.AddPoints(res.PointsEarned); err != nil {
		return err
	}
	return p.upsertDiscount(res.PlaceID, res.DiscountPercentage)
}

// QuizResults returns the append-only results log.
func (p *Passport) QuizResults() ([]ambari.QuizResult, error) {
	var results []ambari.QuizResult
	_, err := p.store.Get(keyQuizResults, &results)
	return results, err
}

// TotalPoints returns the accumulated points counter.
func (p *Passport) TotalPoints() (int, error) {
	var points int
	_, err := p.store.Get(keyTotalPoints, &points)
	return points, err
}

// AddPoints increments the points counter.
func (p *Passport) AddPoints(points int) error {
	current, err := p.TotalPoints()
	if err != nil {
		return fmt.Errorf("loading points: %w", err)
	}
	if err := p.store.Set(keyTotalPoints, current+points); err != nil {
		return fmt.Errorf("saving points: %w", err)
	}
	return nil
}

// upsertDiscount keeps at most one discount per place: a higher percentage
// replaces the stored one and refreshes the expiry, a lower or equal one
// leaves the stored entry unchanged.
func (p *Passport) upsertDiscount(placeID string, pct int) error {
	var discounts []ambari.ActiveDiscount
	if _, err := p.store.Get(keyDiscounts, &discounts); err != nil {
		return fmt.Errorf("loading discounts: %w", err)
	}

	expiry := p.now().Add(DiscountValidity)
	found := false
	for i := range discounts {
		if discounts[i].PlaceID != placeID {
			continue
		}
		found = true
		if discounts[i].DiscountPercentage < pct {
			discounts[i].DiscountPercentage = pct
			discounts[i].ExpiresAt = expiry
		}
		break
	}
	if !found {
		discounts = append(discounts, ambari.ActiveDiscount{
			PlaceID:            placeID,
			DiscountPercentage: pct,
			ExpiresAt:          expiry,
		})
	}
	return p.store.Set(keyDiscounts, discounts)
}

// ActiveDiscounts returns unexpired discounts, pruning expired entries from
// storage when any were filtered out.
func (p *Passport) ActiveDiscounts() ([]ambari.ActiveDiscount, error) {
	var discounts []ambari.ActiveDiscount
	if _, err := p.store.Get(keyDiscounts, &discounts); err != nil {
		return nil, err
	}

	now := p.now()
	active := discounts[:0:0]
	for _, d := range discounts {
		if !d.Expired(now) {
			active = append(active, d)
		}
	}
	if len(active) < len(discounts) {
		if err := p.store.Set(keyDiscounts, active); err != nil {
			return nil, err
		}
	}
	return active, nil
}

// DiscountFor returns the place's active discount, or nil if none.
func (p *Passport) DiscountFor(placeID string) (*ambari.ActiveDiscount, error) {
	active, err := p.ActiveDiscounts()
	if err != nil {
		return nil, err
	}
	for i := range active {
		if active[i].PlaceID == placeID {
			return &active[i], nil
		}
	}
	return nil, nil
}

// UseDiscount consumes the place's discount, deleting it from the store.
// Returns false when no discount existed for the place.
func (p *Passport) UseDiscount(placeID string) (bool, error) {
	var discounts []ambari.ActiveDiscount
	if _, err := p.store.Get(keyDiscounts, &discounts); err != nil {
		return false, err
	}
	for i := range discounts {
		if discounts[i].PlaceID == placeID {
			discounts = append(discounts[:i], discounts[i+1:]...)
			return true, p.store.Set(keyDiscounts, discounts)
		}
	}
	return false, nil
}

// ResetScores clears the points counter, the results log, and all
// discounts. Stamps and the queue are untouched.
func (p *Passport) ResetScores() error {
	return p.store.Delete(keyTotalPoints, keyQuizResults, keyDiscounts)
}
