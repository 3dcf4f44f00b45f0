// Package ambari defines the core domain types for the heritage
// stamp-collection app. It has zero external dependencies: everything here
// is pure Go.
package ambari

import "time"

// Place is one entry in the read-only place registry. The registry is
// seeded at startup and never mutated at runtime.
type Place struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	QRToken     string  `json:"qrToken,omitempty"`
	TagCode     string  `json:"tagCode,omitempty"`
	BadgeURL    string  `json:"badgeUrl,omitempty"`
	Description string  `json:"description,omitempty"`
}

// Source identifies which validation entry point produced a check-in.
type Source string

const (
	SourceQR  Source = "qr"
	SourceTag Source = "tag"
)

// CheckinRecord is one row of the server's append-only check-in log.
// Records are never mutated after insert.
type CheckinRecord struct {
	ID        string    `json:"id"`
	PlaceID   string    `json:"placeId"`
	Token     string    `json:"token"`
	Source    Source    `json:"source"`
	CreatedAt time.Time `json:"createdAt"`
}

// QueueStatus is the lifecycle state of a client-side queued check-in.
// Only the sync queue processor transitions it.
type QueueStatus string

const (
	QueueStatusQueued QueueStatus = "queued"
	QueueStatusSynced QueueStatus = "synced"
	QueueStatusFailed QueueStatus = "failed"
)

// QueuedCheckin is one entry of the client's offline sync queue. Items are
// appended on check-in and replayed against the backend later; they are
// never deleted automatically, even on failure.
type QueuedCheckin struct {
	ID         string      `json:"id"`
	PlaceID    string      `json:"locationId"`
	Token      string      `json:"token,omitempty"`
	EnqueuedAt time.Time   `json:"enqueuedAt"`
	Status     QueueStatus `json:"status"`
}

// QuizQuestion is a single multiple-choice question. Options always holds
// exactly four entries and CorrectIndex is in [0,3]. The JSON field names
// match the generation API's structured response format.
type QuizQuestion struct {
	Prompt       string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctAnswerIndex"`
}

// QuizResult is the immutable outcome of one completed quiz. Appended to
// the client's results log; its points and discount feed the running totals.
type QuizResult struct {
	PlaceID            string    `json:"locationId"`
	TotalQuestions     int       `json:"totalQuestions"`
	CorrectAnswers     int       `json:"correctAnswers"`
	PointsEarned       int       `json:"pointsEarned"`
	DiscountPercentage int       `json:"discountPercentage"`
	CompletedAt        time.Time `json:"completedAt"`
}

// ActiveDiscount is a redeemable discount earned from a quiz. At most one
// exists per place; a better result replaces it, a worse one leaves it
// untouched. Expired discounts are treated as absent.
type ActiveDiscount struct {
	PlaceID            string    `json:"locationId"`
	DiscountPercentage int       `json:"discountPercentage"`
	ExpiresAt          time.Time `json:"expiresAt"`
}

// Expired reports whether the discount is past its expiry at the given time.
func (d ActiveDiscount) Expired(now time.Time) bool {
	return !d.ExpiresAt.After(now)
}
