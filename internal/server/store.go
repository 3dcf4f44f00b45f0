package server

import (
	"context"
	"errors"

	"github.com/Adithya4code/Ambari/internal/ambari"
)

var ErrNotFound = errors.New("not found")

// CheckinItem is one row of the admin check-in listing, with the place
// title joined in.
type CheckinItem struct {
	ID         string `json:"id"`
	PlaceID    string `json:"placeId"`
	PlaceTitle string `json:"placeTitle"`
	Source     string `json:"source"`
	CreatedAt  string `json:"createdAt"`
}

// PlaceStats aggregates the check-in log per place.
type PlaceStats struct {
	PlaceID     string `json:"placeId"`
	Title       string `json:"title"`
	Checkins    int    `json:"checkins"`
	LastCheckin string `json:"lastCheckin,omitempty"`
}

type Store interface {
	ListPlaces(ctx context.Context) ([]ambari.Place, error)

	// PlaceByQRToken and PlaceByTagCode resolve a place only when both the
	// id and the supplied credential match; ErrNotFound otherwise. The two
	// lookups are independent: a QR token never matches on the tag path.
	PlaceByQRToken(ctx context.Context, placeID, qrToken string) (ambari.Place, error)
	PlaceByTagCode(ctx context.Context, placeID, tagCode string) (ambari.Place, error)

	RecordCheckin(ctx context.Context, placeID, token string, source ambari.Source) (ambari.CheckinRecord, error)
	ListCheckins(ctx context.Context, limit int) ([]CheckinItem, error)
	CheckinStats(ctx context.Context) ([]PlaceStats, error)

	AdminByEmail(ctx context.Context, email string) (adminID, passwordHash string, err error)
	CreateAdminSession(ctx context.Context, adminID string) (sessionID string, err error)
	DeleteAdminSession(ctx context.Context, sessionID string) error
	AdminFromSession(ctx context.Context, sessionID string) (adminSession, error)
}
