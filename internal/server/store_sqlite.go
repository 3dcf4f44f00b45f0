package server

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Adithya4code/Ambari/internal/ambari"
)

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) ListPlaces(ctx context.Context) ([]ambari.Place, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, latitude, longitude, qr_token,
			COALESCE(tag_code, ''), COALESCE(badge_url, ''), COALESCE(description, '')
		FROM places
		ORDER BY title
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var places []ambari.Place
	for rows.Next() {
		var p ambari.Place
		if err := rows.Scan(&p.ID, &p.Title, &p.Latitude, &p.Longitude,
			&p.QRToken, &p.TagCode, &p.BadgeURL, &p.Description); err != nil {
			return nil, err
		}
		places = append(places, p)
	}
	return places, rows.Err()
}

func (s *SQLiteStore) PlaceByQRToken(ctx context.Context, placeID, qrToken string) (ambari.Place, error) {
	return s.placeBy(ctx, `
		SELECT id, title, latitude, longitude
		FROM places WHERE id = ? AND qr_token = ?
	`, placeID, qrToken)
}

func (s *SQLiteStore) PlaceByTagCode(ctx context.Context, placeID, tagCode string) (ambari.Place, error) {
	return s.placeBy(ctx, `
		SELECT id, title, latitude, longitude
		FROM places WHERE id = ? AND tag_code = ?
	`, placeID, tagCode)
}

func (s *SQLiteStore) placeBy(ctx context.Context, query, placeID, credential string) (ambari.Place, error) {
	var p ambari.Place
	err := s.db.QueryRowContext(ctx, query, placeID, credential).
		Scan(&p.ID, &p.Title, &p.Latitude, &p.Longitude)
	if errors.Is(err, sql.ErrNoRows) {
		return p, ErrNotFound
	}
	return p, err
}

func (s *SQLiteStore) RecordCheckin(ctx context.Context, placeID, token string, source ambari.Source) (ambari.CheckinRecord, error) {
	rec := ambari.CheckinRecord{
		ID:      uuid.NewString(),
		PlaceID: placeID,
		Token:   token,
		Source:  source,
	}
	var createdAt string
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO checkins (id, place_id, token, source)
		VALUES (?, ?, ?, ?)
		RETURNING created_at
	`, rec.ID, rec.PlaceID, rec.Token, string(rec.Source)).Scan(&createdAt)
	if err != nil {
		return ambari.CheckinRecord{}, err
	}
	rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
	return rec, nil
}

func (s *SQLiteStore) ListCheckins(ctx context.Context, limit int) ([]CheckinItem, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT c.id, c.place_id, p.title, c.source, c.created_at
		FROM checkins c
		JOIN places p ON p.id = c.place_id
		ORDER BY c.created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []CheckinItem{}
	for rows.Next() {
		var it CheckinItem
		if err := rows.Scan(&it.ID, &it.PlaceID, &it.PlaceTitle, &it.Source, &it.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (s *SQLiteStore) CheckinStats(ctx context.Context) ([]PlaceStats, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT p.id, p.title, COUNT(c.id), COALESCE(MAX(c.created_at), '')
		FROM places p
		LEFT JOIN checkins c ON c.place_id = p.id
		GROUP BY p.id, p.title
		ORDER BY COUNT(c.id) DESC, p.title
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := []PlaceStats{}
	for rows.Next() {
		var st PlaceStats
		if err := rows.Scan(&st.PlaceID, &st.Title, &st.Checkins, &st.LastCheckin); err != nil {
			return nil, err
		}
		stats = append(stats, st)
	}
	return stats, rows.Err()
}

func (s *SQLiteStore) AdminByEmail(ctx context.Context, email string) (string, string, error) {
	var adminID, passwordHash string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, password_hash FROM admins WHERE email = ?
	`, email).Scan(&adminID, &passwordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return "", "", ErrNotFound
	}
	return adminID, passwordHash, err
}

func (s *SQLiteStore) CreateAdminSession(ctx context.Context, adminID string) (string, error) {
	var sessionID string
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO admin_sessions (admin_id)
		VALUES (?)
		RETURNING id
	`, adminID).Scan(&sessionID)
	return sessionID, err
}

func (s *SQLiteStore) DeleteAdminSession(ctx context.Context, sessionID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM admin_sessions WHERE id = ?`, sessionID)
	return err
}

func (s *SQLiteStore) AdminFromSession(ctx context.Context, sessionID string) (adminSession, error) {
	var sess adminSession
	err := s.db.QueryRowContext(ctx, `
		SELECT a.id, a.email
		FROM admin_sessions s
		JOIN admins a ON a.id = s.admin_id
		WHERE s.id = ?
	`, sessionID).Scan(&sess.AdminID, &sess.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return adminSession{}, errNoAdminSession
	}
	return sess, err
}
