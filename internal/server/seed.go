package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Adithya4code/Ambari/internal/ambari"
)

// SeedPlaces are the Mysuru heritage sites loaded on first start.
var SeedPlaces = []ambari.Place{
	{ID: "mysore_palace", Title: "Mysore Palace (Amba Vilas)", Latitude: 12.305199, Longitude: 76.654549, QRToken: "QR-MYSPAL-001", TagCode: "TAG-MYSPAL", BadgeURL: "https://example.com/badges/mysore-palace.png"},
	{ID: "jaganmohan_palace", Title: "Jaganmohan Palace (Art Gallery)", Latitude: 12.306544, Longitude: 76.650647, QRToken: "QR-JAGPAL-001", TagCode: "TAG-JAGPAL", BadgeURL: "https://example.com/badges/jaganmohan.png"},
	{ID: "lalitha_mahal", Title: "Lalitha Mahal Palace", Latitude: 12.3059, Longitude: 76.6498, QRToken: "QR-LALMAH-001", TagCode: "TAG-LALMAH", BadgeURL: "https://example.com/badges/lalitha-mahal.png"},
	{ID: "chamundeshwari_temple", Title: "Chamundeshwari Temple (Chamundi Hill)", Latitude: 12.303, Longitude: 76.655, QRToken: "QR-CHAMUN-001", TagCode: "TAG-CHAMUN", BadgeURL: "https://example.com/badges/chamundeshwari-temple.png"},
	{ID: "brindavan_gardens", Title: "Brindavan Gardens / KRS Dam", Latitude: 12.42472, Longitude: 76.57222, QRToken: "QR-BRINDA-001", TagCode: "TAG-BRINDA", BadgeURL: "https://example.com/badges/brindavan-gardens.png"},
	{ID: "mysore_zoo", Title: "Mysore Zoo", Latitude: 12.3008, Longitude: 76.6677, QRToken: "QR-ZOO-001", TagCode: "TAG-ZOO", BadgeURL: "https://example.com/badges/mysore-zoo.png"},
	{ID: "karanji_lake", Title: "Karanji Lake (Nature Park)", Latitude: 12.303, Longitude: 76.662, QRToken: "QR-KARLAK-001", TagCode: "TAG-KARLAK", BadgeURL: "https://example.com/badges/karanji-lake.png"},
	{ID: "srirangapatna", Title: "Srirangapatna (Fort / Temples)", Latitude: 12.4193, Longitude: 76.6938, QRToken: "QR-SRIRAN-001", TagCode: "TAG-SRIRAN", BadgeURL: "https://example.com/badges/srirangapatna.png"},
	{ID: "somnathpur", Title: "Somnathpur Chennakeshava Temple", Latitude: 12.272083, Longitude: 76.875731, QRToken: "QR-SOMNAT-001", TagCode: "TAG-SOMNAT", BadgeURL: "https://example.com/badges/somnathpur.png"},
	{ID: "rail_museum", Title: "Rail Museum, Mysuru", Latitude: 12.3163, Longitude: 76.6444, QRToken: "QR-RAILMU-001", TagCode: "TAG-RAILMU", BadgeURL: "https://example.com/badges/rail-museum.png"},
	{ID: "devaraja_market", Title: "Devaraja Market", Latitude: 12.3108, Longitude: 76.651, QRToken: "QR-DEVMAK-001", TagCode: "TAG-DEVMAK", BadgeURL: "https://example.com/badges/devaraja-market.png"},
	{ID: "jayalakshmi_vilas", Title: "Jayalakshmi Vilas Mansion", Latitude: 12.31365, Longitude: 76.62232, QRToken: "QR-JAYVIL-001", TagCode: "TAG-JAYVIL", BadgeURL: "https://example.com/badges/jayalakshmi-vilas.png"},
	{ID: "seashell_museum", Title: "Kalashree / Seashell Museum", Latitude: 12.3056, Longitude: 76.6485, QRToken: "QR-SEASHE-001", TagCode: "TAG-SEASHE", BadgeURL: "https://example.com/badges/seashell-museum.png"},
	{ID: "sand_sculpture_museum", Title: "Mysore Sand Sculpture Museum", Latitude: 12.3096, Longitude: 76.6429, QRToken: "QR-SANDMU-001", TagCode: "TAG-SANDMU", BadgeURL: "https://example.com/badges/sand-sculpture-museum.png"},
}

// Seed loads the place registry and the default admin if missing.
// Idempotent: places are only inserted into an empty registry, the admin
// only when its email is absent. An empty password skips the admin.
func Seed(ctx context.Context, logger *slog.Logger, store *SQLiteStore, adminEmail, adminPassword string) error {
	var count int
	if err := store.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM places`).Scan(&count); err != nil {
		return fmt.Errorf("counting places: %w", err)
	}
	if count == 0 {
		for _, p := range SeedPlaces {
			_, err := store.db.ExecContext(ctx, `
				INSERT INTO places (id, title, latitude, longitude, qr_token, tag_code, badge_url, description)
				VALUES (?, ?, ?, ?, ?, NULLIF(?, ''), NULLIF(?, ''), NULLIF(?, ''))
			`, p.ID, p.Title, p.Latitude, p.Longitude, p.QRToken, p.TagCode, p.BadgeURL, p.Description)
			if err != nil {
				return fmt.Errorf("seeding place %q: %w", p.ID, err)
			}
		}
		logger.Info("seeded places", "count", len(SeedPlaces))
	}

	if adminPassword == "" {
		return nil
	}
	if err := store.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM admins WHERE email = ?`, adminEmail).Scan(&count); err != nil {
		return fmt.Errorf("counting admins: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing admin password: %w", err)
	}
	_, err = store.db.ExecContext(ctx, `
		INSERT INTO admins (id, email, password_hash) VALUES (?, ?, ?)
	`, uuid.NewString(), adminEmail, string(hash))
	if err != nil {
		return fmt.Errorf("seeding admin: %w", err)
	}
	logger.Info("seeded admin", "email", adminEmail)
	return nil
}
