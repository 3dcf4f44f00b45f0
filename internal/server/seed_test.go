package server

import (
	"context"
	"testing"

	"github.com/Adithya4code/Ambari/internal/database"
	"github.com/Adithya4code/Ambari/internal/migrations"
)

func TestSeedIdempotent(t *testing.T) {
	ctx := context.Background()
	db, err := database.Open(ctx, ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()
	if err := migrations.Run(db); err != nil {
		t.Fatalf("migrations: %v", err)
	}
	store := NewSQLiteStore(db)

	for i := 0; i < 2; i++ {
		if err := Seed(ctx, discardLogger(), store, "admin@ambari.local", "secret123"); err != nil {
			t.Fatalf("seed run %d: %v", i+1, err)
		}
	}

	places, err := store.ListPlaces(ctx)
	if err != nil {
		t.Fatalf("list places: %v", err)
	}
	if len(places) != len(SeedPlaces) {
		t.Errorf("places = %d, want %d", len(places), len(SeedPlaces))
	}

	var admins int
	if err := db.QueryRow(`SELECT COUNT(*) FROM admins`).Scan(&admins); err != nil {
		t.Fatal(err)
	}
	if admins != 1 {
		t.Errorf("admins = %d, want 1", admins)
	}
}

func TestSeedSkipsAdminWithoutPassword(t *testing.T) {
	ctx := context.Background()
	db, err := database.Open(ctx, ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()
	if err := migrations.Run(db); err != nil {
		t.Fatalf("migrations: %v", err)
	}
	store := NewSQLiteStore(db)

	if err := Seed(ctx, discardLogger(), store, "admin@ambari.local", ""); err != nil {
		t.Fatalf("seed: %v", err)
	}

	var admins int
	if err := db.QueryRow(`SELECT COUNT(*) FROM admins`).Scan(&admins); err != nil {
		t.Fatal(err)
	}
	if admins != 0 {
		t.Errorf("admins = %d, want 0", admins)
	}
}
