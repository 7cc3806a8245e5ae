package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"agro-forecast/models"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLite(filepath.Join(t.TempDir(), "test_agro.db"))
	if err != nil {
		t.Fatalf("NewSQLite failed: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSetAndGetUserLocation(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	loc := models.Location{Latitude: 18.5204, Longitude: 73.8567, Address: "Pune"}
	if err := s.SetUserLocation(ctx, "farmer-1", loc); err != nil {
		t.Fatalf("SetUserLocation failed: %v", err)
	}

	got, err := s.UserLocation(ctx, "farmer-1")
	if err != nil {
		t.Fatalf("UserLocation failed: %v", err)
	}
	if got != loc {
		t.Errorf("expected %+v, got %+v", loc, got)
	}
}

func TestSetUserLocationOverwrites(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.SetUserLocation(ctx, "farmer-1", models.Location{Latitude: 1, Longitude: 2}); err != nil {
		t.Fatalf("SetUserLocation failed: %v", err)
	}
	moved := models.Location{Latitude: 26.9124, Longitude: 75.7873, Address: "Jaipur"}
	if err := s.SetUserLocation(ctx, "farmer-1", moved); err != nil {
		t.Fatalf("SetUserLocation failed: %v", err)
	}

	got, err := s.UserLocation(ctx, "farmer-1")
	if err != nil {
		t.Fatalf("UserLocation failed: %v", err)
	}
	if got != moved {
		t.Errorf("expected updated location %+v, got %+v", moved, got)
	}
}

func TestUserLocationNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.UserLocation(context.Background(), "nobody")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "persist.db")
	ctx := context.Background()

	s, err := NewSQLite(path)
	if err != nil {
		t.Fatalf("NewSQLite failed: %v", err)
	}
	if err := s.SetUserLocation(ctx, "farmer-2", models.Location{Latitude: 10, Longitude: 20}); err != nil {
		t.Fatalf("SetUserLocation failed: %v", err)
	}
	_ = s.Close()

	reopened, err := NewSQLite(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	if _, err := reopened.UserLocation(ctx, "farmer-2"); err != nil {
		t.Fatalf("expected saved location after reopen, got %v", err)
	}
}
