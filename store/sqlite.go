// Package store сохраненные местоположения пользователей. Движок прогнозов
// только читает их; запись нужна CLI для заведения пользователей.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"agro-forecast/models"
)

var ErrUserNotFound = errors.New("пользователь не найден")

// LocationStore источник сохраненных координат пользователя
type LocationStore interface {
	UserLocation(ctx context.Context, userID string) (models.Location, error)
}

type SQLiteStore struct {
	db *sqlx.DB
}

const schema = `CREATE TABLE IF NOT EXISTS user_locations (
	user_id    TEXT PRIMARY KEY,
	latitude   REAL NOT NULL,
	longitude  REAL NOT NULL,
	address    TEXT NOT NULL DEFAULT '',
	updated_at TEXT NOT NULL
);`

// NewSQLite открывает (или создает) базу по пути и применяет схему
func NewSQLite(path string) (*SQLiteStore, error) {
	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия базы %s: %w", path, err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("ошибка применения схемы: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) UserLocation(ctx context.Context, userID string) (models.Location, error) {
	var loc models.Location
	err := s.db.GetContext(ctx, &loc,
		`SELECT latitude, longitude, address FROM user_locations WHERE user_id = ?`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Location{}, ErrUserNotFound
	}
	if err != nil {
		return models.Location{}, fmt.Errorf("ошибка чтения местоположения: %w", err)
	}
	return loc, nil
}

// SetUserLocation создает или обновляет местоположение пользователя
func (s *SQLiteStore) SetUserLocation(ctx context.Context, userID string, loc models.Location) error {
	_, err := s.db.NamedExecContext(ctx,
		`INSERT INTO user_locations (user_id, latitude, longitude, address, updated_at)
		 VALUES (:user_id, :latitude, :longitude, :address, :updated_at)
		 ON CONFLICT(user_id) DO UPDATE SET
		   latitude = excluded.latitude,
		   longitude = excluded.longitude,
		   address = excluded.address,
		   updated_at = excluded.updated_at`,
		map[string]any{
			"user_id":    userID,
			"latitude":   loc.Latitude,
			"longitude":  loc.Longitude,
			"address":    loc.Address,
			"updated_at": time.Now().UTC().Format(time.RFC3339),
		})
	if err != nil {
		return fmt.Errorf("ошибка сохранения местоположения: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
