// Package storage keeps palette overrides in PostgreSQL.
package storage

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/youruser/bubblesticker/internal/emotion"
	"github.com/youruser/bubblesticker/internal/palette"
)

// paletteColor maps to the palette_colors table. Channels are 0-255.
type paletteColor struct {
	Emotion   string `gorm:"primaryKey;size:64"`
	Red       float64
	Green     float64
	Blue      float64
	UpdatedAt time.Time
}

func (paletteColor) TableName() string {
	return "palette_colors"
}

func (m paletteColor) entry() palette.OverrideEntry {
	return palette.NewOverride(m.Emotion, m.Red, m.Green, m.Blue)
}

// Store holds the database handle.
type Store struct {
	db *gorm.DB
}

// Open connects to PostgreSQL and checks the connection.
func Open(ctx context.Context, databaseURL string) (*Store, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &Store{db: db}, nil
}

// Migrate creates or updates the palette_colors table.
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&paletteColor{}); err != nil {
		return fmt.Errorf("migrate palette_colors: %w", err)
	}
	return nil
}

// Overrides returns every stored row as an override entry, ordered by emotion.
func (s *Store) Overrides(ctx context.Context) ([]palette.OverrideEntry, error) {
	var rows []paletteColor
	if err := s.db.WithContext(ctx).Order("emotion").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load palette overrides: %w", err)
	}
	out := make([]palette.OverrideEntry, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.entry())
	}
	return out, nil
}

// SaveOverrides validates and upserts entries. It returns how many were written;
// invalid entries are returned as a joined error but do not stop valid ones.
func (s *Store) SaveOverrides(ctx context.Context, entries ...palette.OverrideEntry) (int, error) {
	rows, skipped := toRows(entries, time.Now())
	if len(rows) > 0 {
		err := s.db.WithContext(ctx).
			Clauses(clause.OnConflict{UpdateAll: true}).
			Create(&rows).Error
		if err != nil {
			return 0, fmt.Errorf("failed to save palette overrides: %w", err)
		}
	}
	return len(rows), skipped
}

// DeleteOverride removes the stored color for name.
func (s *Store) DeleteOverride(ctx context.Context, name string) error {
	label := emotion.Normalize(name)
	if err := s.db.WithContext(ctx).Delete(&paletteColor{}, "emotion = ?", string(label)).Error; err != nil {
		return fmt.Errorf("failed to delete palette override %s: %w", label, err)
	}
	return nil
}

// Close releases the connection pool.
func (s *Store) Close() {
	if s == nil || s.db == nil {
		return
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return
	}
	_ = sqlDB.Close()
}
