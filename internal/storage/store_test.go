package storage

import (
	"context"
	"os"
	"testing"

	"github.com/youruser/bubblesticker/internal/palette"
)

// openTestStore connects to TEST_DATABASE_URL and skips when it is unset.
func openTestStore(t *testing.T) *Store {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	s, err := Open(context.Background(), url)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(s.Close)
	if err := s.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return s
}

func TestStoreSaveAndDeleteOverride(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	t.Cleanup(func() {
		_ = s.DeleteOverride(ctx, "joy")
		_ = s.DeleteOverride(ctx, "anger")
	})

	n, err := s.SaveOverrides(ctx,
		palette.NewOverride("joy", 1, 2, 3),
		palette.NewOverride("anger", 200, 0, 0),
	)
	if err != nil || n != 2 {
		t.Fatalf("SaveOverrides = %d, %v", n, err)
	}
	if err := s.DeleteOverride(ctx, "  JOY "); err != nil {
		t.Fatalf("DeleteOverride: %v", err)
	}
	entries, err := s.Overrides(ctx)
	if err != nil {
		t.Fatal(err)
	}
	var sawJoy, sawAnger bool
	for _, e := range entries {
		switch e.Emotion {
		case "joy":
			sawJoy = true
		case "anger":
			sawAnger = true
		}
	}
	if sawJoy || !sawAnger {
		t.Errorf("after delete: joy=%v anger=%v", sawJoy, sawAnger)
	}
	if err := s.DeleteOverride(ctx, "joy"); err != nil {
		t.Errorf("deleting a missing row: %v", err)
	}
}
