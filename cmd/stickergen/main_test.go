package main

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunRender(t *testing.T) {
	out := filepath.Join(t.TempDir(), "sticker.png")
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"render", "-out", out, "-emotion", "sadness", "-width", "240", "I miss you"}, &stdout, &stderr)
	if err != nil {
		t.Fatalf("render: %v (%s)", err, stderr.String())
	}
	if !strings.Contains(stdout.String(), "sadness") {
		t.Errorf("stdout = %q", stdout.String())
	}
	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 240 || b.Dy() != 150 {
		t.Errorf("size %v", b)
	}
}

func TestRunRenderRandomName(t *testing.T) {
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer
	if err := run(context.Background(), []string{"render", "-dir", dir, "-card", "so happy today"}, &stdout, &stderr); err != nil {
		t.Fatalf("render: %v", err)
	}
	matches, _ := filepath.Glob(filepath.Join(dir, "bubble_*.png"))
	if len(matches) != 1 {
		t.Fatalf("files = %v", matches)
	}
}

func TestRunRenderCardLinksToSameSticker(t *testing.T) {
	t.Setenv("PUBLIC_BASE_URL", "https://stickers.example/")
	out := filepath.Join(t.TempDir(), "card.png")
	var stdout, stderr bytes.Buffer
	args := []string{"render", "-out", out, "-card", "-emotion", "joy", "-width", "280", "-height", "140", "so happy & free"}
	if err := run(context.Background(), args, &stdout, &stderr); err != nil {
		t.Fatalf("render: %v (%s)", err, stderr.String())
	}
	want := "share: https://stickers.example/api/bubble.png?emotion=joy&height=140&text=so+happy+%26+free&width=280"
	if !strings.Contains(stdout.String(), want) {
		t.Errorf("stdout = %q, want line %q", stdout.String(), want)
	}
}

func TestRunRenderErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run(context.Background(), []string{"render"}, &stdout, &stderr); err == nil {
		t.Error("expected error without text")
	}
	if err := run(context.Background(), []string{"render", "-width", "10", "-height", "10", "-out", filepath.Join(t.TempDir(), "x.png"), "hi"}, &stdout, &stderr); err == nil {
		t.Error("expected degenerate geometry error")
	}
}

func TestRunEmotions(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run(context.Background(), []string{"emotions", "-priority", "-category", "positive"}, &stdout, &stderr); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	if len(lines) < 2 || !strings.HasPrefix(lines[1], "love") {
		t.Fatalf("output:\n%s", stdout.String())
	}
	if strings.Contains(stdout.String(), "anger") {
		t.Error("negative emotion listed under positive filter")
	}
}

func TestRunEmotionsFormats(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run(context.Background(), []string{"emotions", "-format", "json"}, &stdout, &stderr); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout.String(), `"emotion_colors"`) {
		t.Errorf("json output:\n%s", stdout.String())
	}
	stdout.Reset()
	if err := run(context.Background(), []string{"emotions", "-format", "text"}, &stdout, &stderr); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout.String(), "joy #") {
		t.Errorf("text output:\n%s", stdout.String())
	}
	if err := run(context.Background(), []string{"emotions", "-format", "xml"}, &stdout, &stderr); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestRunEmotionsUsesOverrideSources(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colors.csv")
	if err := os.WriteFile(path, []byte("emotion,hex\njoy,#010203\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PALETTE_OVERRIDE_FILE", path)
	var stdout, stderr bytes.Buffer
	if err := run(context.Background(), []string{"emotions", "-format", "text"}, &stdout, &stderr); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout.String(), "joy #010203") {
		t.Errorf("override not applied:\n%s", stdout.String())
	}
}

func TestRunDeletePaletteErrors(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	var stdout, stderr bytes.Buffer
	if err := run(context.Background(), []string{"delete-palette"}, &stdout, &stderr); err == nil {
		t.Error("expected error without emotion")
	}
	if err := run(context.Background(), []string{"delete-palette", "joy"}, &stdout, &stderr); err == nil {
		t.Error("expected error without DATABASE_URL")
	}
}

func TestRunMisc(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run(context.Background(), []string{"version"}, &stdout, &stderr); err != nil || strings.TrimSpace(stdout.String()) != version {
		t.Errorf("version = %q, %v", stdout.String(), err)
	}
	if err := run(context.Background(), nil, &stdout, &stderr); err == nil {
		t.Error("expected error without command")
	}
	if err := run(context.Background(), []string{"bogus"}, &stdout, &stderr); err == nil {
		t.Error("expected error for unknown command")
	}
	t.Setenv("DATABASE_URL", "")
	if err := run(context.Background(), []string{"migrate"}, &stdout, &stderr); err == nil {
		t.Error("expected error without DATABASE_URL")
	}
}
