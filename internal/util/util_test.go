package util

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGetBytes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			_, _ = w.Write([]byte(`{"joy":"#FFD700"}`))
		case "/big":
			_, _ = w.Write([]byte(strings.Repeat("x", MaxBodyBytes+10)))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	b, err := GetBytes(context.Background(), srv.URL+"/ok")
	if err != nil || string(b) != `{"joy":"#FFD700"}` {
		t.Fatalf("GetBytes = %q, %v", b, err)
	}
	if _, err := GetBytes(context.Background(), srv.URL+"/missing"); err == nil {
		t.Error("expected error for 404")
	}
	if _, err := GetBytes(context.Background(), srv.URL+"/big"); err == nil {
		t.Error("expected error for oversized body")
	}
}

func TestStickerPathAndWriteFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out", "nested")
	p1, err := StickerPath(dir)
	if err != nil {
		t.Fatal(err)
	}
	p2, _ := StickerPath(dir)
	if p1 == p2 {
		t.Error("sticker paths should be unique")
	}
	if !strings.HasPrefix(filepath.Base(p1), "bubble_") || filepath.Ext(p1) != ".png" {
		t.Errorf("unexpected path %s", p1)
	}
	if err := WriteFile(p1, []byte("png")); err != nil {
		t.Fatal(err)
	}
	if b, err := os.ReadFile(p1); err != nil || string(b) != "png" {
		t.Fatalf("read back %q, %v", b, err)
	}
}
