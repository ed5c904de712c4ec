package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestLoadPNGErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := loadPNG(filepath.Join(dir, "missing.png")); !os.IsNotExist(err) {
		t.Fatalf("expected not-exist error, got %v", err)
	}

	bad := filepath.Join(dir, "player_sheet.png")
	if err := os.WriteFile(bad, []byte("not a png"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := loadPNG(bad)
	if err == nil || !strings.Contains(err.Error(), "decode art") {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestLoadImagesReplacesArtSet(t *testing.T) {
	art = map[string]*ebiten.Image{"stale": nil}
	if errs := LoadImages(map[string]*ebiten.Image{"": nil, "empty": nil}, t.TempDir()); len(errs) != 0 {
		t.Fatalf("unexpected errors %v", errs)
	}
	if len(art) != 0 {
		t.Fatalf("expected keys without images to be skipped and old art dropped, got %d entries", len(art))
	}
	if Image("stale") != nil {
		t.Fatalf("stale art survived a reload")
	}
}
