package prefabs

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultSettings(t *testing.T) {
	s, err := DefaultSettings()
	if err != nil {
		t.Fatalf("default settings: %v", err)
	}
	if err := s.Validate(); err != nil {
		t.Fatalf("embedded settings should validate: %v", err)
	}

	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"player speed", s.Player.Speed, 160},
		{"jump velocity", s.Player.JumpVelocity, -230},
		{"gravity", s.World.Gravity, 300},
		{"scroll threshold", s.Scroll.Threshold(s.Screen.Width), 240},
		{"pool size", float64(s.Collectibles.PoolSize), 5},
		{"total needed", float64(s.Collectibles.TotalNeeded), 10},
		{"bar x", s.ProgressBar.X(s.Screen.Width), 960/2 - 142 + 38},
	}
	for _, c := range checks {
		t.Run(c.name, func(t *testing.T) {
			if c.got != c.want {
				t.Fatalf("got %v, want %v", c.got, c.want)
			}
		})
	}

	if !s.Player.DownBoost {
		t.Fatalf("down boost should default to on")
	}
	if want := (color.RGBA{R: 0xD9, G: 0x45, B: 0x3C, A: 0xFF}); s.ProgressBar.Color.RGBA != want {
		t.Fatalf("bar color = %v, want %v", s.ProgressBar.Color.RGBA, want)
	}
	w, h := s.Enemies.ColliderSize()
	if w != s.Enemies.SpriteWidth*0.4 || h != s.Enemies.SpriteHeight*0.4+20 {
		t.Fatalf("unexpected enemy collider %vx%v", w, h)
	}
}

func TestLoadSettingsOverride(t *testing.T) {
	dir := t.TempDir()

	write := func(t *testing.T, body string) string {
		t.Helper()
		p := filepath.Join(dir, t.Name()+".yaml")
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
		return p
	}

	t.Run("partial override keeps defaults", func(t *testing.T) {
		p := write(t, "player:\n  speed: 200\n  down_boost: false\n")
		s, err := LoadSettings(p)
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if s.Player.Speed != 200 || s.Player.DownBoost {
			t.Fatalf("override not applied: %+v", s.Player)
		}
		if s.Player.JumpVelocity != -230 || s.Collectibles.PoolSize != 5 {
			t.Fatalf("defaults lost: %+v", s)
		}
	})

	t.Run("invalid override falls back", func(t *testing.T) {
		p := write(t, "collectibles:\n  pool_size: 0\n")
		s, err := LoadSettings(p)
		if !errors.Is(err, ErrInvalidSettings) {
			t.Fatalf("expected ErrInvalidSettings, got %v", err)
		}
		if s.Collectibles.PoolSize != 5 {
			t.Fatalf("expected defaults on error, got pool size %d", s.Collectibles.PoolSize)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		s, err := LoadSettings(filepath.Join(dir, "nope.yaml"))
		if err == nil {
			t.Fatalf("expected error")
		}
		if s.Screen.Width != 960 {
			t.Fatalf("expected defaults on error")
		}
	})
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#D9453C", color.RGBA{0xD9, 0x45, 0x3C, 0xFF}, false},
		{"00000080", color.RGBA{0, 0, 0, 0x80}, false},
		{"#12", color.RGBA{}, true},
		{"#GG0000", color.RGBA{}, true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseHexColor(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tc.wantErr)
			}
			if !tc.wantErr && got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCleanScriptPath(t *testing.T) {
	for _, in := range []string{"enemy.tengo", "scripts/enemy.tengo", "prefabs/scripts/enemy.tengo"} {
		if got := cleanScriptPath(in); got != "scripts/enemy.tengo" {
			t.Fatalf("cleanScriptPath(%q) = %q", in, got)
		}
	}
	if _, err := LoadScript("enemy.tengo"); err != nil {
		t.Fatalf("embedded enemy script missing: %v", err)
	}
}
