package common

import (
	"testing"
	"time"
)

func TestClamp(t *testing.T) {
	if got := Clamp(-1, 0, 10); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
	if got := Clamp(11, 0, 10); got != 10 {
		t.Fatalf("expected 10, got %v", got)
	}
	if got := ClampInt(4, 0, 10); got != 4 {
		t.Fatalf("expected 4, got %v", got)
	}
}

func TestIntersects(t *testing.T) {
	if !Intersects(0, 0, 10, 10, 5, 5, 10, 10) {
		t.Fatalf("overlapping rects should intersect")
	}
	if Intersects(0, 0, 10, 10, 10, 0, 10, 10) {
		t.Fatalf("touching edges should not intersect")
	}
}

func TestFrames(t *testing.T) {
	tests := []struct {
		ms   int
		want int
	}{
		{0, 0},
		{100, 6},
		{1500, 90},
		{1000, 60},
	}
	for _, tc := range tests {
		if got := Frames(time.Duration(tc.ms) * time.Millisecond); got != tc.want {
			t.Fatalf("Frames(%dms) = %d, want %d", tc.ms, got, tc.want)
		}
	}
}
