package entity

import (
	"image"
	"testing"

	"github.com/milk9111/dasher/ecs"
)

func testSizes() Sizes {
	return Sizes{
		Player:   image.Pt(600, 120),
		Obstacle: image.Pt(800, 800),
		Layers:   []image.Point{image.Pt(272, 160), image.Pt(272, 160), image.Pt(352, 160)},
	}
}

func TestNewLevel(t *testing.T) {
	cfg := ecs.DefaultConfig()
	st, err := NewLevel(cfg, testSizes())
	if err != nil {
		t.Fatalf("NewLevel failed: %v", err)
	}

	t.Run("player", func(t *testing.T) {
		p := st.Player
		if p.Frame.Width != 100 || p.Frame.Height != 120 {
			t.Fatalf("unexpected player cell %+v", p.Frame)
		}
		if p.Pos.X != 206 || p.Pos.Y != 255 {
			t.Fatalf("unexpected player position %v", p.Pos)
		}
		if p.Index != 0 || p.Frame.X != 0 || p.Elapsed != 0 {
			t.Fatalf("player should start on frame 0, got %+v", p)
		}
	})

	t.Run("obstacles", func(t *testing.T) {
		if len(st.Obstacles) != 6 {
			t.Fatalf("expected 6 obstacles, got %d", len(st.Obstacles))
		}
		for i, o := range st.Obstacles {
			wantX := 512 + float64(i)*500
			if o.Pos.X != wantX || o.Pos.Y != 275 {
				t.Fatalf("obstacle %d at %v, want (%v, 275)", i, o.Pos, wantX)
			}
			if o.Frame.Width != 100 || o.Frame.Height != 100 {
				t.Fatalf("obstacle %d has cell %+v", i, o.Frame)
			}
			if o.Elapsed != 1.0/16 || o.FrameTime != 1.0/16 {
				t.Fatalf("obstacle %d has phase %v cadence %v", i, o.Elapsed, o.FrameTime)
			}
		}
		if st.FinishX != 3012 {
			t.Fatalf("expected finish line at 3012, got %v", st.FinishX)
		}
	})

	t.Run("layers", func(t *testing.T) {
		if len(st.Layers) != 3 {
			t.Fatalf("expected 3 layers, got %d", len(st.Layers))
		}
		speeds := []float64{20, 40, 80}
		widths := []float64{272, 272, 352}
		for i, l := range st.Layers {
			if l.Offset != 0 || l.Speed != speeds[i] || l.Width != widths[i] {
				t.Fatalf("layer %d: %+v", i, l)
			}
		}
	})

	if st.Outcome.Terminal() || st.Collided {
		t.Fatalf("a new level should be playing")
	}
}

func TestNewLevelErrors(t *testing.T) {
	cfg := ecs.DefaultConfig()
	cases := []struct {
		name   string
		mutate func(s *Sizes)
	}{
		{"empty_player", func(s *Sizes) { s.Player = image.Point{} }},
		{"empty_obstacle", func(s *Sizes) { s.Obstacle = image.Pt(0, 800) }},
		{"missing_layer", func(s *Sizes) { s.Layers = s.Layers[:2] }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			sizes := testSizes()
			c.mutate(&sizes)
			if _, err := NewLevel(cfg, sizes); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}
