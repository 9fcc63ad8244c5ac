package system

import (
	"image"
	"math"
	"testing"

	"github.com/milk9111/dasher/component"
	"github.com/milk9111/dasher/ecs"
	"github.com/milk9111/dasher/ecs/entity"
)

const dt = 1.0 / 60

func newTestWorld(t *testing.T) *ecs.World {
	t.Helper()
	sizes := entity.Sizes{
		Player:   image.Pt(600, 120),
		Obstacle: image.Pt(800, 800),
		Layers:   []image.Point{image.Pt(272, 160), image.Pt(272, 160), image.Pt(352, 160)},
	}
	w, err := entity.NewWorld(ecs.DefaultConfig(), sizes)
	if err != nil {
		t.Fatalf("build world: %v", err)
	}
	Register(w)
	return w
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestJumpArc(t *testing.T) {
	w := newTestWorld(t)
	floorY := 375.0 - 120

	w.Step(dt, component.Input{})
	if !w.State.Body.Grounded || w.State.Body.VelocityY != 0 || w.State.Player.Pos.Y != floorY {
		t.Fatalf("player should start at rest on the floor, got body=%+v y=%v", w.State.Body, w.State.Player.Pos.Y)
	}

	w.Step(dt, component.Input{JumpPressed: true})
	if w.State.Body.Grounded || w.State.Body.VelocityY != -600 {
		t.Fatalf("after the jump frame expected airborne at -600, got %+v", w.State.Body)
	}
	if !w.State.GroundedAtCheck {
		t.Fatalf("the jump frame's ground check should still read grounded")
	}
	if component.OnGround(w.State.Player.Pos.Y, 120, 375) {
		t.Fatalf("player should have left the floor, y=%v", w.State.Player.Pos.Y)
	}

	frameIndex := w.State.Player.Index
	prevVel := w.State.Body.VelocityY
	landed := false
	for i := 0; i < 600; i++ {
		// Extra presses while airborne must be ignored. Never press on the
		// landing frame: a grounded press there is a legal new jump.
		airborne := !component.OnGround(w.State.Player.Pos.Y, 120, 375)
		w.Step(dt, component.Input{JumpPressed: airborne && i%7 == 0})
		b := w.State.Body
		if b.Grounded {
			if b.VelocityY != 0 {
				t.Fatalf("landing should zero velocity, got %v", b.VelocityY)
			}
			if !w.State.GroundedAtCheck {
				t.Fatalf("landing frame should read grounded")
			}
			if w.State.Player.Pos.Y < floorY {
				t.Fatalf("landed above the floor at y=%v", w.State.Player.Pos.Y)
			}
			landed = true
			break
		}
		if !almostEqual(b.VelocityY-prevVel, 800*dt) {
			t.Fatalf("frame %d: velocity changed by %v, want %v", i, b.VelocityY-prevVel, 800*dt)
		}
		if w.State.Player.Index != frameIndex {
			t.Fatalf("player animation should hold while airborne")
		}
		prevVel = b.VelocityY
	}
	if !landed {
		t.Fatalf("player never landed")
	}
}

func TestObstaclesAndFinishLineScroll(t *testing.T) {
	w := newTestWorld(t)
	const step = 0.05
	for n := 1; n <= 40; n++ {
		w.Step(step, component.Input{})
		elapsed := float64(n) * step
		for i, o := range w.State.Obstacles {
			want := 512 + float64(i)*500 - 200*elapsed
			if !almostEqual(o.Pos.X, want) {
				t.Fatalf("t=%v obstacle %d at x=%v, want %v", elapsed, i, o.Pos.X, want)
			}
			if o.Pos.Y != 275 {
				t.Fatalf("obstacle %d left the floor", i)
			}
		}
		if want := 512 + 5*500 - 200*elapsed; !almostEqual(w.State.FinishX, want) {
			t.Fatalf("t=%v finish line at %v, want %v", elapsed, w.State.FinishX, want)
		}
	}
}

func TestCollisionIsSticky(t *testing.T) {
	w := newTestWorld(t)

	lostAt := -1
	for i := 0; i < 300; i++ {
		w.Step(dt, component.Input{})
		if w.State.Outcome == component.Lost {
			lostAt = i
			break
		}
		if w.State.Outcome != component.Playing {
			t.Fatalf("frame %d: unexpected outcome %v", i, w.State.Outcome)
		}
	}
	if lostAt < 0 {
		t.Fatalf("grounded player was never hit")
	}
	if !w.State.Collided {
		t.Fatalf("collision flag should be set")
	}

	x := w.State.Obstacles[0].Pos.X
	for i := 0; i < 300; i++ {
		w.Step(dt, component.Input{})
		if w.State.Outcome != component.Lost {
			t.Fatalf("outcome changed to %v after a collision", w.State.Outcome)
		}
	}
	if w.State.Obstacles[0].Pos.X >= x {
		t.Fatalf("simulation should keep running after the run is lost")
	}
	if hb := component.Hitbox(w.State.Obstacles[0], 50); hb.Intersects(w.State.PlayerBox()) {
		t.Fatalf("obstacle should have passed the player by now")
	}
}

func TestOutcomeSystem(t *testing.T) {
	cases := []struct {
		name     string
		setup    func(st *ecs.State)
		input    component.Input
		want     component.Outcome
		collided bool
	}{
		{
			name: "finish_crossed_grounded",
			setup: func(st *ecs.State) {
				st.Obstacles = nil
				st.FinishX = 310
			},
			want: component.Won,
		},
		{
			name: "finish_crossed_airborne",
			setup: func(st *ecs.State) {
				st.Obstacles = nil
				st.FinishX = 310
				st.Player.Pos.Y = 100
			},
			want: component.Playing,
		},
		{
			name: "jumping_at_the_finish",
			setup: func(st *ecs.State) {
				st.Obstacles = nil
				st.FinishX = 200
			},
			input: component.Input{JumpPressed: true},
			want:  component.Won,
		},
		{
			name: "collision_beats_finish",
			setup: func(st *ecs.State) {
				st.Obstacles = st.Obstacles[:1]
				st.Obstacles[0].Pos.X = 210
				st.FinishX = 0
			},
			want:     component.Lost,
			collided: true,
		},
		{
			name: "latched_collision",
			setup: func(st *ecs.State) {
				st.Obstacles = nil
				st.FinishX = 0
				st.Collided = true
			},
			want:     component.Lost,
			collided: true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := newTestWorld(t)
			c.setup(&w.State)
			w.Step(0.1, c.input)
			if w.State.Outcome != c.want {
				t.Fatalf("expected %v, got %v", c.want, w.State.Outcome)
			}
			if w.State.Collided != c.collided {
				t.Fatalf("expected collided=%v", c.collided)
			}
		})
	}
}

func TestScrollSystemLayersIndependent(t *testing.T) {
	w := newTestWorld(t)
	w.Step(0.5, component.Input{})
	want := []float64{-10, -20, -40}
	for i, l := range w.State.Layers {
		if !almostEqual(l.Offset, want[i]) {
			t.Fatalf("layer %s offset %v, want %v", l.Name, l.Offset, want[i])
		}
	}
}

func TestAnimationSystem(t *testing.T) {
	w := newTestWorld(t)
	w.Step(dt, component.Input{})

	for i, o := range w.State.Obstacles {
		if o.Index != 1 || o.Frame.X != 100 || o.Elapsed != 0 {
			t.Fatalf("obstacle %d should step on its first update, got %+v", i, o)
		}
	}
	if w.State.Player.Index != 0 {
		t.Fatalf("player should not step before its cadence")
	}
	for i := 0; i < 6; i++ {
		w.Step(dt, component.Input{})
	}
	if w.State.Player.Index != 1 || w.State.Player.Frame.X != 100 {
		t.Fatalf("player should be on frame 1, got %+v", w.State.Player)
	}
}

func TestPlayerAnimatesOnJumpFrame(t *testing.T) {
	w := newTestWorld(t)
	for i := 0; i < 6; i++ {
		w.Step(dt, component.Input{})
	}
	if w.State.Player.Index != 0 {
		t.Fatalf("player should not step before its cadence, got %+v", w.State.Player)
	}

	w.Step(dt, component.Input{JumpPressed: true})
	if w.State.Body.Grounded {
		t.Fatalf("player should be airborne after the jump frame")
	}
	if w.State.Player.Index != 1 || w.State.Player.Frame.X != 100 {
		t.Fatalf("player should step on the jump frame, got %+v", w.State.Player)
	}

	for i := 0; i < 10; i++ {
		w.Step(dt, component.Input{})
	}
	if w.State.Player.Index != 1 {
		t.Fatalf("player should hold its frame in the air, got %+v", w.State.Player)
	}
}
