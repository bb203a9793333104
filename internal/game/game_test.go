package game

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/penguin-jump/internal/core"
)

func fixedRuntime(seed int64) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	cfg.FixedStep = true
	return cfg
}

func runAutopilot(g *Game, frames int) {
	var bot Autopilot
	for i := 0; i < frames; i++ {
		g.Step(bot.Next(g.Session()))
	}
}

func TestGameIdentity(t *testing.T) {
	g := New(Options{})
	if g.ID() != "penguin" {
		t.Errorf("ID() = %q", g.ID())
	}
	if g.Title() == "" {
		t.Error("Title() should not be empty")
	}
}

func TestDeterministicRuns(t *testing.T) {
	a := New(Options{})
	b := New(Options{})
	a.Reset(fixedRuntime(7))
	b.Reset(fixedRuntime(7))

	for i := 0; i < 20; i++ {
		runAutopilot(a, 30)
		runAutopilot(b, 30)
		if sa, sb := a.Snapshot(), b.Snapshot(); sa != sb {
			t.Fatalf("runs diverged after %d frames:\n%+v\n%+v", (i+1)*30, sa, sb)
		}
	}
}

func TestPauseResume(t *testing.T) {
	now := time.Unix(0, 0)
	g := New(Options{Now: func() time.Time {
		now = now.Add(100 * time.Millisecond)
		return now
	}})
	cfg := core.DefaultConfig()
	cfg.Seed = 3
	g.Reset(cfg)

	empty := core.NewInputFrame()
	if r := g.Step(empty); r.Dt != 0 {
		t.Errorf("first tick dt = %v, expected 0", r.Dt)
	}
	if r := g.Step(empty); math.Abs(r.Dt-0.1) > 1e-9 {
		t.Errorf("second tick dt = %v, expected 0.1", r.Dt)
	}

	r := g.Step(core.FrameOf(core.ActionPause))
	if !r.State.Paused || r.Dt != 0 {
		t.Fatalf("pause action should pause, got %+v", r)
	}
	before := g.Session().Time
	for i := 0; i < 10; i++ {
		g.Step(empty)
	}
	if g.Session().Time != before {
		t.Error("simulation advanced while paused")
	}

	g.SetPaused(false)
	if r := g.Step(empty); r.Dt != 0 {
		t.Errorf("first tick after resume dt = %v, expected 0", r.Dt)
	}
	if r := g.Step(empty); math.Abs(r.Dt-0.1) > 1e-9 {
		t.Errorf("tick after correction dt = %v, expected 0.1", r.Dt)
	}
}

func TestAutopilotSoak(t *testing.T) {
	if testing.Short() {
		t.Skip("soak test")
	}
	store := &fakeStore{profile: DefaultProfile()}
	g := New(Options{Store: store})
	g.Reset(fixedRuntime(11))

	var bot Autopilot
	runs, lastScore := 0, 0
	for i := 0; i < 6000; i++ {
		s := g.Session()
		g.Step(bot.Next(s))

		if s.Score.Score < lastScore {
			t.Fatalf("score went down from %d to %d", lastScore, s.Score.Score)
		}
		lastScore = s.Score.Score
		if s.Score.Charge < 0 || s.Score.Charge > s.Cfg.Charge.Capacity {
			t.Fatalf("charge %v out of range", s.Score.Charge)
		}
		if s.Storm.Intensity < 0 || s.Storm.Intensity > 1 {
			t.Fatalf("intensity %v out of range", s.Storm.Intensity)
		}
		if s.Difficulty < 0 || s.Difficulty >= 1 {
			t.Fatalf("difficulty %v out of range", s.Difficulty)
		}
		if !s.Storm.Active && s.Storm.Intensity != 0 {
			t.Fatalf("calm storm with intensity %v", s.Storm.Intensity)
		}

		if g.State().GameOver {
			runs++
			lastScore = 0
			g.Reset(fixedRuntime(int64(11 + runs)))
		}
	}
	// The last run may be over but still waiting for its results screen.
	if n := len(store.runs); n != runs && n != runs+1 {
		t.Errorf("recorded %d runs, expected %d", n, runs)
	}
}

func TestRenderSmoke(t *testing.T) {
	g := New(Options{})
	cfg := fixedRuntime(5)
	g.Reset(cfg)
	runAutopilot(g, 60)

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "Score") {
		t.Errorf("HUD missing from frame:\n%s", out)
	}

	g.SetPaused(true)
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("pause overlay missing")
	}
}

func TestGeneratorLayout(t *testing.T) {
	s, _ := newTestSession(t, sessionOpts{})
	pc := s.Cfg.Platforms

	roles := map[PlatformRole]int{}
	for _, p := range s.Platforms.All() {
		roles[p.Role]++
		if p.Role != RoleNormal {
			continue
		}
		if p.Box.Center.Y < 2*pc.Spacing {
			t.Errorf("generated platform at y=%v below the start rows", p.Box.Center.Y)
		}
		if math.Abs(p.Box.Center.X) > pc.FieldHalfWidth {
			t.Errorf("platform x=%v outside the field", p.Box.Center.X)
		}
		if p.Box.W < pc.MinWidth || p.Box.W > pc.MaxWidth {
			t.Errorf("platform width %v out of range", p.Box.W)
		}
	}
	if roles[RoleFirst] != 1 || roles[RoleBoundary] != 2 {
		t.Errorf("roles = %v, expected one first and two boundary icebergs", roles)
	}
	if s.generator.Frontier() <= s.Camera.Pos.Y+s.ViewH {
		t.Error("generator should fill one screen above the camera")
	}

	s.Camera.Pos.Y += 3 * s.ViewH
	s.generator.Update(s)
	floor := s.Camera.Pos.Y - pc.CullScreens*s.ViewH
	for _, p := range s.Platforms.All() {
		if p.Box.MaxY() < floor {
			t.Errorf("platform at y=%v should have been culled", p.Box.Center.Y)
		}
	}
	if s.generator.Frontier() <= s.Camera.Pos.Y+s.ViewH {
		t.Error("generator should keep up with the camera")
	}
}

func TestJumpAndSteer(t *testing.T) {
	s, rec := newTestSession(t, sessionOpts{})
	s = bare(s, rec)
	safety(s, 400, 400)

	s.Steer(1)
	s.Steer(1)
	s.Steer(1)
	if s.Player.Aim != 1 {
		t.Errorf("aim = %v, expected clamp at 1", s.Player.Aim)
	}
	s.Steer(-1)
	if s.Player.Aim != 0.5 {
		t.Errorf("aim = %v, expected 0.5", s.Player.Aim)
	}

	if !s.Jump() || !s.Player.InAir {
		t.Fatal("ground jump should start")
	}
	if !s.Jump() || !s.Player.DoubleJumped || s.Effects.Len() != 1 {
		t.Fatal("second press should double jump")
	}
	if s.Jump() {
		t.Error("third press must be ignored")
	}
	s.Effects = NewEffects()

	air := s.Cfg.Physics.AirTime
	s.advancePlayer(air / 2)
	if s.Player.Lift <= 0 {
		t.Error("player should be lifted mid-jump")
	}
	s.advancePlayer(air / 2)

	ph := s.Cfg.Physics
	if math.Abs(s.Player.Pos.Y-ph.JumpDistance) > 1e-9 {
		t.Errorf("jump covered %v, expected %v", s.Player.Pos.Y, ph.JumpDistance)
	}
	wantX := 0.5 * ph.SteerSpeed * ph.AirTime
	if math.Abs(s.Player.Pos.X-wantX) > 1e-9 {
		t.Errorf("steered to %v, expected %v", s.Player.Pos.X, wantX)
	}
	if s.Player.InAir || s.Player.Aim != 0 || s.Player.Lift != 0 {
		t.Errorf("landing should reset the jump, got %+v", s.Player)
	}
	if rec.Count(CueJump) != 2 {
		t.Errorf("jump cue played %d times, expected 2", rec.Count(CueJump))
	}
}

func TestSelectedCharacterMustBeUnlocked(t *testing.T) {
	store := &fakeStore{profile: DefaultProfile()}
	store.profile.SelectedCharacter = "parasol"
	g := New(Options{Store: store})
	g.Reset(fixedRuntime(1))
	if id := g.Session().Player.Character.ID; id != "normal" {
		t.Errorf("locked character %q should fall back to normal", id)
	}

	store.profile.Unlocked["parasol"] = true
	g.Reset(fixedRuntime(1))
	if id := g.Session().Player.Character.ID; id != "parasol" {
		t.Errorf("character = %q, expected parasol", id)
	}
}
