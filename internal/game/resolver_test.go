package game

import (
	"math"
	"testing"

	"github.com/vovakirdan/penguin-jump/internal/config"
	"github.com/vovakirdan/penguin-jump/internal/core"
)

func TestLandingScoresOnce(t *testing.T) {
	s, rec := newTestSession(t, sessionOpts{})
	s = bare(s, rec)
	p := s.AddPlatform(Platform{Box: core.BoxAt(core.V(0, 0), 100, 50)})
	s.Difficulty = 0.5

	Resolve(s, 0)
	if p.State != PlatformLanded {
		t.Fatalf("platform state = %v, expected landed", p.State)
	}
	if p.SinkDuration != 7-3*0.5 {
		t.Errorf("SinkDuration = %v, expected %v", p.SinkDuration, 7-3*0.5)
	}
	if s.Score.Score != 1 || s.CurrentPlatform != p.ID {
		t.Errorf("score=%d current=%d", s.Score.Score, s.CurrentPlatform)
	}
	if rec.Count(CueLanding) != 1 {
		t.Errorf("landing cue played %d times", rec.Count(CueLanding))
	}

	Resolve(s, 0)
	if s.Score.Score != 1 || rec.Count(CueLanding) != 1 {
		t.Error("second resolve on a landed platform must be a no-op")
	}
}

func TestNoLandingWhileAirborneOrOnFirst(t *testing.T) {
	s, rec := newTestSession(t, sessionOpts{})
	s = bare(s, rec)
	first := safety(s, 100, 50)

	Resolve(s, 0)
	if first.Landed() || s.Score.Score != 0 {
		t.Error("the safety iceberg must never score")
	}
	if !s.Player.OnPlatform || s.Over {
		t.Error("the safety iceberg still supports the player")
	}

	p := s.AddPlatform(Platform{Box: core.BoxAt(core.V(0, 0), 100, 50)})
	s.Player.InAir = true
	Resolve(s, 0)
	if p.Landed() {
		t.Error("airborne player must not land")
	}
}

func TestLightningPush(t *testing.T) {
	tests := []struct {
		name     string
		center   core.Vec2
		pos      core.Vec2
		expected core.Vec2
	}{
		{"straight up", core.V(0, -10), core.V(0, 0), core.V(0, 54)},
		{"to the left", core.V(20, 0), core.V(0, 0), core.V(-44, 0)},
		{"out of reach", core.V(0, -100), core.V(0, 0), core.V(0, 0)},
		{"dead center pushes up", core.V(5, 5), core.V(5, 5), core.V(0, 64)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := LightningPush(tc.center, tc.pos, 64)
			if math.Abs(got.X-tc.expected.X) > 1e-9 || math.Abs(got.Y-tc.expected.Y) > 1e-9 {
				t.Errorf("LightningPush = %v, expected %v", got, tc.expected)
			}
			if got.Len() > 64+1e-9 {
				t.Errorf("push %v exceeds the cap", got.Len())
			}
		})
	}
}

func TestLightningStrike(t *testing.T) {
	s, rec := newTestSession(t, sessionOpts{})
	s = bare(s, rec)
	safety(s, 400, 400)
	a := s.AddHazard(Hazard{Kind: HazardLightning, State: LightningActive, Pos: core.V(0, -10)})
	b := s.AddHazard(Hazard{Kind: HazardLightning, State: LightningActive, Pos: core.V(0, 10)})

	Resolve(s, 0)
	if !s.Player.HitByShock || !a.Struck() {
		t.Fatal("overlapping active strike should hit")
	}
	if b.Struck() {
		t.Error("only one strike may resolve at a time")
	}
	if s.Effects.Len() != 1 {
		t.Fatalf("expected one push effect, got %d", s.Effects.Len())
	}

	Resolve(s, 0)
	if s.Effects.Len() != 1 || b.Struck() {
		t.Error("resolving again during the push must be a no-op")
	}

	s.Effects.Advance(s, s.Cfg.Spawn.PushDuration)
	if math.Abs(s.Player.Pos.Y-54) > 1e-9 || s.Player.Pos.X != 0 {
		t.Errorf("player after push at %v, expected (0, 54)", s.Player.Pos)
	}
	if s.Player.HitByShock {
		t.Error("shock flag should clear when the push completes")
	}
}

func TestLightningWarmup(t *testing.T) {
	s, rec := newTestSession(t, sessionOpts{})
	s = bare(s, rec)
	safety(s, 400, 400)
	far := s.AddHazard(Hazard{Kind: HazardLightning, State: LightningIdle, Pos: core.V(0, 200)})
	near := s.AddHazard(Hazard{Kind: HazardLightning, State: LightningIdle, Pos: core.V(0, 30)})

	s.updateHazards(0.1)
	if far.State != LightningIdle {
		t.Error("distant strike should stay idle")
	}
	if near.State != LightningCharging || rec.Count(CueAlert) != 1 {
		t.Fatalf("near strike state = %v", near.State)
	}

	s.updateHazards(s.Cfg.Spawn.StrikeWarmup)
	if !near.Activated() || rec.Count(CueZap) != 1 {
		t.Fatalf("strike should activate after warm-up, state = %v", near.State)
	}

	s.updateHazards(s.Cfg.Spawn.StrikeActive)
	if _, ok := s.Hazards.Get(near.ID); ok {
		t.Error("strike should disappear after its active window")
	}
}

func TestCoinCollection(t *testing.T) {
	store := &fakeStore{}
	s, rec := newTestSession(t, sessionOpts{store: store})
	s = bare(s, rec)
	safety(s, 400, 400)
	c := s.AddHazard(Hazard{Kind: HazardCoin, State: CoinFloating, Pos: core.V(0, 10)})

	Resolve(s, 0)
	if !c.Collected() {
		t.Fatal("coin under the body should be collected")
	}
	if s.Score.Score != 2 || s.Score.SessionCoins != 1 || s.Score.LifetimeCoins != 1 {
		t.Errorf("score=%d coins=%d lifetime=%d", s.Score.Score, s.Score.SessionCoins, s.Score.LifetimeCoins)
	}
	if store.profile.TotalCoins != 1 {
		t.Errorf("store coins = %d, expected 1", store.profile.TotalCoins)
	}

	Resolve(s, 0)
	if s.Score.Score != 2 || store.addCalls != 1 {
		t.Error("collected coin must not pay twice")
	}

	s.Effects.Advance(s, 0.5)
	if _, ok := s.Hazards.Get(c.ID); ok || rec.Count(CueBurst) != 1 {
		t.Error("coin should burst after rising")
	}
	s.Effects.Advance(s, 1.0)
	if s.Score.Charge != 4 {
		t.Errorf("first particle should add 4 charge, got %v", s.Score.Charge)
	}
	s.Effects.Advance(s, 0.9)
	if s.Score.Charge != 20 {
		t.Errorf("all particles should add 20 charge, got %v", s.Score.Charge)
	}
	if rec.Count(CueCharge) != 5 {
		t.Errorf("charge cue played %d times, expected 5", rec.Count(CueCharge))
	}
}

func TestStormCoinPaysDoubleAndSkipsCharge(t *testing.T) {
	s, rec := newTestSession(t, sessionOpts{})
	s = bare(s, rec)
	safety(s, 400, 400)
	s.Storm.Begin(s)
	s.AddHazard(Hazard{Kind: HazardCoin, State: CoinFloating, Pos: core.V(0, 10)})

	Resolve(s, 0)
	if s.Score.Score != 4 {
		t.Errorf("storm coin score = %d, expected 4", s.Score.Score)
	}
	s.Effects.Advance(s, 5)
	if s.Score.Charge != 0 {
		t.Errorf("particles during a storm must not charge, got %v", s.Score.Charge)
	}
}

func TestChargeStartsStormOnce(t *testing.T) {
	s, rec := newTestSession(t, sessionOpts{})
	s = bare(s, rec)
	safety(s, 400, 400)

	s.Score.Charge = 10
	Resolve(s, 1)
	if s.Score.Charge != 5 {
		t.Errorf("charge should drain 5/s, got %v", s.Score.Charge)
	}

	s.Score.Charge = s.Cfg.Charge.Capacity
	Resolve(s, 0.1)
	if !s.Storm.Active || s.Score.Storms != 1 {
		t.Fatal("full charge should start a storm")
	}
	Resolve(s, 0.1)
	s.chargeArrived()
	if s.Score.Storms != 1 {
		t.Error("reaching capacity again while storming must be ignored")
	}
	if s.Score.Charge != s.Cfg.Charge.Capacity {
		t.Errorf("charge should be held during the storm, got %v", s.Score.Charge)
	}
}

func TestSharkKill(t *testing.T) {
	s, rec := newTestSession(t, sessionOpts{})
	s = bare(s, rec)
	safety(s, 30, 30)
	sh := s.AddHazard(Hazard{Kind: HazardShark, State: SharkSwimming, Pos: core.V(30, 0), Dir: 1})
	if rec.Count(CueLurking) != 1 {
		t.Error("first shark should start the lurking loop")
	}

	s.Player.HitByShock = true
	s.Effects.Schedule(Effect{Kind: EffectMove, Target: PlayerTarget, Duration: 1, Delta: core.V(0, 50)})

	Resolve(s, 0)
	if !sh.KillBegun() || !s.Player.Captured || rec.Count(CueRoar) != 1 {
		t.Fatal("wave over the shadow should begin the kill")
	}
	if s.Player.HitByShock {
		t.Error("kill should cancel the lightning push")
	}
	if s.Over {
		t.Fatal("still over the iceberg: game over must wait for the pull")
	}

	Resolve(s, 0)
	if rec.Count(CueRoar) != 1 {
		t.Error("kill must begin only once")
	}

	s.Effects.Advance(s, s.Cfg.Spawn.KillPull)
	if math.Abs(s.Player.Pos.X-30) > 1e-9 || s.Player.Pos.Y != 0 {
		t.Errorf("player should be pulled to the shark, at %v", s.Player.Pos)
	}
	Resolve(s, 0)
	if !s.Over {
		t.Error("player in the water should trigger game over")
	}
}

func TestGameOverRecordsRun(t *testing.T) {
	tests := []struct {
		name      string
		score     int
		high      int
		wantHigh  int
		wantNewHi bool
	}{
		{"beats high score", 5, 3, 5, true},
		{"below high score", 2, 3, 3, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := &fakeStore{}
			s, rec := newTestSession(t, sessionOpts{store: store})
			s = bare(s, rec)
			s.Score.Score = tc.score
			s.Score.HighScore = tc.high

			Resolve(s, 0)
			if !s.Over || !s.Camera.Frozen {
				t.Fatal("no platform and not airborne should end the run")
			}
			if s.Score.HighScore != tc.wantHigh || s.Score.NewHigh != tc.wantNewHi {
				t.Errorf("high=%d new=%v", s.Score.HighScore, s.Score.NewHigh)
			}
			if len(store.runs) != 1 || store.runs[0].Score != tc.score || store.runs[0].RunID == "" {
				t.Fatalf("runs = %+v", store.runs)
			}
			if rec.Count(CueSplash) != 1 {
				t.Error("splash should play once")
			}

			Resolve(s, 0)
			if len(store.runs) != 1 {
				t.Error("game over must be recorded once")
			}

			s.Advance(core.NewInputFrame(), 1, false)
			if s.ResultsReady {
				t.Error("results should wait for the hand-off delay")
			}
			s.Advance(core.NewInputFrame(), 1, false)
			if !s.ResultsReady {
				t.Error("results should be ready after the delay")
			}
		})
	}
}

func TestStoreFailureIsNotFatal(t *testing.T) {
	store := &fakeStore{fail: true}
	s, rec := newTestSession(t, sessionOpts{store: store})
	s = bare(s, rec)
	safety(s, 400, 400)
	s.AddHazard(Hazard{Kind: HazardCoin, State: CoinFloating, Pos: core.V(0, 10)})

	Resolve(s, 0)
	if s.Score.LifetimeCoins != 1 || s.Score.Score != 2 {
		t.Error("in-memory economy should update even when the store fails")
	}
}

func TestSoundEffectsToggle(t *testing.T) {
	s, rec := newTestSession(t, sessionOpts{mute: true})
	s = bare(s, rec)
	safety(s, 400, 400)

	s.Jump()
	s.Storm.Begin(s)
	if len(rec.Played) != 0 {
		t.Errorf("muted session played %v", rec.Played)
	}
}

func TestLurkingStopsWhenSharksCulled(t *testing.T) {
	s, rec := newTestSession(t, sessionOpts{})
	s = bare(s, rec)
	safety(s, 400, 400)
	low := s.Camera.Pos.Y - 2*s.ViewH
	s.AddHazard(Hazard{Kind: HazardShark, State: SharkSwimming, Pos: core.V(0, low), Dir: 1})
	s.AddHazard(Hazard{Kind: HazardShark, State: SharkSwimming, Pos: core.V(50, low), Dir: -1})

	s.updateHazards(0)
	if s.Count(HazardShark) != 0 {
		t.Fatal("sharks far below the camera should be culled")
	}
	if len(rec.Stopped) != 1 || rec.Stopped[0] != CueLurking {
		t.Errorf("stopped = %v, expected the lurking loop once", rec.Stopped)
	}
}

func TestSpawnerNeverPutsSharksOnBoundary(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Spawn.LightningBase = 2
	cfg.Spawn.LightningDifficulty = 0
	s, rec := newTestSession(t, sessionOpts{cfg: &cfg})
	s = bare(s, rec)

	boundary := s.AddPlatform(Platform{Box: core.BoxAt(core.V(0, 0), 100, 50), Role: RoleBoundary})
	normal := s.AddPlatform(Platform{Box: core.BoxAt(core.V(0, 500), 100, 50)})

	sharksOn := map[EntityID]int{}
	for i := 0; i < 200; i++ {
		s.spawner.OnPlatformGenerated(s, boundary)
		s.spawner.OnPlatformGenerated(s, normal)
	}
	for _, h := range s.Hazards.All() {
		if h.Kind == HazardShark {
			sharksOn[h.Parent]++
		}
	}
	if sharksOn[boundary.ID] != 0 {
		t.Errorf("%d sharks on a boundary platform", sharksOn[boundary.ID])
	}
	if sharksOn[normal.ID] == 0 {
		t.Error("draw of 1 should spawn sharks on normal platforms")
	}
}

func TestLightningDraws(t *testing.T) {
	tests := []struct {
		difficulty, intensity float64
		expected              int
	}{
		{0, 0, 100},
		{0, 1, 33},
		{1, 0, 5},
		{1, 1, 1},
		{0.5, 0.5, 26},
	}
	for _, tc := range tests {
		if got := LightningDraws(100, 95, tc.difficulty, tc.intensity); got != tc.expected {
			t.Errorf("LightningDraws(%v, %v) = %d, expected %d", tc.difficulty, tc.intensity, got, tc.expected)
		}
	}
	if LightningDraws(100, 200, 1, 0) != 1 {
		t.Error("draw size must never drop below 1")
	}
}
