package game

import (
	"math"
	"testing"
)

func TestStormBeginIsIdempotent(t *testing.T) {
	s, rec := newTestSession(t, sessionOpts{})

	if !s.Storm.Begin(s) {
		t.Fatal("first Begin should start the storm")
	}
	if s.Storm.Begin(s) {
		t.Error("Begin while storming should be ignored")
	}
	if s.Score.Storms != 1 {
		t.Errorf("Storms = %d, expected 1", s.Score.Storms)
	}
	if rec.Count(CueThunder) != 1 {
		t.Errorf("thunder played %d times, expected 1", rec.Count(CueThunder))
	}
	if d := s.Storm.WindDirection; d != 1 && d != -1 {
		t.Errorf("wind direction = %v, expected ±1", d)
	}
	for _, p := range s.Platforms.All() {
		if !p.StormBob {
			t.Fatal("storm entry should switch every platform to storm bobbing")
		}
	}
}

func TestStormRampRate(t *testing.T) {
	s, _ := newTestSession(t, sessionOpts{})
	s.Storm.Begin(s)

	dt := 0.1
	s.Storm.Update(s, dt)
	expected := 0.3 * dt / 2
	if math.Abs(s.Storm.Intensity-expected) > 1e-12 {
		t.Errorf("Intensity after one frame = %v, expected %v", s.Storm.Intensity, expected)
	}
	if s.Storm.Elapsed != dt {
		t.Errorf("Elapsed = %v, expected %v", s.Storm.Elapsed, dt)
	}
	if math.Abs(math.Abs(s.Storm.WindSpeed)-s.Storm.Intensity*70) > 1e-9 {
		t.Errorf("WindSpeed = %v for intensity %v", s.Storm.WindSpeed, s.Storm.Intensity)
	}
}

func TestStormFullCycle(t *testing.T) {
	s, _ := newTestSession(t, sessionOpts{})
	s.Score.Charge = s.Cfg.Charge.Capacity
	s.Storm.Begin(s)

	phases := []StormPhase{s.Storm.Phase()}
	for i := 0; i < 10000 && s.Storm.Active; i++ {
		before, phase := s.Storm.Intensity, s.Storm.Phase()
		s.Storm.Update(s, 0.05)
		if s.Storm.Intensity < 0 || s.Storm.Intensity > 1 {
			t.Fatalf("Intensity %v out of [0,1] at frame %d", s.Storm.Intensity, i)
		}
		switch {
		case phase == PhaseRampingUp && s.Storm.Intensity <= before:
			t.Fatalf("frame %d: intensity %v -> %v while ramping up", i, before, s.Storm.Intensity)
		case phase == PhaseSustained && s.Storm.Intensity != 1:
			t.Fatalf("frame %d: intensity %v while sustained", i, s.Storm.Intensity)
		case phase == PhaseRampingDown && s.Storm.Active && s.Storm.Intensity >= before:
			t.Fatalf("frame %d: intensity %v -> %v while ramping down", i, before, s.Storm.Intensity)
		}
		if ph := s.Storm.Phase(); ph != phases[len(phases)-1] {
			phases = append(phases, ph)
		}
	}

	expected := []StormPhase{PhaseRampingUp, PhaseSustained, PhaseRampingDown, PhaseCalm}
	if len(phases) != len(expected) {
		t.Fatalf("phases = %v, expected %v", phases, expected)
	}
	for i := range expected {
		if phases[i] != expected[i] {
			t.Fatalf("phases = %v, expected %v", phases, expected)
		}
	}

	if s.Storm.Intensity != 0 || s.Storm.Elapsed != 0 || s.Storm.WindSpeed != 0 {
		t.Errorf("storm exit should zero state: %+v", s.Storm)
	}
	if s.Score.Charge != 0 {
		t.Errorf("storm exit should reset charge, got %v", s.Score.Charge)
	}
	for _, p := range s.Platforms.All() {
		if p.StormBob {
			t.Fatal("storm exit should restore calm bobbing")
		}
	}
}

func TestStormTint(t *testing.T) {
	tests := []struct {
		intensity float64
		r, g, b   uint8
	}{
		{0, 0, 151, 255},
		{1, 0, 111, 135},
		{0.5, 0, 131, 195},
	}
	for _, tc := range tests {
		st := StormState{Intensity: tc.intensity}
		r, g, b := st.Tint()
		if r != tc.r || g != tc.g || b != tc.b {
			t.Errorf("Tint(%v) = (%d,%d,%d), expected (%d,%d,%d)", tc.intensity, r, g, b, tc.r, tc.g, tc.b)
		}
	}
}

func TestWindDrift(t *testing.T) {
	tests := []struct {
		name       string
		wind       float64
		difficulty float64
		grounded   bool
		factor     float64
		expected   float64
	}{
		{"airborne", 70, 0.5, false, 1, 70 * 0.1 * 0.5},
		{"grounded halves", 70, 0.5, true, 1, 70 * 0.1 * 0.5 / 2},
		{"shark costume", -70, 1, false, 0.75, -70 * 0.1 * 0.75},
		{"no difficulty no drift", 70, 0, false, 1, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := WindDrift(tc.wind, 0.1, tc.difficulty, tc.grounded, tc.factor)
			if math.Abs(got-tc.expected) > 1e-12 {
				t.Errorf("WindDrift = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRainRate(t *testing.T) {
	s, _ := newTestSession(t, sessionOpts{})
	if s.Storm.RainRate() != 0 {
		t.Fatal("no rain while calm")
	}
	s.Storm.Begin(s)
	s.Storm.RainTime = 1
	expected := 0.1*5.3 - 0.1
	if math.Abs(s.Storm.RainRate()-expected) > 1e-12 {
		t.Errorf("RainRate at 1s = %v, expected %v", s.Storm.RainRate(), expected)
	}
	s.Storm.RainTime = 10
	if s.Storm.RainRate() != 80 {
		t.Errorf("RainRate should cap at 80, got %v", s.Storm.RainRate())
	}

	s.Rain = nil
	s.updateRain(0.1)
	if len(s.Rain) != int(0.1*80)+1 {
		t.Errorf("spawned %d drops, expected %d", len(s.Rain), int(0.1*80)+1)
	}
}
