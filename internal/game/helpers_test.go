package game

import (
	"errors"
	"testing"

	"github.com/vovakirdan/penguin-jump/internal/config"
	"github.com/vovakirdan/penguin-jump/internal/core"
	"github.com/vovakirdan/penguin-jump/internal/registry"
)

var errStoreDown = errors.New("store down")

// fakeStore is an in-package ProfileStore.
type fakeStore struct {
	profile  Profile
	runs     []RunRecord
	addCalls int
	fail     bool
}

func (f *fakeStore) LoadProfile() (Profile, error) {
	if f.fail {
		return Profile{}, errStoreDown
	}
	return f.profile, nil
}

func (f *fakeStore) AddCoins(n int) error {
	f.addCalls++
	if f.fail {
		return errStoreDown
	}
	f.profile.TotalCoins += n
	return nil
}

func (f *fakeStore) SubmitRun(run RunRecord) (bool, error) {
	if f.fail {
		return false, errStoreDown
	}
	f.runs = append(f.runs, run)
	if run.Score > f.profile.HighScore {
		f.profile.HighScore = run.Score
		return true, nil
	}
	return false, nil
}

type sessionOpts struct {
	cfg   *config.PenguinConfig
	store ProfileStore
	cues  *CueRecorder
	mute  bool
}

func newTestSession(t *testing.T, o sessionOpts) (*Session, *CueRecorder) {
	t.Helper()
	if o.cfg == nil {
		def := config.DefaultConfig()
		o.cfg = &def
	}
	if o.cues == nil {
		o.cues = &CueRecorder{}
	}
	s := NewSession(SessionParams{
		Config:       o.cfg,
		Seed:         42,
		ScreenW:      80,
		ScreenH:      24,
		Profile:      DefaultProfile(),
		Character:    registry.Lookup(registry.DefaultCharacterID),
		Store:        o.store,
		Cues:         o.cues,
		SoundEnabled: !o.mute,
	})
	return s, o.cues
}

// bare strips the generated world so a test can place entities by hand.
func bare(s *Session, rec *CueRecorder) *Session {
	for id := range s.Platforms.All() {
		s.Platforms.Remove(id)
	}
	for id := range s.Hazards.All() {
		s.RemoveHazard(id)
	}
	s.Effects = NewEffects()
	s.Player.Pos = core.Vec2{}
	rec.Played = nil
	rec.Stopped = nil
	return s
}

// safety adds a non-scoring iceberg under the origin.
func safety(s *Session, w, h float64) *Platform {
	return s.AddPlatform(Platform{Box: core.BoxAt(core.V(0, 0), w, h), Role: RoleFirst})
}
