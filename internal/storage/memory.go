package storage

import (
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/vovakirdan/penguin-jump/internal/game"
	"github.com/vovakirdan/penguin-jump/internal/registry"
)

// MemoryStore keeps the profile in memory. Used by tests and when the
// database cannot be opened.
type MemoryStore struct {
	profile game.Profile
	runs    []game.RunRecord
	mu      sync.RWMutex
}

var _ Profiles = (*MemoryStore)(nil)

// NewMemoryStore creates a store holding a fresh profile.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{profile: game.DefaultProfile()}
}

// LoadProfile returns a copy of the profile.
func (m *MemoryStore) LoadProfile() (game.Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p := m.profile
	p.Unlocked = maps.Clone(m.profile.Unlocked)
	return p, nil
}

// AddCoins adds n to the lifetime coin total.
func (m *MemoryStore) AddCoins(n int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profile.TotalCoins += n
	return nil
}

// SubmitRun records a run and raises the high score when it was beaten.
func (m *MemoryStore) SubmitRun(run game.RunRecord) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if run.EndedAt.IsZero() {
		run.EndedAt = time.Now()
	}
	m.runs = append(m.runs, run)
	if run.Score > m.profile.HighScore {
		m.profile.HighScore = run.Score
		return true, nil
	}
	return false, nil
}

// Unlock debits the character's catalog price and records it as owned.
func (m *MemoryStore) Unlock(id string) (int, error) {
	c, err := registry.Get(id)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCharacter, id)
	}
	cost := c.Cost
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.profile.Unlocked[id] {
		return m.profile.TotalCoins, nil
	}
	if m.profile.TotalCoins < cost {
		return m.profile.TotalCoins, ErrInsufficientCoins
	}
	m.profile.TotalCoins -= cost
	m.profile.Unlocked[id] = true
	return m.profile.TotalCoins, nil
}

// SelectCharacter makes an owned character the one used by the next run.
func (m *MemoryStore) SelectCharacter(id string) error {
	c, err := registry.Get(id)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownCharacter, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.profile.IsUnlocked(c) {
		return ErrLocked
	}
	m.profile.SelectedCharacter = id
	return nil
}

// SetSoundSettings saves the music and sound-effect toggles.
func (m *MemoryStore) SetSoundSettings(music, effects bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profile.MusicEnabled = music
	m.profile.SoundEffectsEnabled = effects
	return nil
}

// SetMusicPlaying remembers whether background music was running.
func (m *MemoryStore) SetMusicPlaying(playing bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profile.MusicPlaying = playing
	return nil
}

// TopRuns returns the best N runs, highest score first.
func (m *MemoryStore) TopRuns(limit int) ([]game.RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	m.mu.RLock()
	runs := slices.Clone(m.runs)
	m.mu.RUnlock()

	slices.SortStableFunc(runs, func(a, b game.RunRecord) int {
		return b.Score - a.Score
	})
	if len(runs) > limit {
		runs = runs[:limit]
	}
	return runs, nil
}

// Stats aggregates every recorded run.
func (m *MemoryStore) Stats() (Stats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var st Stats
	total := 0
	for _, r := range m.runs {
		st.Runs++
		total += r.Score
		st.HighScore = max(st.HighScore, r.Score)
		st.RunCoins += int64(r.Coins)
		st.MaxHeight = max(st.MaxHeight, r.Height)
		st.Storms += int64(r.Storms)
		st.PlayTime += r.Duration
		if r.EndedAt.After(st.LastPlayed) {
			st.LastPlayed = r.EndedAt
		}
	}
	if st.Runs > 0 {
		st.AvgScore = float64(total) / float64(st.Runs)
	}
	return st, nil
}

// Close is a no-op.
func (m *MemoryStore) Close() error {
	return nil
}
