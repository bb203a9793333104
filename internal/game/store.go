package game

import (
	"time"

	"github.com/vovakirdan/penguin-jump/internal/registry"
)

// Profile is the durable player data read at session start.
type Profile struct {
	HighScore           int
	TotalCoins          int
	SelectedCharacter   string
	MusicEnabled        bool
	SoundEffectsEnabled bool
	MusicPlaying        bool
	Unlocked            map[string]bool
}

// DefaultProfile is the profile of a fresh install.
func DefaultProfile() Profile {
	return Profile{
		SelectedCharacter:   registry.DefaultCharacterID,
		MusicEnabled:        true,
		SoundEffectsEnabled: true,
		Unlocked:            map[string]bool{registry.DefaultCharacterID: true},
	}
}

// IsUnlocked reports whether the profile owns the character.
// Free characters are always owned.
func (p Profile) IsUnlocked(c registry.Character) bool {
	return c.Cost == 0 || p.Unlocked[c.ID]
}

// RunRecord is one finished run.
type RunRecord struct {
	RunID     string
	Player    string
	Character string
	Score     int
	Coins     int
	Height    float64
	Storms    int
	Seed      int64
	Duration  time.Duration
	EndedAt   time.Time
}

// ProfileStore persists the profile. The simulation updates its in-memory
// copy first and treats every store error as non-fatal.
type ProfileStore interface {
	LoadProfile() (Profile, error)
	// AddCoins adds n to the lifetime coin total.
	AddCoins(n int) error
	// SubmitRun records the run and raises the high score if it was beaten.
	SubmitRun(run RunRecord) (newHigh bool, err error)
}
