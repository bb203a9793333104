// Package registry holds the game contract seen by the platform layer and
// the global catalog of unlockable characters. Characters register
// themselves in init() functions, so the shop and the simulation discover
// them without a hardcoded list.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/penguin-jump/internal/core"
)

// Game is the interface the platform drives.
// Implementations contain pure logic with no Bubble Tea dependency; the
// platform handles input mapping, timing and terminal output.
type Game interface {
	// ID returns a stable identifier, used for logging and storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a new run. The RuntimeConfig provides screen
	// dimensions, the RNG seed and the clock mode.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one frame.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState

	// SetPaused suspends or resumes the simulation clock.
	SetPaused(paused bool)
}

// Character is a cosmetic penguin type that can be bought with coins.
type Character struct {
	ID          string
	Name        string
	Description string
	Cost        int        // Coins needed to unlock; 0 means always owned
	WindFactor  float64    // Multiplier applied to storm wind drift
	Hat         string     // Up to three cells drawn above the penguin
	Color       core.Color // Body color
}

// DefaultCharacterID is the character every profile owns from the start.
const DefaultCharacterID = "normal"

var (
	characters = make(map[string]Character)
	mu         sync.RWMutex
)

// Register adds a character to the catalog.
// Panics if a character with the same ID is already registered.
func Register(c Character) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := characters[c.ID]; exists {
		panic(fmt.Sprintf("registry: character %q already registered", c.ID))
	}
	if c.WindFactor == 0 {
		c.WindFactor = 1
	}
	characters[c.ID] = c
}

// List returns all registered characters ordered by cost, then ID.
func List() []Character {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Character, 0, len(characters))
	for _, c := range characters {
		result = append(result, c)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Cost != result[j].Cost {
			return result[i].Cost < result[j].Cost
		}
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns the character with the given ID.
func Get(id string) (Character, error) {
	mu.RLock()
	defer mu.RUnlock()

	c, ok := characters[id]
	if !ok {
		return Character{}, fmt.Errorf("registry: unknown character %q", id)
	}
	return c, nil
}

// Lookup returns the character with the given ID, falling back to the
// default character for unknown IDs.
func Lookup(id string) Character {
	if c, err := Get(id); err == nil {
		return c
	}
	if c, err := Get(DefaultCharacterID); err == nil {
		return c
	}
	return Character{ID: DefaultCharacterID, Name: "Penguin", WindFactor: 1}
}

// Exists checks if a character with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := characters[id]
	return ok
}
