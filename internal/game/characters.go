package game

import (
	"github.com/vovakirdan/penguin-jump/internal/core"
	"github.com/vovakirdan/penguin-jump/internal/registry"
)

func init() {
	registry.Register(registry.Character{
		ID:          registry.DefaultCharacterID,
		Name:        "Penguin",
		Description: "Just a penguin.",
		Cost:        0,
		Color:       core.ColorBrightWhite,
	})
	registry.Register(registry.Character{
		ID:          "tinfoil",
		Name:        "Tinfoil Hat",
		Description: "They can't read your thoughts now.",
		Cost:        10,
		Hat:         "/^\\",
		Color:       core.ColorGray,
	})
	registry.Register(registry.Character{
		ID:          "parasol",
		Name:        "Parasol",
		Description: "Keeps the rain off.",
		Cost:        30,
		Hat:         "_T_",
		Color:       core.ColorOrange,
	})
	registry.Register(registry.Character{
		ID:          "shark",
		Name:        "Shark Costume",
		Description: "Heavier in the wind.",
		Cost:        50,
		Hat:         " A ",
		WindFactor:  0.75,
		Color:       core.ColorBrightBlue,
	})
}
