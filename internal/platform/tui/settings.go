package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/penguin-jump/internal/game"
	"github.com/vovakirdan/penguin-jump/internal/storage"
)

// MusicController starts and stops background music. *audio.Player
// satisfies it.
type MusicController interface {
	SetMusic(on bool)
}

// SettingsModel toggles music and sound effects.
type SettingsModel struct {
	store     storage.Profiles
	music     MusicController
	profile   game.Profile
	cursor    int
	width     int
	message   string
	keyMapper *KeyMapper
	quitting  bool
	goingBack bool
}

// NewSettingsModel creates the settings screen. music may be nil.
func NewSettingsModel(store storage.Profiles, music MusicController, width int) SettingsModel {
	m := SettingsModel{
		store:     store,
		music:     music,
		profile:   game.DefaultProfile(),
		width:     width,
		keyMapper: NewKeyMapper(false),
	}
	if store != nil {
		if p, err := store.LoadProfile(); err == nil {
			m.profile = p
		}
	}
	return m
}

// Init initializes the settings model.
func (m SettingsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the settings screen.
func (m SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.keyMapper.MapKeyToMenuAction(msg) {
		case MenuActionQuit:
			m.quitting = true
			return m, tea.Quit
		case MenuActionBack:
			m.goingBack = true
			return m, tea.Quit
		case MenuActionUp:
			m.cursor = 0
		case MenuActionDown:
			m.cursor = 1
		case MenuActionSelect:
			m.toggle()
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

func (m *SettingsModel) toggle() {
	if m.cursor == 0 {
		m.profile.MusicEnabled = !m.profile.MusicEnabled
	} else {
		m.profile.SoundEffectsEnabled = !m.profile.SoundEffectsEnabled
	}

	if m.store != nil {
		if err := m.store.SetSoundSettings(m.profile.MusicEnabled, m.profile.SoundEffectsEnabled); err != nil {
			m.message = "Could not save: " + err.Error()
		}
	}
	if m.cursor == 0 && m.music != nil {
		m.music.SetMusic(m.profile.MusicEnabled)
		if m.store != nil {
			//nolint:errcheck // Best-effort, only restores music on the next start
			m.store.SetMusicPlaying(m.profile.MusicEnabled)
		}
	}
}

// View renders the settings screen.
func (m SettingsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	onOff := func(v bool) string {
		if v {
			return "on"
		}
		return "off"
	}
	rows := []string{
		"Music          " + onOff(m.profile.MusicEnabled),
		"Sound effects  " + onOff(m.profile.SoundEffectsEnabled),
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("SETTINGS"), m.width))
	b.WriteString("\n\n")
	for i, r := range rows {
		line := "  " + r
		if i == m.cursor {
			line = pickStyle.Render("> " + r)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}
	if m.message != "" {
		b.WriteString("\n")
		b.WriteString(centerText(m.message, m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render("Enter: Toggle  |  Esc: Back  |  Q: Quit"), m.width))
	b.WriteString("\n")
	return b.String()
}

// Profile returns the settings as currently shown.
func (m SettingsModel) Profile() game.Profile {
	return m.profile
}

// IsGoingBack returns true if user wants to go back to menu.
func (m SettingsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m SettingsModel) IsQuitting() bool {
	return m.quitting
}

// RunSettings runs the settings screen on its own.
func RunSettings(store storage.Profiles, music MusicController, width int) error {
	_, err := tea.NewProgram(NewSettingsModel(store, music, width), tea.WithAltScreen()).Run()
	return err
}
