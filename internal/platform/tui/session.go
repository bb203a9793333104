package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/penguin-jump/internal/core"
	"github.com/vovakirdan/penguin-jump/internal/registry"
	"github.com/vovakirdan/penguin-jump/internal/storage"
)

// screen is the screen a session is showing.
type screen int

const (
	screenMenu screen = iota
	screenGame
	screenShop
	screenScores
	screenSettings
)

// SessionOptions wires a session to its collaborators.
type SessionOptions struct {
	Store   storage.Profiles   // May be nil
	Music   MusicController    // May be nil
	NewGame func() registry.Game
	Config  core.RuntimeConfig
	Player  string
}

// SessionModel manages the full flow: menu -> game/shop/scores/settings -> menu.
// This is the top-level model used for local play and SSH sessions.
type SessionModel struct {
	opts      SessionOptions
	sessionID string
	config    core.RuntimeConfig
	screen    screen
	menu      MenuModel
	gameModel *GameModel
	shop      ShopModel
	scores    ScoreboardModel
	settings  SettingsModel
	quitting  bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(opts SessionOptions) SessionModel {
	return SessionModel{
		opts:      opts,
		sessionID: uuid.NewString(),
		config:    opts.Config,
		menu:      NewMenuModel(opts.Store, opts.Config),
	}
}

// ID returns the session's unique ID.
func (m SessionModel) ID() string {
	return m.sessionID
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenShop:
		return m.updateShop(msg)
	case screenScores:
		return m.updateScores(msg)
	case screenSettings:
		return m.updateSettings(msg)
	}
	return m.updateMenu(msg)
}

// toMenu returns to a freshly loaded menu.
func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.gameModel = nil
	m.menu = NewMenuModel(m.opts.Store, m.config)
	return m, m.menu.Init()
}

func (m SessionModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

// updateMenu handles updates when in menu mode. The menu ends its own
// program on selection, so its command is dropped once a choice is made.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch m.menu.Selected() {
	case ChoiceQuit:
		return m.quit()

	case ChoicePlay:
		m.config = m.menu.Config()
		gm := NewGameModel(m.opts.NewGame(), m.config)
		m.gameModel = &gm
		m.screen = screenGame
		return m, m.gameModel.Init()

	case ChoiceCharacters:
		m.shop = NewShopModel(m.opts.Store, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenShop
		return m, m.shop.Init()

	case ChoiceScores:
		m.scores = NewScoreboardModel(m.opts.Store, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenScores
		return m, m.scores.Init()

	case ChoiceSettings:
		m.settings = NewSettingsModel(m.opts.Store, m.opts.Music, m.config.ScreenW)
		m.screen = screenSettings
		return m, m.settings.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.IsQuitting() {
		return m.quit()
	}
	if m.gameModel.BackToMenu() {
		return m.toMenu()
	}

	return m, cmd
}

func (m SessionModel) updateShop(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.shop.Update(msg)
	if shop, ok := newModel.(ShopModel); ok {
		m.shop = shop
	}
	switch {
	case m.shop.IsQuitting():
		return m.quit()
	case m.shop.IsGoingBack():
		return m.toMenu()
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	if scores, ok := newModel.(ScoreboardModel); ok {
		m.scores = scores
	}
	switch {
	case m.scores.IsQuitting():
		return m.quit()
	case m.scores.IsGoingBack():
		return m.toMenu()
	}
	return m, cmd
}

func (m SessionModel) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.settings.Update(msg)
	if settings, ok := newModel.(SettingsModel); ok {
		m.settings = settings
	}
	switch {
	case m.settings.IsQuitting():
		return m.quit()
	case m.settings.IsGoingBack():
		return m.toMenu()
	}
	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.gameModel.View()
	case screenShop:
		return m.shop.View()
	case screenScores:
		return m.scores.View()
	case screenSettings:
		return m.settings.View()
	}
	return m.menu.View()
}

// RunSession runs the menu-driven session in the local terminal.
func RunSession(opts SessionOptions) error {
	p := tea.NewProgram(
		NewSessionModel(opts),
		tea.WithAltScreen(),
		tea.WithReportFocus(),
	)
	_, err := p.Run()
	return err
}
