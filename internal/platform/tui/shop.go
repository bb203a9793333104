package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/penguin-jump/internal/game"
	"github.com/vovakirdan/penguin-jump/internal/registry"
	"github.com/vovakirdan/penguin-jump/internal/storage"
)

// ShopKeyMap defines the key bindings for the character shop.
type ShopKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ShopKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ShopKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Back, k.Quit},
	}
}

// DefaultShopKeyMap returns default key bindings.
func DefaultShopKeyMap() ShopKeyMap {
	return ShopKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "buy / wear"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShopModel lists the characters, buys locked ones and selects owned ones.
type ShopModel struct {
	store      storage.Profiles
	characters []registry.Character
	profile    game.Profile
	table      table.Model
	help       help.Model
	keys       ShopKeyMap
	message    string
	width      int
	height     int
	quitting   bool
	goingBack  bool
}

// NewShopModel creates the shop over the given store.
func NewShopModel(store storage.Profiles, width, height int) ShopModel {
	m := ShopModel{
		store:      store,
		characters: registry.List(),
		profile:    game.DefaultProfile(),
		help:       help.New(),
		keys:       DefaultShopKeyMap(),
		width:      width,
		height:     height,
	}
	m.table = m.createTable()
	m.reload()
	return m
}

func (m *ShopModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Penguin", Width: 14},
		{Title: "Hat", Width: 5},
		{Title: "Cost", Width: 6},
		{Title: "Wind", Width: 6},
		{Title: "Status", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(min(len(m.characters)+1, max(m.height-10, 3))),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("24")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// reload reads the profile and refreshes the rows.
func (m *ShopModel) reload() {
	if m.store != nil {
		p, err := m.store.LoadProfile()
		if err != nil {
			m.message = "Could not load profile: " + err.Error()
		} else {
			m.profile = p
		}
	}

	rows := make([]table.Row, len(m.characters))
	for i, c := range m.characters {
		status := "locked"
		switch {
		case c.ID == m.profile.SelectedCharacter:
			status = "wearing"
		case m.profile.IsUnlocked(c):
			status = "owned"
		}
		hat := strings.TrimSpace(c.Hat)
		if hat == "" {
			hat = "-"
		}
		rows[i] = table.Row{
			c.Name,
			hat,
			fmt.Sprintf("%d", c.Cost),
			fmt.Sprintf("x%.2f", c.WindFactor),
			status,
		}
	}
	m.table.SetRows(rows)
}

// Init initializes the shop model.
func (m ShopModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the shop.
func (m ShopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			m.choose()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.reload()
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// choose buys the highlighted character if needed, then wears it.
func (m *ShopModel) choose() {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.characters) {
		return
	}
	c := m.characters[i]
	if m.store == nil {
		m.message = "No profile database; characters cannot be changed."
		return
	}

	if !m.profile.IsUnlocked(c) {
		left, err := m.store.Unlock(c.ID)
		switch {
		case errors.Is(err, storage.ErrInsufficientCoins):
			m.message = fmt.Sprintf("%s costs %d coins; you have %d.", c.Name, c.Cost, left)
			return
		case err != nil:
			m.message = "Purchase failed: " + err.Error()
			return
		}
		m.message = fmt.Sprintf("Unlocked %s! %d coins left.", c.Name, left)
	} else {
		m.message = fmt.Sprintf("Wearing %s.", c.Name)
	}

	if err := m.store.SelectCharacter(c.ID); err != nil {
		m.message = "Could not select: " + err.Error()
	}
	m.reload()
	m.table.SetCursor(i)
}

// View renders the shop.
func (m ShopModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("CHARACTERS"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(coinStyle.Render(fmt.Sprintf("Coins: %d", m.profile.TotalCoins)), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerBlock(tableStyle.Render(m.table.View()), m.width))
	b.WriteString("\n")

	if m.message != "" {
		b.WriteString(centerText(m.message, m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// Message returns the last purchase or selection message.
func (m ShopModel) Message() string {
	return m.message
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ShopModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ShopModel) IsQuitting() bool {
	return m.quitting
}

// centerBlock centers a multi-line block as a whole.
func centerBlock(block string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}

// RunShop runs the character shop on its own.
func RunShop(store storage.Profiles, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewShopModel(store, width, height), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(ShopModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
