package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/penguin-jump/internal/core"
	"github.com/vovakirdan/penguin-jump/internal/game"
	"github.com/vovakirdan/penguin-jump/internal/registry"
	"github.com/vovakirdan/penguin-jump/internal/storage"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper(false)
	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
		quit     bool
	}{
		{"space jumps", runes(" "), core.ActionJump, false},
		{"up jumps", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump, false},
		{"left steers", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"d steers right", runes("d"), core.ActionRight, false},
		{"p pauses", runes("p"), core.ActionPause, false},
		{"r restarts", runes("r"), core.ActionRestart, false},
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"q quits", runes("q"), core.ActionQuit, true},
		{"debug key ignored", runes("1"), core.ActionNone, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.expected || quit != tc.quit {
				t.Errorf("MapKey(%q) = %v, %v; expected %v, %v", tc.msg.String(), action, quit, tc.expected, tc.quit)
			}
		})
	}
}

func TestDebugKeys(t *testing.T) {
	km := NewKeyMapper(true)
	expected := map[string]core.Action{
		"1": core.ActionDebugStorm,
		"2": core.ActionDebugLightning,
		"3": core.ActionDebugShark,
		"4": core.ActionDebugMoney,
	}
	for k, want := range expected {
		if got, _ := km.MapKey(runes(k)); got != want {
			t.Errorf("key %s = %v, expected %v", k, got, want)
		}
	}
}

func TestShopBuysAndWears(t *testing.T) {
	store := storage.NewMemoryStore()
	store.AddCoins(40)

	m := NewShopModel(store, 80, 24)
	idx := -1
	for i, c := range m.characters {
		if c.ID == "parasol" {
			idx = i
		}
	}
	if idx < 0 {
		t.Fatal("parasol not in the catalog")
	}
	m.table.SetCursor(idx)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(ShopModel)

	p, _ := store.LoadProfile()
	if p.SelectedCharacter != "parasol" || p.TotalCoins != 10 {
		t.Errorf("after purchase: selected=%q coins=%d (%s)", p.SelectedCharacter, p.TotalCoins, m.Message())
	}

	// Wearing an owned character again costs nothing.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(ShopModel)
	if p, _ := store.LoadProfile(); p.TotalCoins != 10 {
		t.Errorf("re-selecting debited coins: %d", p.TotalCoins)
	}
}

func TestShopRefusesWhenPoor(t *testing.T) {
	store := storage.NewMemoryStore()
	m := NewShopModel(store, 80, 24)
	m.table.SetCursor(len(m.characters) - 1)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(ShopModel)
	if !strings.Contains(m.Message(), "costs") {
		t.Errorf("message = %q", m.Message())
	}
	if p, _ := store.LoadProfile(); p.SelectedCharacter != registry.DefaultCharacterID {
		t.Errorf("locked character was selected: %q", p.SelectedCharacter)
	}
}

func TestSessionFlow(t *testing.T) {
	store := storage.NewMemoryStore()
	cfg := core.DefaultConfig()
	cfg.Seed = 9
	m := NewSessionModel(SessionOptions{
		Store:  store,
		Config: cfg,
		NewGame: func() registry.Game {
			return game.New(game.Options{Store: store})
		},
	})

	step := func(msg tea.Msg) {
		t.Helper()
		next, _ := m.Update(msg)
		m = next.(SessionModel)
	}

	step(tea.KeyMsg{Type: tea.KeyDown})
	step(tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenShop {
		t.Fatalf("screen = %v, expected the shop", m.screen)
	}
	step(tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Fatalf("esc should return to the menu, screen = %v", m.screen)
	}

	step(tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame || m.gameModel == nil {
		t.Fatalf("enter on Play should start a game, screen = %v", m.screen)
	}
	for i := 0; i < 5; i++ {
		step(TickMsg{})
	}
	if !strings.Contains(m.View(), "Score") {
		t.Error("game view should show the HUD")
	}

	step(runes("p"))
	step(TickMsg{})
	step(tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Fatalf("esc while paused should return to the menu, screen = %v", m.screen)
	}

	next, cmd := m.Update(runes("q"))
	m = next.(SessionModel)
	if !m.quitting || cmd == nil {
		t.Error("q should quit the session")
	}
}

func TestRestartFromPause(t *testing.T) {
	store := storage.NewMemoryStore()
	cfg := core.DefaultConfig()
	cfg.Seed = 3
	cfg.FixedStep = true
	g := game.New(game.Options{Store: store})

	m := NewGameModel(g, cfg)
	m.Init()
	step := func(msg tea.Msg) {
		t.Helper()
		next, _ := m.Update(msg)
		m = next.(GameModel)
	}

	for i := 0; i < 30; i++ {
		step(TickMsg{})
	}
	before := g.Session().Time
	if before <= 0 {
		t.Fatalf("run did not advance, Time = %v", before)
	}

	// R during play is ignored
	step(runes("r"))
	step(TickMsg{})
	if g.Session().Time <= before {
		t.Fatal("R while playing should not restart the run")
	}

	step(runes("p"))
	step(TickMsg{})
	if !m.State().Paused {
		t.Fatal("P should pause")
	}

	step(runes("r"))
	step(TickMsg{})
	if m.State().Paused {
		t.Error("restart should leave the pause screen")
	}
	if got := g.Session().Time; got != 0 {
		t.Errorf("restart should begin a new run, Time = %v", got)
	}
	if m.BackToMenu() || m.IsQuitting() {
		t.Error("restart must stay in the game")
	}
}

func TestRenderScreenBackground(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColored(0, 0, "ice", core.ColorBrightCyan)
	s.SetBackground(10, 20, 30)
	out := RenderScreen(s)
	if !strings.Contains(out, "ice") {
		t.Errorf("rendered screen lost its text: %q", out)
	}
	if got := strings.Count(out, "\n"); got != 1 {
		t.Errorf("expected 2 rows, got %d newlines", got+1)
	}
}
