package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"busfinder/internal/booking"
)

func TestKeyHandler_LeaderSequence(t *testing.T) {
	reg := NewKeybindRegistry()
	fired := false
	reg.Bind("SPC 2", func() tea.Msg { fired = true; return nil })
	h := NewKeyHandler(reg)

	consumed, _ := h.Handle(keyMsg(" "))
	if !consumed {
		t.Fatal("leader key should be consumed")
	}
	if !h.LeaderWaiting {
		t.Fatal("expected leader mode after SPC")
	}

	consumed, cmd := h.Handle(keyMsg("2"))
	if !consumed || cmd == nil {
		t.Fatalf("SPC 2 should resolve to a command, consumed=%v cmd=%v", consumed, cmd)
	}
	cmd()
	if !fired {
		t.Error("bound command did not run")
	}
	if h.LeaderWaiting {
		t.Error("leader mode should end after dispatch")
	}
}

func TestKeyHandler_EscCancelsLeader(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC q", tea.Quit)
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "))
	consumed, cmd := h.Handle(keyMsg("esc"))
	if !consumed || cmd != nil {
		t.Errorf("esc in leader mode: consumed=%v cmd=%v", consumed, cmd)
	}
	if h.LeaderWaiting {
		t.Error("esc should cancel leader mode")
	}
}

func TestKeyHandler_UnboundKeyNotConsumed(t *testing.T) {
	h := NewKeyHandler(NewKeybindRegistry())
	consumed, _ := h.Handle(keyMsg("j"))
	if consumed {
		t.Error("unbound j should not be consumed")
	}
}

func TestKeyHandler_SingleKeyBinding(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	h := NewKeyHandler(reg)

	consumed, cmd := h.Handle(keyMsg("q"))
	if !consumed || cmd == nil {
		t.Errorf("bound single key: consumed=%v cmd=%v", consumed, cmd)
	}
}

func TestKeyHandler_UnknownSequenceEndsLeader(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC q", tea.Quit)
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "))
	consumed, cmd := h.Handle(keyMsg("x"))
	if !consumed || cmd != nil {
		t.Errorf("unknown sequence: consumed=%v cmd=%v", consumed, cmd)
	}
	if h.LeaderWaiting {
		t.Error("leader mode should end on unknown sequence")
	}
}

func TestLeaderHints_TabFilter(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDescForTab("SPC s", func() tea.Msg { return SearchMsg{} }, "Search Bus", []booking.Tab{booking.TabHome})

	home := reg.LeaderHints(booking.TabHome)
	if home["s"] != "Search Bus" || home["q"] != "Quit" {
		t.Errorf("home hints = %v", home)
	}

	routes := reg.LeaderHints(booking.TabRoutes)
	if _, ok := routes["s"]; ok {
		t.Error("search hint should be filtered off the Routes tab")
	}
	if routes["q"] != "Quit" {
		t.Errorf("quit hint should apply everywhere, got %v", routes)
	}
}

func TestNormalizeSeq(t *testing.T) {
	cases := map[string]string{
		"space q": "SPC q",
		"SPC 1":   "SPC 1",
		"q":       "q",
		"ctrl+c":  "ctrl+c",
	}
	for in, want := range cases {
		if got := normalizeSeq(in); got != want {
			t.Errorf("normalizeSeq(%q) = %q, want %q", in, got, want)
		}
	}
}

// keyMsg creates a tea.KeyMsg for testing. Bubble Tea uses KeyType and Runes.
// KeySpace.String() returns " ", KeyEsc returns "esc", etc.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "pgup":
		return tea.KeyMsg{Type: tea.KeyPgUp}
	case "pgdown":
		return tea.KeyMsg{Type: tea.KeyPgDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}
