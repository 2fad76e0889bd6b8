package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/immortal00111/4096base/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name       string
		msg        tea.KeyMsg
		wantAction core.Action
		wantQuit   bool
	}{
		{"w is up", runeKey('w'), core.ActionUp, false},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"k is up", runeKey('k'), core.ActionUp, false},
		{"s is down", runeKey('s'), core.ActionDown, false},
		{"j is down", runeKey('j'), core.ActionDown, false},
		{"a is left", runeKey('a'), core.ActionLeft, false},
		{"h is left", runeKey('h'), core.ActionLeft, false},
		{"d is right", runeKey('d'), core.ActionRight, false},
		{"l is right", runeKey('l'), core.ActionRight, false},
		{"enter confirms", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"p pauses", runeKey('p'), core.ActionPause, false},
		{"r restarts", runeKey('r'), core.ActionRestart, false},
		{"esc is back", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"q quits", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound key", runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, isQuit := km.MapKey(tt.msg)
			if action != tt.wantAction {
				t.Errorf("action = %v, want %v", action, tt.wantAction)
			}
			if isQuit != tt.wantQuit {
				t.Errorf("isQuit = %v, want %v", isQuit, tt.wantQuit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if quit := km.MapKeyToFrame(runeKey('a'), &frame); quit {
		t.Error("a should not be a quit request")
	}
	if !frame.Has(core.ActionLeft) {
		t.Error("frame should hold ActionLeft after mapping 'a'")
	}

	// An unbound key leaves the frame untouched
	km.MapKeyToFrame(runeKey('z'), &frame)
	if frame.Has(core.ActionNone) {
		t.Error("unbound keys must not record ActionNone")
	}

	if quit := km.MapKeyToFrame(runeKey('q'), &frame); !quit {
		t.Error("q should be reported as a quit request")
	}
}
