package tui

import (
	"testing"

	"github.com/vovakirdan/colourgrid/internal/core"
	"github.com/vovakirdan/colourgrid/internal/registry"
	"github.com/vovakirdan/colourgrid/internal/styles"
)

func TestMapKey(t *testing.T) {
	k := DefaultKeyMap()

	tests := []struct {
		key      string
		expected core.Action
	}{
		{"q", core.ActionQuit},
		{"ctrl+c", core.ActionQuit},
		{"tab", core.ActionNextMode},
		{"shift+tab", core.ActionPrevMode},
		{"p", core.ActionPause},
		{"ctrl+s", core.ActionSnapshot},
		{"?", core.ActionHelp},
		{"1", core.ActionSetMode},
		{"x", core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			action, _ := k.MapKey(keyMsg(tc.key))
			if action != tc.expected {
				t.Errorf("MapKey(%q) = %v, expected %v", tc.key, action, tc.expected)
			}
		})
	}
}

func TestModeBindingsFollowRegistry(t *testing.T) {
	k := DefaultKeyMap()
	modes := registry.List()

	if len(k.Modes) != len(modes) {
		t.Fatalf("bindings = %d, modes = %d", len(k.Modes), len(modes))
	}

	_, id := k.MapKey(keyMsg("1"))
	if id != modes[0].ID {
		t.Errorf("key 1 = %q, expected %q", id, modes[0].ID)
	}
	if got := k.ModeKey(styles.ModeColour); got != "1" {
		t.Errorf("ModeKey(colour) = %q, expected 1", got)
	}
	if got := k.ModeKey("missing"); got != "" {
		t.Errorf("ModeKey(missing) = %q, expected empty", got)
	}
}
