package tui

import (
	"slices"
	"testing"

	"github.com/charmbracelet/bubbles/key"
)

func TestDefaultKeyMap_AllBindingsDefined(t *testing.T) {
	km := DefaultKeyMap()

	bindings := []struct {
		name    string
		binding key.Binding
	}{
		{"Quit", km.Quit},
		{"ToggleNth", km.ToggleNth},
		{"Next", km.Next},
		{"Prev", km.Prev},
		{"Toggle", km.Toggle},
		{"ShowAll", km.ShowAll},
	}

	for _, b := range bindings {
		t.Run(b.name, func(t *testing.T) {
			if !b.binding.Enabled() {
				t.Errorf("expected %s binding to be enabled", b.name)
			}
			if len(b.binding.Keys()) == 0 {
				t.Errorf("expected %s binding to have at least one key", b.name)
			}
			if b.binding.Help().Key == "" {
				t.Errorf("expected %s binding to have help", b.name)
			}
		})
	}
}

func TestDefaultKeyMap_QuitKeys(t *testing.T) {
	keys := DefaultKeyMap().Quit.Keys()
	for _, want := range []string{"q", "esc", "ctrl+c"} {
		if !slices.Contains(keys, want) {
			t.Errorf("expected Quit binding to include %q", want)
		}
	}
}

func TestDefaultKeyMap_ToggleDigits(t *testing.T) {
	keys := DefaultKeyMap().ToggleNth.Keys()
	if len(keys) != 9 || keys[0] != "1" || keys[8] != "9" {
		t.Errorf("ToggleNth keys = %v", keys)
	}
}
