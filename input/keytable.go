package input

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that have no printable single-character name
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// Named special keys accepted in bindings
var keyNames = map[string]tcell.Key{
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"enter":     tcell.KeyEnter,
	"esc":       tcell.KeyEscape,
	"tab":       tcell.KeyTab,
	"backspace": tcell.KeyBackspace2,
	"f1":        tcell.KeyF1,
	"f2":        tcell.KeyF2,
	"ctrl+c":    tcell.KeyCtrlC,
	"ctrl+q":    tcell.KeyCtrlQ,
	"ctrl+r":    tcell.KeyCtrlR,
	"ctrl+s":    tcell.KeyCtrlS,
}

// KeyTable maps terminal keys to actions
type KeyTable struct {
	Keys  map[tcell.Key]Action
	Runes map[rune]Action
}

// DefaultKeyTable returns the stock bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[tcell.Key]Action{
			tcell.KeyUp:     ActionUp,
			tcell.KeyLeft:   ActionLeft,
			tcell.KeyRight:  ActionRight,
			tcell.KeyTab:    ActionToggleMode,
			tcell.KeyEnter:  ActionRestart,
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
			tcell.KeyCtrlS:  ActionMute,
		},
		Runes: map[rune]Action{
			' ': ActionUp,
			'w': ActionUp,
			'a': ActionLeft,
			'd': ActionRight,
			'm': ActionToggleMode,
			'p': ActionPause,
			'r': ActionRestart,
			'q': ActionQuit,
			'`': ActionMetrics,
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	out := &KeyTable{
		Keys:  make(map[tcell.Key]Action, len(kt.Keys)),
		Runes: make(map[rune]Action, len(kt.Runes)),
	}
	for k, v := range kt.Keys {
		out.Keys[k] = v
	}
	for r, v := range kt.Runes {
		out.Runes[r] = v
	}
	return out
}

// Resolve maps a key event's parts to an action
// Upper-case runes fall back to their lower-case binding so Shift or Caps Lock does not break controls
// Alt-modified runes are left to the terminal
func (kt *KeyTable) Resolve(key tcell.Key, r rune, mod tcell.ModMask) Action {
	if key != tcell.KeyRune {
		return kt.Keys[key]
	}
	if mod&tcell.ModAlt != 0 {
		return ActionNone
	}
	if a, ok := kt.Runes[r]; ok {
		return a
	}
	if lower := []rune(strings.ToLower(string(r))); len(lower) == 1 {
		return kt.Runes[lower[0]]
	}
	return ActionNone
}

// Bind applies config overrides: action name to key names
// Binding an action replaces its default keys; "none" unbinds the listed keys
func (kt *KeyTable) Bind(bindings map[string][]string) error {
	// Sorted for deterministic conflict resolution
	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		action, ok := ActionByName(strings.ToLower(strings.TrimSpace(name)))
		if !ok {
			return fmt.Errorf("unknown action: %q", name)
		}
		if action != ActionNone {
			kt.unbindAction(action)
		}
		for _, keyStr := range bindings[name] {
			if err := kt.bindKey(keyStr, action); err != nil {
				return fmt.Errorf("action %q: %w", name, err)
			}
		}
	}
	return nil
}

func (kt *KeyTable) unbindAction(a Action) {
	for k, v := range kt.Keys {
		if v == a {
			delete(kt.Keys, k)
		}
	}
	for r, v := range kt.Runes {
		if v == a {
			delete(kt.Runes, r)
		}
	}
}

func (kt *KeyTable) bindKey(keyStr string, a Action) error {
	name := strings.ToLower(strings.TrimSpace(keyStr))
	if k, ok := keyNames[name]; ok {
		if a == ActionNone {
			delete(kt.Keys, k)
		} else {
			kt.Keys[k] = a
		}
		return nil
	}

	r, err := resolveRune(keyStr)
	if err != nil {
		return err
	}
	if a == ActionNone {
		delete(kt.Runes, r)
	} else {
		kt.Runes[r] = a
	}
	return nil
}

// resolveRune accepts a single character or a named alias
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}
	return 0, fmt.Errorf("invalid key: %q (expected single character, alias or key name)", s)
}
