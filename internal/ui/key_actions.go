package ui

import (
	"sort"
	"sync"

	"github.com/derailed/tcell/v2"
)

// ActionHandler handles a key action.
type ActionHandler func(*tcell.EventKey) *tcell.EventKey

// KeyAction represents a keyboard action.
type KeyAction struct {
	Description string
	Action      ActionHandler
	Visible     bool
}

// NewKeyAction returns a new keyboard action.
func NewKeyAction(d string, a ActionHandler, visible bool) KeyAction {
	return KeyAction{Description: d, Action: a, Visible: visible}
}

// KeyMap tracks key to action mappings.
type KeyMap map[tcell.Key]KeyAction

// KeyActions tracks mappings between keystrokes and actions.
type KeyActions struct {
	actions KeyMap
	mx      sync.RWMutex
}

// NewKeyActions returns a new instance.
func NewKeyActions() *KeyActions {
	return &KeyActions{actions: make(KeyMap)}
}

// Add adds a new key action.
func (a *KeyActions) Add(k tcell.Key, ka KeyAction) {
	a.mx.Lock()
	defer a.mx.Unlock()
	a.actions[k] = ka
}

// Bulk adds a series of key actions.
func (a *KeyActions) Bulk(kk KeyMap) {
	a.mx.Lock()
	defer a.mx.Unlock()
	for k, v := range kk {
		a.actions[k] = v
	}
}

// Get returns the action for a given key.
func (a *KeyActions) Get(k tcell.Key) (KeyAction, bool) {
	a.mx.RLock()
	defer a.mx.RUnlock()
	v, ok := a.actions[k]
	return v, ok
}

// Delete removes actions for the given keys.
func (a *KeyActions) Delete(kk ...tcell.Key) {
	a.mx.Lock()
	defer a.mx.Unlock()
	for _, k := range kk {
		delete(a.actions, k)
	}
}

// Hints returns the visible actions as menu hints, sorted by key name.
func (a *KeyActions) Hints() MenuHints {
	a.mx.RLock()
	defer a.mx.RUnlock()

	kk := make([]int, 0, len(a.actions))
	for k := range a.actions {
		kk = append(kk, int(k))
	}
	sort.Ints(kk)

	hh := make(MenuHints, 0, len(kk))
	for _, k := range kk {
		if name, ok := tcell.KeyNames[tcell.Key(k)]; ok {
			hh = append(hh, MenuHint{
				Mnemonic:    name,
				Description: a.actions[tcell.Key(k)].Description,
				Visible:     a.actions[tcell.Key(k)].Visible,
			})
		}
	}
	return hh
}
