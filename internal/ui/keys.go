package ui

import "github.com/derailed/tcell/v2"

// Rune keys, folded into the tcell key space so KeyActions can map them.
const (
	KeyJ tcell.Key = tcell.Key(106)
	KeyK tcell.Key = tcell.Key(107)
	KeyQ tcell.Key = tcell.Key(113)
	KeyS tcell.Key = tcell.Key(115)

	KeyHelp tcell.Key = tcell.Key(63)
)

func init() {
	tcell.KeyNames[KeyJ] = "j"
	tcell.KeyNames[KeyK] = "k"
	tcell.KeyNames[KeyQ] = "q"
	tcell.KeyNames[KeyS] = "s"
	tcell.KeyNames[KeyHelp] = "?"
}

// AsKey maps a key event to a key actions entry: rune events fold into
// the key space above.
func AsKey(evt *tcell.EventKey) tcell.Key {
	if evt.Key() != tcell.KeyRune {
		return evt.Key()
	}
	return tcell.Key(evt.Rune())
}
