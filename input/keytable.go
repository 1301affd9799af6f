package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps terminal keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Esc)
	SpecialKeys map[tcell.Key]IntentType

	// Printable rune bindings, matched case-insensitively
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the stock bindings: W/S for the left paddle,
// arrows for the right paddle
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyUp:     IntentRightUp,
			tcell.KeyDown:   IntentRightDown,
		},
		Runes: map[rune]IntentType{
			'w': IntentLeftUp,
			's': IntentLeftDown,
			'q': IntentQuit,
		},
	}
}

// Lookup resolves a key event to its intent
func (kt *KeyTable) Lookup(ev *tcell.EventKey) IntentType {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		return kt.Runes[r]
	}
	return kt.SpecialKeys[ev.Key()]
}
