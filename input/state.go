package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/skatters/game"
)

// KeyState turns terminal key presses into held paddle controls.
// Terminals report presses and auto-repeats but never releases, so a press
// counts as held until the hold window passes without a repeat. Pressing a
// direction releases the opposite direction of the same paddle.
type KeyState struct {
	table *KeyTable
	hold  time.Duration

	// heldUntil is indexed by IntentType
	heldUntil [IntentRightDown + 1]time.Time
	quit      bool
}

// NewKeyState creates a key state with the default key table
func NewKeyState(hold time.Duration) *KeyState {
	return &KeyState{
		table: DefaultKeyTable(),
		hold:  hold,
	}
}

// HandleEvent records a terminal event received at now
func (ks *KeyState) HandleEvent(ev tcell.Event, now time.Time) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return
	}

	intent := ks.table.Lookup(key)
	switch intent {
	case IntentNone:
		return
	case IntentQuit:
		ks.quit = true
	default:
		ks.heldUntil[intent] = now.Add(ks.hold)
		ks.heldUntil[intent.opposite()] = time.Time{}
	}
}

// Held reports whether a paddle intent is still held at now
func (ks *KeyState) Held(intent IntentType, now time.Time) bool {
	if intent <= IntentQuit || int(intent) >= len(ks.heldUntil) {
		return false
	}
	return now.Before(ks.heldUntil[intent])
}

// Inputs returns both players' controls at now
func (ks *KeyState) Inputs(now time.Time) (left, right game.Input) {
	left = game.Input{
		Up:   ks.Held(IntentLeftUp, now),
		Down: ks.Held(IntentLeftDown, now),
	}
	right = game.Input{
		Up:   ks.Held(IntentRightUp, now),
		Down: ks.Held(IntentRightDown, now),
	}
	return left, right
}

// QuitRequested reports whether a quit key has been pressed
func (ks *KeyState) QuitRequested() bool {
	return ks.quit
}
