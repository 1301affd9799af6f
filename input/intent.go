package input

// IntentType discriminates what a key press means to the game
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit // Esc, Ctrl+C, q

	// Paddle intents
	IntentLeftUp    // w
	IntentLeftDown  // s
	IntentRightUp   // Up arrow
	IntentRightDown // Down arrow
)

func (i IntentType) String() string {
	switch i {
	case IntentQuit:
		return "Quit"
	case IntentLeftUp:
		return "LeftUp"
	case IntentLeftDown:
		return "LeftDown"
	case IntentRightUp:
		return "RightUp"
	case IntentRightDown:
		return "RightDown"
	default:
		return "None"
	}
}

// opposite is the intent a press of i cancels on the same paddle
func (i IntentType) opposite() IntentType {
	switch i {
	case IntentLeftUp:
		return IntentLeftDown
	case IntentLeftDown:
		return IntentLeftUp
	case IntentRightUp:
		return IntentRightDown
	case IntentRightDown:
		return IntentRightUp
	default:
		return IntentNone
	}
}
