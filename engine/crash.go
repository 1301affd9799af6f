package engine

// CrashHandler restores the display and reports a recovered panic.
// The handler decides whether the process survives; the terminal one exits.
type CrashHandler func(r any)

// Go runs fn in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword so a crash in a worker still resets the terminal.
func Go(h CrashHandler, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil && h != nil {
				h(r)
			}
		}()
		fn()
	}()
}
