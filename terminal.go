package promptline

import "fmt"

// clearSequence is the ANSI RIS (reset to initial state) escape, which
// clears the visible screen and scrollback on common terminals.
const clearSequence = "\x1bc"

// ClearTerminal writes the screen-clear escape sequence to the Console's
// output. Best effort: there is no error path, and terminals that ignore
// the sequence simply keep their contents.
func ClearTerminal(c *Console) {
	fmt.Fprint(c.out, clearSequence)
}
