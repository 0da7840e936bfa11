package graphemes

// Control bytes used by the ANSI escape sequence detectors in ansi.go and
// ansi8.go.
const (
	esc = 0x1B // ESCAPE
	bel = 0x07 // BELL, terminates OSC in 7-bit form
	st  = 0x9C // STRING TERMINATOR (C1)
	can = 0x18 // CANCEL
	sub = 0x1A // SUBSTITUTE
)
