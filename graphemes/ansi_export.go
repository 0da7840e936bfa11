package graphemes

// ANSILen returns the byte length of a valid ANSI escape sequence (7-bit
// ESC-prefixed or 8-bit C1) at the start of data, or 0 if data does not
// begin with one. Exported for width.StrWidthANSI, which treats a detected
// sequence as zero-width and skips over it.
func ANSILen(data []byte) int {
	if n := ansiEscapeLength(data); n > 0 {
		return n
	}
	return ansiEscapeLength8Bit(data)
}
