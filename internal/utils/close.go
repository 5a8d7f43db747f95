package utils

import "io"

// Close closes c and ignores any error.
// Use for best-effort cleanup where the outcome is already decided.
func Close(c io.Closer) {
	if c == nil {
		return
	}
	_ = c.Close()
}
