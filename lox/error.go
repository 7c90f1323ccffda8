package lox

import "fmt"

// Error is a scan failure tied to the source line it originated on.
// Scanning stops at the first one; the caller receives no tokens
// alongside it.
type Error struct {
	Line    int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Message)
}
