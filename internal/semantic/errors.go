package semantic

import (
	"fmt"

	"github.com/babych/go-pascal/pkg/token"
)

// Error is a semantic violation at a source position. Analysis stops at
// the first one.
type Error struct {
	Message string
	Pos     token.Position
}

func (e *Error) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s at %d:%d", e.Message, e.Pos.Line, e.Pos.Column)
	}
	return e.Message
}

func errorf(pos token.Position, format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...), Pos: pos}
}
