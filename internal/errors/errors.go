// Package errors provides diagnostic formatting for the compiler.
// It renders errors with source context, line/column information, and a
// caret pointing at the error location.
package errors

import (
	"fmt"
	"strings"

	"github.com/babych/go-pascal/pkg/token"
)

// CompilerError is a single diagnostic with position and source context.
// Phase names the error taxon ("Lexical Error", "Syntax Error",
// "Semantic Error") and becomes the message prefix.
type CompilerError struct {
	Phase   string
	Message string
	Source  string
	File    string
	Pos     token.Position
}

// NewCompilerError creates a new compiler error.
func NewCompilerError(phase string, pos token.Position, message, source, file string) *CompilerError {
	return &CompilerError{
		Phase:   phase,
		Pos:     pos,
		Message: message,
		Source:  source,
		File:    file,
	}
}

// Error implements the error interface with the single-line form:
//
//	Syntax Error: expected ';', got 'begin' at 3:1
func (e *CompilerError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %s at %d:%d", e.Phase, e.Message, e.Pos.Line, e.Pos.Column)
	}
	return fmt.Sprintf("%s: %s", e.Phase, e.Message)
}

// Format renders the error with a source excerpt and caret.
// If color is true, ANSI color codes are used for terminal output.
func (e *CompilerError) Format(color bool) string {
	var sb strings.Builder

	if e.File != "" {
		fmt.Fprintf(&sb, "%s in %s:%d:%d\n", e.Phase, e.File, e.Pos.Line, e.Pos.Column)
	} else {
		fmt.Fprintf(&sb, "%s at line %d:%d\n", e.Phase, e.Pos.Line, e.Pos.Column)
	}

	sourceLine := e.getSourceLine(e.Pos.Line)
	if sourceLine != "" {
		lineNumStr := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(sourceLine)
		sb.WriteString("\n")

		caretCol := e.Pos.Column
		if caretCol < 1 {
			caretCol = 1
		}
		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+caretCol-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}
	return sb.String()
}

// getSourceLine extracts a specific 1-indexed line from the source code.
func (e *CompilerError) getSourceLine(lineNum int) string {
	if e.Source == "" {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return strings.TrimRight(lines[lineNum-1], "\r")
}
