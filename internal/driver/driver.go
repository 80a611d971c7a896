// Package driver sequences the compiler phases: lexical scan, parse,
// semantic analysis and TAC generation. A phase runs to completion and
// either hands its artifact to the next phase or aborts the compilation
// with the first diagnostic; later phases never run after a failure.
package driver

import (
	"fmt"
	"io"

	"github.com/babych/go-pascal/internal/errors"
	"github.com/babych/go-pascal/internal/lexer"
	"github.com/babych/go-pascal/internal/parser"
	"github.com/babych/go-pascal/internal/semantic"
	"github.com/babych/go-pascal/internal/tac"
	"github.com/babych/go-pascal/pkg/token"
)

// Phase prefixes for diagnostics.
const (
	PhaseLexical  = "Lexical Error"
	PhaseSyntax   = "Syntax Error"
	PhaseSemantic = "Semantic Error"
)

// Options configures a single compilation.
type Options struct {
	// Source is the program text; File names it in diagnostics.
	Source string
	File   string

	// Verbose emits phase markers to Trace before each phase.
	Verbose bool

	// Trace receives phase markers; defaults to io.Discard.
	Trace io.Writer
}

// Compile runs the full pipeline over one source file and writes the TAC
// listing to out. The returned error is a *errors.CompilerError for any
// diagnostic the program provokes.
func Compile(opts Options, out io.Writer) error {
	trace := opts.Trace
	if trace == nil {
		trace = io.Discard
	}

	// Phase 1: lexical scan. The token stream itself is rebuilt for the
	// parser below; this pass exists to surface lexical diagnostics before
	// any parsing starts.
	if opts.Verbose {
		fmt.Fprintln(trace, "-- Lexing --")
	}
	scan := lexer.New(opts.Source)
	for {
		tok := scan.NextToken()
		if tok.Type == token.EOF || tok.Type == token.ILLEGAL {
			break
		}
	}
	if errs := scan.Errors(); len(errs) > 0 {
		first := errs[0]
		return errors.NewCompilerError(PhaseLexical, first.Pos, first.Message, opts.Source, opts.File)
	}

	// Phase 2: parse.
	if opts.Verbose {
		fmt.Fprintln(trace, "-- Parsing --")
	}
	p := parser.New(lexer.New(opts.Source))
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		first := errs[0]
		return errors.NewCompilerError(PhaseSyntax, first.Pos, first.Message, opts.Source, opts.File)
	}
	if program == nil {
		return errors.NewCompilerError(PhaseSyntax, token.Position{}, "empty program", opts.Source, opts.File)
	}

	// Phase 3: semantic analysis.
	if opts.Verbose {
		fmt.Fprintln(trace, "-- Semantic Analysis --")
	}
	analyzer := semantic.NewAnalyzer()
	if err := analyzer.Analyze(program); err != nil {
		if semErr, ok := err.(*semantic.Error); ok {
			return errors.NewCompilerError(PhaseSemantic, semErr.Pos, semErr.Message, opts.Source, opts.File)
		}
		return errors.NewCompilerError(PhaseSemantic, token.Position{}, err.Error(), opts.Source, opts.File)
	}

	// Phase 4: code generation. Counters start at zero for every
	// compilation, so identical input yields identical output.
	if opts.Verbose {
		fmt.Fprintln(trace, "-- Code Generation --")
	}
	generator := tac.NewGenerator()
	code, err := generator.Generate(program)
	if err != nil {
		return fmt.Errorf("code generation failed: %w", err)
	}

	if _, err := io.WriteString(out, code); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
