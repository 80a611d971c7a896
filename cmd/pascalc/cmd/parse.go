package cmd

import (
	"fmt"
	"os"

	"github.com/babych/go-pascal/internal/lexer"
	"github.com/babych/go-pascal/internal/parser"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <input.pas>",
	Short: "Parse a Pascal file and print the AST",
	Long: `Parse a Pascal program and print the resulting abstract syntax tree
using the nodes' debug representation.

This command stops after the parsing phase; no semantic analysis or code
generation runs.`,
	Args: cobra.ExactArgs(1),
	RunE: parseFile,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func parseFile(_ *cobra.Command, args []string) error {
	filename := args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	p := parser.New(lexer.New(string(content)))
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		for _, perr := range errs {
			fmt.Fprintf(os.Stderr, "Syntax Error: %s\n", perr)
		}
		return fmt.Errorf("parsing failed with %d error(s)", len(errs))
	}

	fmt.Println(program.String())
	return nil
}
