package cmd

import (
	"fmt"
	"os"

	"github.com/babych/go-pascal/internal/lexer"
	"github.com/babych/go-pascal/pkg/token"
	"github.com/spf13/cobra"
)

var lexCmd = &cobra.Command{
	Use:   "lex <input.pas>",
	Short: "Tokenize a Pascal file and print the token stream",
	Long: `Tokenize (lex) a Pascal program and print the resulting tokens, one
per line, in the form TYPE("literal") at line:column.

This command is useful for debugging the lexer and understanding how
source code is tokenized.`,
	Args: cobra.ExactArgs(1),
	RunE: lexFile,
}

func init() {
	rootCmd.AddCommand(lexCmd)
}

func lexFile(_ *cobra.Command, args []string) error {
	filename := args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	l := lexer.New(string(content))
	for {
		tok := l.NextToken()
		fmt.Println(tok)
		if tok.Type == token.EOF || tok.Type == token.ILLEGAL {
			break
		}
	}

	for _, lexErr := range l.Errors() {
		fmt.Fprintf(os.Stderr, "Lexical Error: %s at %s\n", lexErr.Message, lexErr.Pos)
	}
	return nil
}
