// Package cmd implements the pascalc command line interface.
package cmd

import (
	"bytes"
	goerrors "errors"
	"fmt"
	"os"

	"github.com/babych/go-pascal/internal/driver"
	"github.com/babych/go-pascal/internal/errors"
	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Exit codes: 0 on success, 1 on any compilation error, 2 on I/O error
// or bad arguments.
const (
	exitOK        = 0
	exitCompile   = 1
	exitUsageOrIO = 2
)

var (
	outputFile string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "pascalc <input.pas>",
	Short: "Pascal to three-address code compiler",
	Long: `pascalc compiles a Pascal source file into a textual three-address
intermediate representation (TAC).

The compiler runs four passes over the source: lexical scan, parsing,
semantic analysis and code generation. On success the TAC listing goes to
stdout (or to a file with -o); on failure the first diagnostic of the
failing phase is reported on stderr.`,
	Version:       Version,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          compileFile,
}

// Execute runs the root command and maps its outcome to an exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		var compileErr *errors.CompilerError
		if goerrors.As(err, &compileErr) {
			fmt.Fprintln(os.Stderr, compileErr.Format(true))
			return exitCompile
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitUsageOrIO
	}
	return exitOK
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "write TAC to this file instead of stdout")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "emit phase markers to stderr")
}

func compileFile(_ *cobra.Command, args []string) error {
	filename := args[0]

	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	opts := driver.Options{
		Source:  string(content),
		File:    filename,
		Verbose: verbose,
		Trace:   os.Stderr,
	}

	if outputFile == "" {
		return driver.Compile(opts, os.Stdout)
	}

	var buf bytes.Buffer
	if err := driver.Compile(opts, &buf); err != nil {
		return err
	}
	if err := os.WriteFile(outputFile, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", outputFile, err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "TAC written to %s (%d bytes)\n", outputFile, buf.Len())
	}
	return nil
}
