// Package main implements the genomekit CLI commands.
// This file contains the two conversion commands.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"genomekit/internal/genome"
)

var (
	convertIn  string
	convertOut string
)

// toNamesCmd converts a symbol string into a name listing
var toNamesCmd = &cobra.Command{
	Use:   "to-names [symbols]",
	Short: "Convert a genome symbol string to an instruction-name listing",
	Long: `Converts a symbol-encoded genome into its readable form, one
instruction name per line. The symbols come from the positional argument
or, with --in, from a symbol-encoded organism file.

Example:
  genomekit to-names --inst-set inst_set.txt abcdef
  genomekit to-names --in dominant.org --out dominant_names.org`,
	Args: cobra.MaximumNArgs(1),
	RunE: runToNames,
}

// toCharsCmd converts a name listing back into a symbol string
var toCharsCmd = &cobra.Command{
	Use:   "to-chars",
	Short: "Convert an instruction-name organism file to a symbol string",
	Long: `Converts a name-encoded organism file (one instruction name per
line, blank lines ignored) into its compact symbol string.

Example:
  genomekit to-chars --in ancestor_extended.org --out ancestor_symbols.org`,
	RunE: runToChars,
}

func init() {
	toNamesCmd.Flags().StringVar(&convertIn, "in", "", "Symbol-encoded organism file (instead of a positional argument)")
	toNamesCmd.Flags().StringVar(&convertOut, "out", "", "Output file (empty string disables the file write)")

	toCharsCmd.Flags().StringVar(&convertIn, "in", "", "Name-encoded organism file (required)")
	toCharsCmd.Flags().StringVar(&convertOut, "out", "", "Output file (empty string disables the file write)")
	toCharsCmd.MarkFlagRequired("in")
}

// runToNames converts symbols to the name listing
func runToNames(cmd *cobra.Command, args []string) error {
	tbl, err := loadTable()
	if err != nil {
		return err
	}

	var names string
	switch {
	case convertIn != "" && len(args) > 0:
		return fmt.Errorf("pass either a symbol string or --in, not both")
	case convertIn != "":
		names, err = genome.DecodeFile(tbl, convertIn)
	case len(args) == 1:
		names, err = tbl.CharsToNames(strings.TrimSpace(args[0]))
	default:
		return fmt.Errorf("no symbols to convert: pass a symbol string or --in")
	}
	if err != nil {
		return err
	}

	fmt.Print(names)
	return writeResult(cmd, names, cfg.Output.Names)
}

// runToChars converts a name-encoded organism file to symbols
func runToChars(cmd *cobra.Command, args []string) error {
	tbl, err := loadTable()
	if err != nil {
		return err
	}

	symbols, err := genome.EncodeFile(tbl, convertIn)
	if err != nil {
		return err
	}

	fmt.Println(symbols)
	return writeResult(cmd, symbols, cfg.Output.Chars)
}

// writeResult writes s to the --out path, falling back to the configured
// default when the flag was not given. An empty resolved path skips the
// write.
func writeResult(cmd *cobra.Command, s, fallback string) error {
	out := convertOut
	if !cmd.Flags().Changed("out") {
		out = fallback
	}
	if out == "" {
		return nil
	}
	if err := genome.WriteString(out, s); err != nil {
		return err
	}
	logger.Debug("wrote conversion result", zap.String("path", out))
	fmt.Fprintln(os.Stderr, successStyle.Render("Wrote "+out))
	return nil
}
