// Package main implements the genomekit CLI: conversion between the
// symbol and name encodings of digital-organism genomes, instruction-set
// inspection, and run-output plotting.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"genomekit/internal/config"
	"genomekit/internal/instset"
)

var (
	// Global flags
	verbose     bool
	cfgPath     string
	instSetPath string

	// Loaded configuration
	cfg *config.Config

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "genomekit",
	Short: "genomekit - digital-organism genome tooling",
	Long: `genomekit converts digital-organism genomes between their two
encodings: the compact symbol string (one character per instruction) and
the readable listing (one instruction name per line).

The mapping between the encodings comes from an instruction-set table
file, written by the evolution run itself. Pass it with --inst-set, the
GENOMEKIT_INST_SET environment variable, or the config file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logger
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
		// Flag beats env beats config file.
		if instSetPath == "" {
			instSetPath = cfg.InstSet
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "genomekit.yaml", "Config file path")
	rootCmd.PersistentFlags().StringVarP(&instSetPath, "inst-set", "i", "", "Instruction-set table file (default from config)")

	rootCmd.AddCommand(toNamesCmd)
	rootCmd.AddCommand(toCharsCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(plotCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error!"), err)
		os.Exit(1)
	}
}

// loadTable loads the configured instruction-set table, surfacing any
// header warnings on stderr.
func loadTable() (*instset.Table, error) {
	logger.Debug("loading instruction set", zap.String("path", instSetPath))
	tbl, warnings, err := instset.NewLoader(logger).Load(instSetPath)
	if err != nil {
		return nil, err
	}
	for _, w := range warnings {
		fmt.Fprintln(os.Stderr, warnStyle.Render("Warning:"), w)
	}
	logger.Debug("instruction set loaded", zap.Int("instructions", tbl.Len()))
	return tbl, nil
}
