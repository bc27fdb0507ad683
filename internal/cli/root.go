// Package cli implements the command-line interface for nxnbld.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	// Global flags
	configFile string
	verbose    bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "nxnbld",
	Short: "Blindfolded memo for NxN cubes",
	Long: `nxnbld - Memorize scrambles of any NxN cube the way blindfolded solvers do.

Apply a scramble, print the letter-pair memo for every piece type (edges,
corners, wings, X-centers, T-centers and obliques), check a written memo
against the scrambles it was meant for, and follow a GoCube live.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default: ~/.nxnbld/nxnbld.yaml)")
	rootCmd.PersistentFlags().String("db", "", "Database file path (default: ~/.nxnbld/nxnbld.db)")
	rootCmd.PersistentFlags().IntP("size", "n", 3, "Cube size")
	rootCmd.PersistentFlags().String("lettering", "", "24 letter scheme (default: Speffz)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// debugf prints to stderr when --verbose is set.
func debugf(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
