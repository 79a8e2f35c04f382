// Package cmd wires the interactive matrix-multiplication driver into a
// cobra command. The driver is deliberately flag-free: all inputs are read
// interactively from the terminal (see session.go).
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the sole command: it runs the prompt/multiply/compare loop
// until the user chooses to quit.
var rootCmd = &cobra.Command{
	Use:   "parmul",
	Short: "Multiply two random integer matrices sequentially and in parallel, then compare",
	Long: `parmul interactively reads the dimensions of two matrices and a worker
count, fills both matrices with random values in [1,10], computes their
product with the sequential and the thread-partitioned strategy, reports the
wall-clock time of each, and verifies that the two results are identical
cell for cell.`,
	Run: func(cmd *cobra.Command, args []string) {
		newSession(os.Stdin, os.Stdout).run()
	},
}

// Execute runs the root command. Cobra prints any usage error itself; a
// non-zero exit signals failure to the shell.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
