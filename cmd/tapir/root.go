package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tapir",
	Short: "Tapir is a single-tape Turing machine simulator",
	Long:  `Tapir runs Turing machines described on the command line, with a reversible step history and an interactive session mode.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("log-level", "", "Enable step logging at this level (debug, info, warn, error)")
}
