package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tapirlabs/tapir"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of tapir",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tapir version %s\n", strings.TrimSpace(tapir.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
