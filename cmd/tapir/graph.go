package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tapirlabs/tapir/internal/cli"
	"github.com/tapirlabs/tapir/internal/presentation/graph"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the state graph visualization",
	Long:  `Builds a machine from --state and --transition declarations and outputs a Mermaid diagram (graph TD) representing its state graph.`,
	Run: func(cmd *cobra.Command, args []string) {
		tapeText, _ := cmd.Flags().GetString("tape")
		states, _ := cmd.Flags().GetStringArray("state")
		transitions, _ := cmd.Flags().GetStringArray("transition")

		m, err := cli.BuildMachine(tapeText, states, transitions)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Print(graph.GenerateMermaid(m, nil))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)

	graphCmd.Flags().String("tape", "", "Initial tape text (unused by the diagram, accepted for symmetry)")
	graphCmd.Flags().StringArray("state", nil, "State declaration \"<id> <action>\" (repeatable)")
	graphCmd.Flags().StringArray("transition", nil, "Transition declaration \"<from> <to> <read> <write>\" (repeatable)")
}
