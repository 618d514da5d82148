package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tapirlabs/tapir/internal/cli"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [tape]",
	Short: "Run a machine against a tape",
	Long: `Builds a machine from --state and --transition declarations and runs it
against the given tape, printing the tape after every step.

A state declaration is "<id> <action>" where the action is L, R, H, Y or N.
The first declared state is the initial state. A transition declaration is
"<from> <to> <read> <write>".`,
	Run: func(cmd *cobra.Command, args []string) {
		tapeText, _ := cmd.Flags().GetString("tape")
		if !cmd.Flags().Changed("tape") && len(args) > 0 {
			tapeText = args[0]
		}
		states, _ := cmd.Flags().GetStringArray("state")
		transitions, _ := cmd.Flags().GetStringArray("transition")
		steps, _ := cmd.Flags().GetInt("steps")
		interactive, _ := cmd.Flags().GetBool("interactive")
		logLevel, _ := cmd.Flags().GetString("log-level")

		opts := cli.RunOptions{
			TapeText:    tapeText,
			States:      states,
			Transitions: transitions,
			Steps:       steps,
			Interactive: interactive,
			LogLevel:    logLevel,
		}

		if err := cli.Execute(opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("tape", "", "Initial tape text, e.g. \"[b] a a a b a\"")
	runCmd.Flags().StringArray("state", nil, "State declaration \"<id> <action>\" (repeatable)")
	runCmd.Flags().StringArray("transition", nil, "Transition declaration \"<from> <to> <read> <write>\" (repeatable)")
	runCmd.Flags().Int("steps", 0, "Stop after this many steps (0 means run until halted)")
	runCmd.Flags().BoolP("interactive", "i", false, "Start an interactive session instead of tracing")
}
