package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ezrec/twopda/console"
)

// rootCmd with no subcommand starts the interactive console.
var rootCmd = &cobra.Command{
	Use:   "twopda",
	Short: "Two stack pushdown automaton simulator",
	Long: `twopda interprets user defined two stack pushdown automata: describe a
machine (alphabet, states, start and end states, transition relation),
feed it words, and watch it accept or reject them transition by
transition.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("dir")
		maxSteps, _ := cmd.Flags().GetInt("max-steps")
		verbose, _ := cmd.Flags().GetBool("verbose")

		c := console.New(os.Stdin, os.Stdout)
		c.Dir = dir
		c.MaxSteps = maxSteps
		c.Verbose = verbose

		return c.Main()
	},
}

func init() {
	rootCmd.PersistentFlags().Int("max-steps", 0, "Step budget per word (0 is unbounded)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log every applied transition")
	rootCmd.Flags().String("dir", ".", "Directory searched for machine files")
}
