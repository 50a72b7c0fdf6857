package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ezrec/twopda/machine"
	"github.com/ezrec/twopda/simulator"
)

var errRejected = errors.New("one or more words rejected")

// runCmd simulates words against a machine file, non-interactively.
var runCmd = &cobra.Command{
	Use:   "run -m FILE WORD...",
	Short: "Run words through a machine description file",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("machine")
		trace, _ := cmd.Flags().GetBool("trace")
		maxSteps, _ := cmd.Flags().GetInt("max-steps")
		verbose, _ := cmd.Flags().GetBool("verbose")

		m, err := machine.Load(path)
		if err != nil {
			return fmt.Errorf("%v: %w", path, err)
		}

		sim, err := simulator.NewSimulator(m)
		if err != nil {
			return fmt.Errorf("%v: %w", path, err)
		}
		sim.MaxSteps = maxSteps
		sim.Verbose = verbose

		rejected := false
		for _, word := range args {
			res, err := sim.Simulate(word)
			if err != nil {
				return err
			}

			if trace {
				for _, step := range res.Trace {
					fmt.Printf("%v  stack1=[%v] stack2=[%v]\n", step.Transition,
						strings.Join(step.Stack1, " "), strings.Join(step.Stack2, " "))
				}
			}
			for _, fault := range res.Faults {
				fmt.Fprintf(os.Stderr, "fault: %v\n", fault)
			}

			if res.Accepted {
				fmt.Printf("Word %v accepted!\n", word)
			} else {
				fmt.Printf("Word %v failed!\n", word)
				rejected = true
			}
		}

		if rejected {
			return errRejected
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("machine", "m", "", "Machine description file")
	runCmd.MarkFlagRequired("machine")
	runCmd.Flags().Bool("trace", false, "Print every applied transition")
}
