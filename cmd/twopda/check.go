package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ezrec/twopda/machine"
)

// checkCmd validates machine description files without running anything.
var checkCmd = &cobra.Command{
	Use:   "check FILE...",
	Short: "Validate machine description files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bad := 0
		for _, path := range args {
			m, err := machine.Load(path)
			if err == nil {
				err = m.Validate()
			}
			if err != nil {
				fmt.Printf("%v: %v\n", path, err)
				bad++
				continue
			}
			fmt.Printf("%v: ok (%v states, %v transitions)\n",
				path, len(m.States), len(m.Transitions))
		}

		if bad != 0 {
			return errors.New("one or more machine files are invalid")
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
