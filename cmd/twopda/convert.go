package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ezrec/twopda/machine"
)

// convertCmd re-encodes a machine description between the plain text and
// YAML formats, dispatching on the output extension.
var convertCmd = &cobra.Command{
	Use:   "convert -o OUT FILE",
	Short: "Re-encode a machine description file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("output")

		m, err := machine.Load(args[0])
		if err != nil {
			return fmt.Errorf("%v: %w", args[0], err)
		}

		saved, err := machine.Save(out, m)
		if err != nil {
			return err
		}
		fmt.Printf("Machine saved to file: %v\n", saved)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringP("output", "o", "", "Output file (.txt, .yaml)")
	convertCmd.MarkFlagRequired("output")
}
