package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	tpcomponent "github.com/goliatone/go-timepicker/components/timepicker"
)

func newConvertCmd(flags *widgetFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "convert [value]",
		Short: "Decode a value and print its components as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := flags.config(cmd)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(tpcomponent.Convert(firstArg(args), cfg))
		},
	}
}
