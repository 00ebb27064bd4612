package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-timepicker/pkg/render"
	"github.com/goliatone/go-timepicker/pkg/renderers/tui"
	"github.com/goliatone/go-timepicker/pkg/widget"
)

func newPromptCmd(flags *widgetFlags) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "prompt [value]",
		Short: "Pick a time interactively in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := flags.config(cmd)
			if err != nil {
				return err
			}
			format := tui.OutputFormatValue
			if asJSON {
				format = tui.OutputFormatJSON
			}
			renderer, err := tui.New(
				tui.WithPromptDriver(tui.NewSurveyDriver(cmd.ErrOrStderr())),
				tui.WithOutputFormat(format),
				tui.WithTheme(tui.Theme{InfoPrefix: "selected: "}),
			)
			if err != nil {
				return err
			}
			w := widget.New(widget.NewStringField(firstArg(args)), widget.WithConfig(cfg))
			out, err := renderer.Render(cmd.Context(), w, render.RenderOptions{})
			if errors.Is(err, tui.ErrAborted) {
				return fmt.Errorf("prompt aborted")
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the value with its components as JSON")
	return cmd
}
