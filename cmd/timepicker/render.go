package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-timepicker/pkg/orchestrator"
	"github.com/goliatone/go-timepicker/pkg/render"
	"github.com/goliatone/go-timepicker/pkg/renderers/html"
)

func newRenderCmd(flags *widgetFlags) *cobra.Command {
	var (
		name      string
		output    string
		templates string
	)
	cmd := &cobra.Command{
		Use:   "render [value]",
		Short: "Render the widget markup",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, catalog, err := flags.config(cmd)
			if err != nil {
				return err
			}
			renderer, err := html.New(html.WithTemplatesDir(templates))
			if err != nil {
				return err
			}
			registry := render.NewRegistry()
			if err := registry.Register(renderer); err != nil {
				return err
			}
			orch := orchestrator.New(
				orchestrator.WithCatalog(catalog),
				orchestrator.WithRegistry(registry),
			)
			result, err := orch.Generate(cmd.Context(), orchestrator.Request{
				Value:         firstArg(args),
				Config:        cfg,
				RenderOptions: render.RenderOptions{Name: name},
			})
			if err != nil {
				return err
			}
			if output == "" {
				_, err = cmd.OutOrStdout().Write(result.Output)
				return err
			}
			if err := os.WriteFile(output, result.Output, 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Widget written to %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Form field name of the backing input")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (stdout if empty)")
	cmd.Flags().StringVar(&templates, "templates", "", "Directory searched before the bundled templates")
	return cmd
}
