package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-timepicker/pkg/openapi"
)

func newBindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bind <file|url>",
		Short: "List the time inputs of an OpenAPI document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := parseSource(args[0])
			if err != nil {
				return err
			}
			bindings, err := openapi.NewBinder().BindSource(cmd.Context(), src, openapi.WithHTTPFallback(10*time.Second))
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(bindings)
		},
	}
}

func newLintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lint <file>...",
		Short: "Report x-timepicker extensions that would fall back to defaults",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			binder := openapi.NewBinder()
			count := 0
			for _, path := range args {
				raw, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("lint %s: %w", path, err)
				}
				violations, err := binder.Lint(cmd.Context(), raw)
				if err != nil {
					return fmt.Errorf("lint %s: %w", path, err)
				}
				for _, v := range violations {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", path, v)
				}
				count += len(violations)
			}
			if count > 0 {
				return fmt.Errorf("%d violation(s)", count)
			}
			return nil
		},
	}
}

func parseSource(raw string) (openapi.Source, error) {
	path := strings.TrimSpace(raw)
	if path == "" {
		return nil, errors.New("source is required")
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return openapi.SourceFromURL(path)
	}
	return openapi.SourceFromFile(path), nil
}
