package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-timepicker/pkg/i18n"
	"github.com/goliatone/go-timepicker/pkg/timevalue"
	"github.com/goliatone/go-timepicker/pkg/widget"
)

// widgetFlags mirror the widget option surface on every subcommand.
type widgetFlags struct {
	mode       string
	seconds    bool
	format     string
	separator  string
	units      bool
	locale     string
	configPath string
	localesDir string
}

func newRootCmd() *cobra.Command {
	flags := &widgetFlags{}
	root := &cobra.Command{
		Use:           "timepicker",
		Short:         "Convert, render and prompt for time-of-day values",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&flags.mode, "type", "t", string(timevalue.Mode12), "Clock mode: 12, 24 or 100")
	pf.BoolVarP(&flags.seconds, "second", "s", false, "Show and serialize seconds")
	pf.StringVarP(&flags.format, "format", "f", string(timevalue.FormatText), "Output format: time or number")
	pf.StringVar(&flags.separator, "spliter", timevalue.DefaultSeparator, "Field separator; empty hides it")
	pf.BoolVar(&flags.units, "units", false, "Show unit labels")
	pf.StringVarP(&flags.locale, "locale", "l", i18n.DefaultLocale, "Label locale")
	pf.StringVarP(&flags.configPath, "config", "c", "", "YAML or JSON file with widget options")
	pf.StringVar(&flags.localesDir, "locales", "", "Directory of extra locale tables")

	root.AddCommand(
		newConvertCmd(flags),
		newRenderCmd(flags),
		newPromptCmd(flags),
		newServeCmd(flags),
		newBindCmd(),
		newLintCmd(),
	)
	return root
}

// catalog returns the built-in locales plus the tables in --locales.
func (f *widgetFlags) catalog() (*i18n.Catalog, error) {
	catalog := i18n.NewCatalog()
	if f.localesDir == "" {
		return catalog, nil
	}
	if err := catalog.LoadFS(os.DirFS(f.localesDir)); err != nil {
		return nil, fmt.Errorf("load locales: %w", err)
	}
	return catalog, nil
}

// config starts from --config (or the defaults) and applies only the flags
// set on the command line.
func (f *widgetFlags) config(cmd *cobra.Command) (widget.Config, *i18n.Catalog, error) {
	catalog, err := f.catalog()
	if err != nil {
		return widget.Config{}, nil, err
	}

	cfg := widget.DefaultConfig()
	if f.configPath != "" {
		file, err := os.Open(f.configPath)
		if err != nil {
			return widget.Config{}, nil, fmt.Errorf("open config: %w", err)
		}
		defer func() { _ = file.Close() }()
		cfg, err = widget.LoadConfig(file, catalog)
		if err != nil {
			return widget.Config{}, nil, err
		}
	}

	changed := cmd.Flags().Changed
	fns := []widget.OptionFn{func(c *widget.Config) { *c = cfg }}
	if changed("type") {
		fns = append(fns, widget.WithType(f.mode))
	}
	if changed("second") {
		fns = append(fns, widget.WithSeconds(f.seconds))
	}
	if changed("format") {
		fns = append(fns, widget.WithFormat(timevalue.ParseFormat(f.format)))
	}
	if changed("spliter") {
		fns = append(fns, widget.WithSeparator(f.separator))
	}
	if changed("units") {
		fns = append(fns, widget.WithUnits(f.units))
	}
	if changed("locale") {
		fns = append(fns, widget.WithCatalogLocale(catalog, f.locale))
	}
	return widget.NewConfig(fns...), catalog, nil
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
