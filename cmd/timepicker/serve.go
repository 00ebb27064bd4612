package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	timepicker "github.com/goliatone/go-timepicker"
	tpcomponent "github.com/goliatone/go-timepicker/components/timepicker"
)

func newServeCmd(flags *widgetFlags) *cobra.Command {
	var (
		addr     string
		basePath string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the conversion and markup endpoints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, catalog, err := flags.config(cmd)
			if err != nil {
				return err
			}
			logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

			mux := http.NewServeMux()
			routes, err := tpcomponent.RegisterRoutes(mux, basePath,
				tpcomponent.WithDefaults(cfg),
				tpcomponent.WithCatalog(catalog),
				tpcomponent.WithLogger(logger),
			)
			if err != nil {
				return err
			}
			mux.Handle("/runtime/", http.StripPrefix("/runtime/", http.FileServerFS(timepicker.RuntimeAssetsFS())))

			srv := &http.Server{
				Addr:              addr,
				Handler:           mux,
				ReadHeaderTimeout: 5 * time.Second,
			}
			errc := make(chan error, 1)
			go func() {
				logger.Info("serving", "addr", addr, "convert", routes.Convert, "markup", routes.Markup)
				errc <- srv.ListenAndServe()
			}()

			select {
			case err := <-errc:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-cmd.Context().Done():
				logger.Info("shutting down")
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				return srv.Shutdown(ctx)
			}
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")
	cmd.Flags().StringVar(&basePath, "base", "", "Base path for the routes")
	return cmd
}
