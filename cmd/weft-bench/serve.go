package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/weft-ui/weft"
)

func serveCmd() *cobra.Command {
	var (
		addr     string
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a live counter demo",
		Long: `Serve mounts a self-ticking counter component and exposes it at:

  GET /snapshot  current HTML
  GET /live      WebSocket patch stream`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := slog.New(slog.NewTextHandler(os.Stderr, nil))
			app := weft.NewApp(weft.Config{Logger: log})
			defer app.Close()

			count := weft.NewSignal(app.Runtime, 0)
			view := weft.Define("Ticker", func(weft.Props, []*weft.VNode) *weft.VNode {
				return weft.Div(weft.Class("ticker"),
					weft.H1("weft live demo"),
					weft.P(weft.Textf("ticks: %d", count.Get())),
				)
			})
			app.Mount(weft.Comp(view, nil))

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			go func() {
				ticker := time.NewTicker(interval)
				defer ticker.Stop()
				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
						count.Update(func(n int) int { return n + 1 })
					}
				}
			}()
			go app.Run(ctx)

			r := chi.NewRouter()
			r.Use(middleware.RequestID)
			r.Use(middleware.Recoverer)
			r.Mount("/", app.Handler())

			srv := &http.Server{Addr: addr, Handler: r}
			go func() {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				srv.Shutdown(shutdownCtx)
			}()

			fmt.Printf("serving on %s\n", addr)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().DurationVar(&interval, "interval", time.Second, "tick interval")

	return cmd
}
