package cmd

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rpgo/rent-vs-buy/internal/cache"
	"github.com/rpgo/rent-vs-buy/internal/journal"
	"github.com/rpgo/rent-vs-buy/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the calculator over HTTP",
	Long: `Serve exposes the calculator:

  GET  /api/simulate?<query>   simulate a query-string scenario (cached)
  POST /api/simulate           simulate a JSON scenario
  GET  /api/breakeven?<query>  solve the break-even rent
  POST /api/runs               simulate and save a run
  GET  /api/runs[/{id}]        list or fetch saved runs
  GET  /ws                     recompute on every JSON scenario message
  GET  /healthz                liveness`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

var (
	serveAddr      string
	serveNoJournal bool
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides server.addr)")
	serveCmd.Flags().BoolVar(&serveNoJournal, "no-journal", false, "disable the /api/runs endpoints")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if serveAddr != "" {
		settings.Server.Addr = serveAddr
	}

	resultCache, err := cache.New(settings.Cache)
	if err != nil {
		return err
	}
	if closer, ok := resultCache.(io.Closer); ok {
		defer closer.Close()
	}

	opts := []server.Option{
		server.WithLogger(logger),
		server.WithEngine(newEngine()),
		server.WithCache(resultCache, settings.Cache.TTL),
	}
	if !serveNoJournal {
		store, err := journal.Open(ctx, settings.Journal.Driver, settings.Journal.DSN, journal.WithLogger(logger))
		if err != nil {
			return fmt.Errorf("open journal: %w", err)
		}
		defer store.Close()
		opts = append(opts, server.WithJournal(store))
	}

	srv := server.New(settings.Server, opts...)
	defer srv.Close()

	logger.WithField("cache", settings.Cache.Driver).WithField("journal", settings.Journal.Driver).Info("starting server")
	return srv.ListenAndServe(ctx)
}
