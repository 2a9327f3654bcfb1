package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"planreport/internal/server"
	"planreport/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve reports over HTTP until interrupted",
	Long: `Serves reports at:

  GET /plans/{id}/report.pdf
  GET /programs/{id}/report.pdf`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer st.Close()

	gen, err := newGenerator(cfg)
	if err != nil {
		return err
	}

	return server.New(cfg.Server, st, gen, logger).ListenAndServe(ctx)
}
