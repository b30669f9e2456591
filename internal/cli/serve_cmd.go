package cli

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexanderramin/wellspring/internal/api"
	"github.com/alexanderramin/wellspring/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newServeCmd(r *runner) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the insight API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = r.app.HTTPAddr
			}
			opts := r.app.API
			if opts.Clock == nil {
				opts.Clock = r.app.Clock
			}
			if r.flags.now != "" {
				now, err := r.now()
				if err != nil {
					return err
				}
				opts.Clock = func() time.Time { return now }
			}
			srv := api.NewServer(r.app.Insights, r.app.Routines, opts)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			fmt.Fprintf(cmd.OutOrStdout(), "%s Listening on %s\n", formatter.StyleGreen.Render("●"), formatter.Bold("http://"+addr))
			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from WELLSPRING_HTTP_ADDR)")
	return cmd
}
