package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/searchkit/pkg/config"
	"github.com/dmitrymomot/searchkit/pkg/opensearch"
	"github.com/dmitrymomot/searchkit/pkg/probe"
)

func newProbeCommand(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Serve /livez and /readyz backed by the cluster healthcheck",
		Long: `Serve /livez and /readyz backed by the cluster healthcheck.

The server starts even when the cluster is unreachable; /readyz reports
NOT_READY until it answers. Settings: PROBE_ADDR, PROBE_SHUTDOWN_TIMEOUT,
PROBE_CHECK_TIMEOUT.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var pcfg probe.Config
			if err := config.Load(&pcfg); err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				pcfg.Addr = addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			opts, err := a.bootstrapOptions(ctx)
			if err != nil {
				return err
			}
			client, err := opensearch.New(ctx, a.cfg, opts...)
			if err != nil {
				return err
			}

			handler := probe.Router(a.log, []probe.Check{
				{Name: "opensearch", Func: opensearch.Healthcheck(client)},
			}, probe.WithCheckTimeout(pcfg.CheckTimeout))

			return probe.NewServer(pcfg, a.log).Run(ctx, handler)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides PROBE_ADDR)")
	return cmd
}
