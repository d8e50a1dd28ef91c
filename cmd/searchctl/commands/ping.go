package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/searchkit/pkg/logger"
	"github.com/dmitrymomot/searchkit/pkg/opensearch"
)

type pingResult struct {
	Address string                  `json:"address" yaml:"address"`
	Secured bool                    `json:"secured" yaml:"secured"`
	Auth    bool                    `json:"auth" yaml:"auth"`
	Latency string                  `json:"latency" yaml:"latency"`
	Cluster *opensearch.ClusterInfo `json:"cluster" yaml:"cluster"`
}

func newPingCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Connect to the cluster and print its identity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), a.timeout)
			defer cancel()

			opts, err := a.bootstrapOptions(ctx)
			if err != nil {
				return err
			}

			start := time.Now()
			client, err := opensearch.Connect(ctx, a.cfg, opts...)
			if err != nil {
				return err
			}
			info, err := opensearch.FetchInfo(ctx, client)
			if err != nil {
				return err
			}
			latency := time.Since(start).Round(time.Millisecond)

			res := pingResult{
				Address: a.cfg.Address(),
				Secured: a.cfg.Scheme.Encrypted(),
				Auth:    opensearch.NewCredential(a.cfg.Username, a.cfg.Password, logger.Discard()) != nil,
				Latency: latency.String(),
				Cluster: info,
			}
			return render(cmd.OutOrStdout(), a.output, res, []property{
				{"Address", res.Address},
				{"Cluster", info.ClusterName},
				{"Node", info.Name},
				{"Distribution", info.Version.Distribution},
				{"Version", info.Version.Number},
				{"TLS", yesNo(res.Secured)},
				{"Basic auth", yesNo(res.Auth)},
				{"Latency", res.Latency},
			})
		},
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
