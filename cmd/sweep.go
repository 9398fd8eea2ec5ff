package cmd

import (
	"fmt"

	"github.com/samber/do"
	"github.com/spf13/cobra"

	"github.com/suggestbox/suggestbox/internal/bootstrap"
	"github.com/suggestbox/suggestbox/internal/config"
	mq "github.com/suggestbox/suggestbox/internal/infra/queue"
	"github.com/suggestbox/suggestbox/internal/sweeper"
)

var SweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Delete trashed suggestions past the retention window once and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		inj := bootstrap.BuildContainer()
		cfg, err := do.Invoke[*config.Config](inj)
		if err != nil {
			return err
		}
		if cfg.RabbitMQ.Enabled {
			p, err := do.Invoke[*mq.Publisher](inj)
			if err != nil {
				return err
			}
			defer func() { _ = p.Close() }()
		}

		sw, err := do.Invoke[*sweeper.Sweeper](inj)
		if err != nil {
			return err
		}
		n, err := sw.RunOnce(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "cleared %d trashed suggestions\n", n)
		return nil
	},
}
