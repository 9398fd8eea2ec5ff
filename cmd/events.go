package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/samber/do"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/suggestbox/suggestbox/internal/bootstrap"
	"github.com/suggestbox/suggestbox/internal/config"
	mq "github.com/suggestbox/suggestbox/internal/infra/queue"
)

var (
	eventsQueue    string
	eventsPatterns []string
)

var EventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Inspect domain events published to RabbitMQ",
}

var eventsTailCmd = &cobra.Command{
	Use:   "tail",
	Short: "Log every event published to the exchange until interrupted",
	RunE:  runEventsTail,
}

func init() {
	eventsTailCmd.Flags().StringVar(&eventsQueue, "queue", "", "durable queue to consume from (default: exclusive temporary queue)")
	eventsTailCmd.Flags().StringSliceVar(&eventsPatterns, "pattern", []string{"#"}, "routing key patterns to bind")
	EventsCmd.AddCommand(eventsTailCmd)
}

func runEventsTail(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	inj := bootstrap.BuildContainer()
	cfg, err := do.Invoke[*config.Config](inj)
	if err != nil {
		return err
	}
	if !cfg.RabbitMQ.Enabled {
		return errors.New("rabbitmq.enabled is false")
	}
	log := do.MustInvoke[*zap.Logger](inj)

	conn, err := do.Invoke[*amqp.Connection](inj)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	c, err := mq.NewConsumer(conn, eventsQueue, eventsPatterns, 0, log, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	err = c.Handle(ctx, func(ctx context.Context, d amqp.Delivery) error {
		log.Info("event", zap.String("routing_key", d.RoutingKey), zap.ByteString("body", d.Body))
		return nil
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
