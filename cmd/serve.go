package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/suggestbox/suggestbox/internal/bootstrap"
	"github.com/suggestbox/suggestbox/internal/config"
	"github.com/suggestbox/suggestbox/internal/graph"
	"github.com/suggestbox/suggestbox/internal/infra/cache"
	"github.com/suggestbox/suggestbox/internal/infra/db"
	mq "github.com/suggestbox/suggestbox/internal/infra/queue"
	"github.com/suggestbox/suggestbox/internal/modules/handler"
	"github.com/suggestbox/suggestbox/internal/modules/service"
	"github.com/suggestbox/suggestbox/internal/router"
	"github.com/suggestbox/suggestbox/internal/sweeper"
	"github.com/suggestbox/suggestbox/internal/telemetry"
	"github.com/suggestbox/suggestbox/internal/version"
)

const shutdownTimeout = 10 * time.Second

var ServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and the trash sweeper",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	inj := bootstrap.BuildContainer()
	cfg, err := do.Invoke[*config.Config](inj)
	if err != nil {
		return err
	}
	log := do.MustInvoke[*zap.Logger](inj)
	defer func() { _ = log.Sync() }()

	telemetryOn := cfg.Telemetry.Enabled && cfg.Telemetry.OtlpEndpoint != ""
	if telemetryOn {
		if _, err := telemetry.SetupTracing(cfg); err != nil {
			return err
		}
		if _, err := telemetry.SetupMetrics(cfg); err != nil {
			return err
		}
		if err := telemetry.InitSuggestionMetrics(); err != nil {
			log.Warn("init suggestion metrics", zap.Error(err))
		}
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			_ = telemetry.ShutdownMetrics(sctx)
			_ = telemetry.Shutdown(sctx)
		}()
	}

	d, err := do.Invoke[*gorm.DB](inj)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close(d) }()
	if telemetryOn {
		if err := db.RegisterOpenTelemetryPlugin(d); err != nil {
			log.Warn("register gorm tracing", zap.Error(err))
		}
	}

	if cfg.Redis.Enabled {
		rdb, err := do.Invoke[*redis.Client](inj)
		if err != nil {
			return err
		}
		defer func() { _ = cache.Close(rdb) }()
		if telemetryOn {
			if err := cache.RegisterOpenTelemetryPlugin(rdb); err != nil {
				log.Warn("register redis tracing", zap.Error(err))
			}
		}
	}

	if cfg.RabbitMQ.Enabled {
		p, err := do.Invoke[*mq.Publisher](inj)
		if err != nil {
			return err
		}
		defer func() { _ = p.Close() }()
	}

	engine := router.NewRouter(router.RouterDeps{
		Config:            cfg,
		Log:               log,
		TokenService:      do.MustInvoke[service.TokenService](inj),
		ProjectHandler:    do.MustInvoke[*handler.ProjectHandler](inj),
		SuggestionHandler: do.MustInvoke[*handler.SuggestionHandler](inj),
		TokenHandler:      do.MustInvoke[*handler.TokenHandler](inj),
		GraphQLHandler:    do.MustInvoke[*graph.Handler](inj),
	})

	srv := &http.Server{
		Addr:              cfg.App.Addr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server listening", zap.String("addr", cfg.App.Addr), zap.String("version", version.Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Info("shutting down server")
		return srv.Shutdown(sctx)
	})
	if cfg.Sweeper.Enabled {
		sw := do.MustInvoke[*sweeper.Sweeper](inj)
		g.Go(func() error { return sw.Run(gctx) })
	}

	return g.Wait()
}
