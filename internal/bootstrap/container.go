package bootstrap

import (
	"context"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/suggestbox/suggestbox/internal/config"
	"github.com/suggestbox/suggestbox/internal/graph"
	"github.com/suggestbox/suggestbox/internal/infra/cache"
	"github.com/suggestbox/suggestbox/internal/infra/db"
	"github.com/suggestbox/suggestbox/internal/infra/logger"
	mq "github.com/suggestbox/suggestbox/internal/infra/queue"
	"github.com/suggestbox/suggestbox/internal/modules/handler"
	"github.com/suggestbox/suggestbox/internal/modules/repo"
	"github.com/suggestbox/suggestbox/internal/modules/service"
	"github.com/suggestbox/suggestbox/internal/sweeper"
)

func BuildContainer() *do.Injector {
	inj := do.New()

	// config
	do.Provide(inj, func(i *do.Injector) (*config.Config, error) {
		return config.Load()
	})

	// logger
	do.Provide(inj, func(i *do.Injector) (*zap.Logger, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return logger.New(cfg.Log.Level)
	})

	// DB
	do.Provide(inj, func(i *do.Injector) (*gorm.DB, error) {
		cfg := do.MustInvoke[*config.Config](i)
		log := do.MustInvoke[*zap.Logger](i)
		d, err := db.New(cfg)
		if err != nil {
			return nil, err
		}
		// [optional] auto migrate
		if cfg.Database.AutoMigrate {
			if err := db.Migrate(context.Background(), d, cfg.Database.Driver); err != nil {
				_ = db.Close(d)
				return nil, err
			}
			log.Info("database migrated", zap.String("driver", cfg.Database.Driver))
		}
		return d, nil
	})

	// Redis, only invoked when redis.enabled
	do.Provide(inj, func(i *do.Injector) (*redis.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return cache.New(context.Background(), cfg)
	})

	// token cache
	do.Provide(inj, func(i *do.Injector) (service.TokenCache, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if !cfg.Redis.Enabled {
			return service.NopTokenCache{}, nil
		}
		rdb, err := do.Invoke[*redis.Client](i)
		if err != nil {
			return nil, err
		}
		return cache.NewTokenCache(rdb, time.Duration(cfg.Redis.TokenTTLSec)*time.Second), nil
	})

	// RabbitMQ DialFunc for connection and reconnection
	do.Provide(inj, func(i *do.Injector) (mq.DialFunc, error) {
		return mq.NewDialFunc(do.MustInvoke[*config.Config](i)), nil
	})

	// RabbitMQ Connection, used by consumers
	do.Provide(inj, func(i *do.Injector) (*amqp.Connection, error) {
		dialFn := do.MustInvoke[mq.DialFunc](i)
		return dialFn()
	})

	// RabbitMQ Publisher, only invoked when rabbitmq.enabled
	do.Provide(inj, func(i *do.Injector) (*mq.Publisher, error) {
		return mq.NewPublisher(
			do.MustInvoke[mq.DialFunc](i),
			do.MustInvoke[*zap.Logger](i),
			do.MustInvoke[*config.Config](i),
		)
	})

	// event publisher; nil disables events
	do.Provide(inj, func(i *do.Injector) (service.EventPublisher, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if !cfg.RabbitMQ.Enabled {
			return nil, nil
		}
		p, err := do.Invoke[*mq.Publisher](i)
		if err != nil {
			return nil, err
		}
		return p, nil
	})

	// Repo
	do.Provide(inj, func(i *do.Injector) (repo.ProjectRepo, error) {
		return repo.NewProjectRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.TokenRepo, error) {
		return repo.NewTokenRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.SuggestionRepo, error) {
		return repo.NewSuggestionRepo(do.MustInvoke[*gorm.DB](i)), nil
	})

	// Service
	do.Provide(inj, func(i *do.Injector) (service.TokenService, error) {
		return service.NewTokenService(
			do.MustInvoke[repo.TokenRepo](i),
			do.MustInvoke[service.TokenCache](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ProjectService, error) {
		return service.NewProjectService(
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[service.TokenCache](i),
			do.MustInvoke[service.EventPublisher](i),
			do.MustInvoke[*config.Config](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.SuggestionService, error) {
		return service.NewSuggestionService(
			do.MustInvoke[repo.SuggestionRepo](i),
			do.MustInvoke[service.EventPublisher](i),
			do.MustInvoke[*config.Config](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})

	// Sweeper
	do.Provide(inj, func(i *do.Injector) (*sweeper.Sweeper, error) {
		return sweeper.New(
			do.MustInvoke[repo.SuggestionRepo](i),
			do.MustInvoke[service.EventPublisher](i),
			do.MustInvoke[*config.Config](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})

	// Handler
	do.Provide(inj, func(i *do.Injector) (*handler.ProjectHandler, error) {
		return handler.NewProjectHandler(do.MustInvoke[service.ProjectService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.SuggestionHandler, error) {
		return handler.NewSuggestionHandler(do.MustInvoke[service.SuggestionService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.TokenHandler, error) {
		return handler.NewTokenHandler(do.MustInvoke[service.TokenService](i)), nil
	})

	// GraphQL, nil when graphql.enabled is false
	do.Provide(inj, func(i *do.Injector) (*graph.Handler, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if !cfg.GraphQL.Enabled {
			return nil, nil
		}
		schema, err := graph.NewSchema(graph.NewResolver(
			do.MustInvoke[service.ProjectService](i),
			do.MustInvoke[service.SuggestionService](i),
			do.MustInvoke[service.TokenService](i),
			do.MustInvoke[*zap.Logger](i),
		))
		if err != nil {
			return nil, err
		}
		return graph.NewHandler(schema), nil
	})
	return inj
}
