// Package cli assembles the application stack from configuration for the
// cobra commands: record store, session manager, catalog, collaborators,
// metrics, and the bot itself.
package cli

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	backend "github.com/redis/go-redis/v9"

	"github.com/macizomedia/editorBot/internal/chat"
	"github.com/macizomedia/editorBot/internal/config"
	"github.com/macizomedia/editorBot/internal/logging"
	"github.com/macizomedia/editorBot/internal/machine"
	"github.com/macizomedia/editorBot/internal/observability"
	"github.com/macizomedia/editorBot/internal/templates"
	"github.com/macizomedia/editorBot/pkg/adapters/memory"
	redisadapter "github.com/macizomedia/editorBot/pkg/adapters/redis"
	"github.com/macizomedia/editorBot/pkg/ports"
	"github.com/macizomedia/editorBot/pkg/session"
)

// Stack is everything a command needs, plus a Close for owned resources.
type Stack struct {
	Sessions *session.Manager
	Bot      *chat.Bot
	Catalog  ports.TemplateCatalog
	Registry *prometheus.Registry
	Logger   *slog.Logger

	closers []func() error
}

// Close releases owned resources (redis connections).
func (s *Stack) Close() error {
	var firstErr error
	for _, c := range s.closers {
		if err := c(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Build assembles the stack. The transcriber/mediator are the deterministic
// in-process stand-ins; production deployments swap them at this seam.
func Build(cfg config.Config) (*Stack, error) {
	logger := logging.New(logging.ParseLevel(cfg.LogLevel))

	stack := &Stack{Logger: logger}

	var store ports.RecordStore
	var sessionOpts []session.Option

	if cfg.Store == "redis" {
		client := backend.NewClient(&backend.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		rs := redisadapter.NewFromClient(client,
			redisadapter.WithTTL(time.Duration(cfg.Redis.TTLSeconds)*time.Second))
		store = rs
		sessionOpts = append(sessionOpts,
			session.WithLocker(redisadapter.NewLocker(client, "editorbot:session:")))
		stack.closers = append(stack.closers, rs.Close)
		logger.Info("using redis record store", "addr", cfg.Redis.Addr)
	} else {
		store = memory.NewStore()
		logger.Info("using in-memory record store")
	}

	sessionOpts = append(sessionOpts, session.WithLogger(logger))
	stack.Sessions = session.NewManager(store, sessionOpts...)

	if cfg.Catalog.URL != "" {
		stack.Catalog = templates.NewClient(cfg.Catalog.URL,
			templates.WithTimeout(time.Duration(cfg.Catalog.TimeoutSeconds)*time.Second),
			templates.WithLogger(logger))
		logger.Info("using remote template catalog", "url", cfg.Catalog.URL)
	} else {
		stack.Catalog = memory.NewCatalog(SeedTemplates()...)
		logger.Info("using built-in template catalog")
	}

	stack.Registry = prometheus.NewRegistry()
	metrics := observability.New(stack.Registry)

	stack.Bot = chat.New(
		stack.Sessions,
		machine.New(),
		stack.Catalog,
		&memory.Transcriber{Text: "Quiero contar por qué empecé a programar y qué aprendí en el camino."},
		&memory.Mediator{},
		chat.WithMetrics(metrics),
		chat.WithLogger(logger),
	)

	return stack, nil
}
