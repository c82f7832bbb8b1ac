// Package database keeps the single MongoDB client shared by the process.
package database

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/DrummDaddy/Event_service/internal/config"
	"github.com/DrummDaddy/Event_service/internal/logger"
	"github.com/DrummDaddy/Event_service/internal/metrics"
	"github.com/DrummDaddy/Event_service/internal/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"golang.org/x/sync/singleflight"
)

// Connector opens a client and verifies the server is reachable.
type Connector func(ctx context.Context, uri string) (*mongo.Client, error)

// Manager lazily opens one client and hands the same one to every caller.
// Concurrent first calls share a single connection attempt; a failed attempt
// is not cached.
type Manager struct {
	cfg     config.MongoConfig
	connect Connector
	logger  *slog.Logger

	group  singleflight.Group
	mu     sync.RWMutex
	client *mongo.Client
}

type Option func(*Manager)

func WithConnector(c Connector) Option {
	return func(m *Manager) { m.connect = c }
}

func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) { m.logger = l }
}

func NewManager(cfg config.MongoConfig, opts ...Option) (*Manager, error) {
	if cfg.URI == "" {
		return nil, &models.ConfigurationError{Key: "MONGODB_URI", Msg: "connection string is empty"}
	}
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = 10 * time.Second
	}
	m := &Manager{
		cfg:     cfg,
		connect: dial,
		logger:  logger.Discard(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Acquire returns the cached client, connecting first if needed.
func (m *Manager) Acquire(ctx context.Context) (*mongo.Client, error) {
	if c := m.cached(); c != nil {
		return c, nil
	}

	ch := m.group.DoChan(m.cfg.URI, func() (any, error) {
		if c := m.cached(); c != nil {
			return c, nil
		}
		// the attempt outlives any single caller that gives up waiting
		attemptCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), m.cfg.ConnectTimeout)
		defer cancel()

		client, err := m.connect(attemptCtx, m.cfg.URI)
		if err != nil {
			metrics.ConnectAttempts.WithLabelValues("failure").Inc()
			m.logger.Error("mongodb connection error", "error", err)
			return nil, &models.ConnectionError{Err: err}
		}
		metrics.ConnectAttempts.WithLabelValues("success").Inc()
		m.logger.Info("mongodb connected successfully", "database", m.cfg.Database)

		m.mu.Lock()
		m.client = client
		m.mu.Unlock()
		return client, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*mongo.Client), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Database returns the configured database on the shared client.
func (m *Manager) Database(ctx context.Context) (*mongo.Database, error) {
	client, err := m.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return client.Database(m.cfg.Database), nil
}

// Disconnect closes the cached client, if any. A later Acquire reconnects.
func (m *Manager) Disconnect(ctx context.Context) error {
	m.mu.Lock()
	client := m.client
	m.client = nil
	m.mu.Unlock()
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}

func (m *Manager) cached() *mongo.Client {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.client
}

// dial is the Connector used when none is given.
var dial Connector = Dial

// Dial is the production Connector.
func Dial(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return client, nil
}

var (
	defaultOnce    sync.Once
	defaultManager *Manager
	defaultErr     error
)

// Default returns the process-wide manager built from the environment. It is
// built once; a configuration error is returned to every caller.
func Default() (*Manager, error) {
	defaultOnce.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			defaultErr = err
			return
		}
		defaultManager, defaultErr = NewManager(cfg.Mongo,
			WithLogger(logger.New(cfg.Environment, cfg.LogLevel)))
	})
	return defaultManager, defaultErr
}

// Connect acquires the process-wide client and returns its database.
func Connect(ctx context.Context) (*mongo.Database, error) {
	m, err := Default()
	if err != nil {
		return nil, err
	}
	return m.Database(ctx)
}
