// Package main provides the entry point for redisgate-server.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/redisgate/redisgate-go/internal/core/service"
	"github.com/redisgate/redisgate-go/internal/infra/buildinfo"
	"github.com/redisgate/redisgate-go/internal/infra/confloader"
	"github.com/redisgate/redisgate-go/internal/infra/shutdown"
	"github.com/redisgate/redisgate-go/internal/server/config"
	"github.com/redisgate/redisgate-go/internal/server/httpserver"
	"github.com/redisgate/redisgate-go/internal/server/httpserver/handler"
	"github.com/redisgate/redisgate-go/internal/store"
	"github.com/redisgate/redisgate-go/internal/telemetry/logger"
	"github.com/redisgate/redisgate-go/internal/telemetry/metric"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configFile  = flag.String("config", "", "Path to configuration file")
		showVersion = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("redisgate-server %s\n", buildinfo.String())
		return nil
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := initLogger(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	log.Info("starting redisgate-server",
		"version", buildinfo.Version,
		"commit", buildinfo.Commit,
		"config_file", *configFile,
	)
	logConfig(log, cfg)

	// The store connects lazily: the first proxied command dials Redis.
	provider := store.NewProvider(func() (store.Store, error) {
		return store.New(store.Options{
			Host:             cfg.Redis.Host,
			Port:             cfg.Redis.Port,
			Database:         cfg.Redis.Database,
			Password:         cfg.Redis.Password,
			SentinelAddrs:    cfg.Sentinel.Addrs,
			MasterName:       cfg.Sentinel.Master,
			SentinelPassword: cfg.Sentinel.Password,
			AutoPipelining:   cfg.Redis.AutoPipelining,
		})
	})

	var reg *metric.Registry
	if cfg.Server.Metrics != "" {
		reg = metric.NewRegistry()
		reg.MustRegister(metric.NewStoreCollector(poolStats(provider)))
	}

	svcOpts := []service.ProxyOption{}
	if reg != nil {
		svcOpts = append(svcOpts, service.WithMetrics(reg))
	}
	proxy := service.NewProxyService(provider, svcOpts...)

	gateway := handler.New(proxy, cfg.Auth.Token)

	router := httpserver.NewRouter(&httpserver.RouterConfig{
		Handler:   gateway,
		Logger:    log,
		RateLimit: cfg.Server.RateLimit,
		Metrics:   reg,
	})

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	httpServer := httpserver.New(addr, router)

	sd := shutdown.NewHandler(30 * time.Second)
	sd.OnShutdown("http server", httpServer.Shutdown)
	sd.OnShutdown("store client", func(context.Context) error {
		return provider.Close()
	})

	go func() {
		log.Info("gateway listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("gateway server error", "error", err)
		}
	}()

	if cfg.Server.Metrics != "" {
		metricsServer := metric.NewServer(cfg.Server.Metrics, reg)
		sd.OnShutdown("metrics server", metricsServer.Shutdown)
		go func() {
			log.Info("metrics listening", "addr", cfg.Server.Metrics)
			if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Error("metrics server error", "error", err)
			}
		}()
	}

	if *configFile != "" {
		watcher, err := watchConfig(*configFile, cfg, gateway, log)
		if err != nil {
			log.Warn("config watcher unavailable", "error", err)
		} else {
			sd.OnShutdown("config watcher", func(context.Context) error {
				return watcher.Stop()
			})
		}
	}

	if err := sd.Wait(); err != nil {
		return err
	}

	log.Info("gateway stopped")
	return nil
}

// loadConfig layers file and environment over defaults and validates.
func loadConfig(configFile string) (*config.Config, error) {
	cfg := config.Default()

	opts := []confloader.Option{}
	if configFile != "" {
		opts = append(opts, confloader.WithConfigFile(configFile))
	}

	if err := confloader.NewLoader(opts...).Load(cfg); err != nil {
		return nil, err
	}

	if err := config.Verify(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func initLogger(cfg *config.Config) (logger.Logger, error) {
	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: os.Stdout,
	})
	if err != nil {
		return nil, err
	}
	logger.SetDefault(log)
	return log, nil
}

// logConfig logs the effective configuration with secrets masked.
func logConfig(log logger.Logger, cfg *config.Config) {
	s := config.Sanitize(cfg)
	log.Info("configuration loaded",
		"server.port", s.Server.Port,
		"server.ratelimit", s.Server.RateLimit,
		"server.metrics", s.Server.Metrics,
		"auth.token", s.Auth.Token,
		"redis.host", s.Redis.Host,
		"redis.port", s.Redis.Port,
		"redis.database", s.Redis.Database,
		"redis.autopipelining", s.Redis.AutoPipelining,
		"sentinel.addrs", s.Sentinel.Addrs,
		"sentinel.master", s.Sentinel.Master,
		"log.level", s.Log.Level,
		"log.format", s.Log.Format,
	)
}

// poolStats adapts the store client's pool snapshot for the metrics
// collector. Before the first command the provider has no client yet
// and the snapshot is zero.
func poolStats(provider *store.Provider) metric.PoolStatsFunc {
	return func() metric.PoolStats {
		s, err := provider.Get()
		if err != nil {
			return metric.PoolStats{}
		}
		c, ok := s.(*store.Client)
		if !ok {
			return metric.PoolStats{}
		}
		ps := c.PoolStats()
		return metric.PoolStats{
			Hits:       ps.Hits,
			Misses:     ps.Misses,
			Timeouts:   ps.Timeouts,
			TotalConns: ps.TotalConns,
			IdleConns:  ps.IdleConns,
			StaleConns: ps.StaleConns,
		}
	}
}

// watchConfig hot-reloads the settings that can change without a
// restart: the auth token and the log level.
func watchConfig(path string, current *config.Config, gateway *handler.Handler, log logger.Logger) (*confloader.Watcher, error) {
	watcher, err := confloader.NewWatcher(confloader.WithWatcherLogger(log))
	if err != nil {
		return nil, err
	}

	watcher.OnChange(func(string) {
		cfg, err := loadConfig(path)
		if err != nil {
			log.Error("config reload failed, keeping previous settings", "error", err)
			return
		}

		if cfg.Auth.Token != current.Auth.Token {
			gateway.SetToken(cfg.Auth.Token)
			log.Info("auth token rotated")
		}
		if cfg.Log.Level != current.Log.Level {
			logger.SetLevel(cfg.Log.Level)
			log.Info("log level changed", "level", cfg.Log.Level)
		}
		*current = *cfg
	})

	if err := watcher.Watch(path); err != nil {
		watcher.Stop()
		return nil, err
	}
	watcher.StartAsync()

	log.Info("config hot reload enabled", "file", path)
	return watcher, nil
}
