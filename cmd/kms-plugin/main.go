package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"

	"github.com/acproject/password-manager/internal/agent"
	"github.com/acproject/password-manager/internal/audit"
	"github.com/acproject/password-manager/internal/engine"
	"github.com/acproject/password-manager/internal/infra"
	"github.com/acproject/password-manager/internal/ops"
	"github.com/acproject/password-manager/internal/persistence"
	"github.com/acproject/password-manager/internal/persistence/filestore"
	"github.com/acproject/password-manager/internal/persistence/postgres"
	"github.com/acproject/password-manager/internal/persistence/redisstore"
	"github.com/acproject/password-manager/internal/security"
	pb "github.com/acproject/password-manager/pkg/api/plugin/v1"
)

func main() {
	// 1. Инфраструктура и ресурсы
	cfg, err := infra.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger, err := infra.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 2. Хранилище (зеркало персистентности)
	store, closeStore, err := buildStore(appCtx, cfg)
	if err != nil {
		logger.Fatal("failed to init persistence store", zap.Error(err))
	}
	if closeStore != nil {
		defer closeStore()
	}

	// 3. Метрики и журнал аудита
	reg := prometheus.NewRegistry()
	metrics := engine.NewMetrics(reg)

	trail := audit.NewTrail(store, logger)
	trail.SetDropHook(metrics.AuditDroppedTotal.Inc)
	trail.Start()
	defer trail.Stop()

	// 4. Ядро: HSM, движок ключей, командный слой
	hsm := security.NewMockHSM()
	core := engine.NewKeyManagementEngine(hsm, store, trail, logger)
	defer core.Close()

	limiter := rate.NewLimiter(rate.Limit(cfg.Engine.RateLimit), cfg.Engine.RateBurst)
	router := engine.NewCommandRouter(core, limiter, metrics, logger)

	// 5. Агент жизненного цикла
	client, err := agent.NewGRPCClient(cfg.Orchestrator.Addr(), logger, func(open bool) {
		if open {
			metrics.CircuitBreakerState.Set(1)
		} else {
			metrics.CircuitBreakerState.Set(0)
		}
	})
	if err != nil {
		logger.Fatal("failed to build orchestrator client", zap.Error(err))
	}
	defer client.Close()

	lifecycle := agent.NewLifecycleAgent(client, metrics, logger)
	lifecycle.Initialize(agent.Config{
		ServerHost:     cfg.Orchestrator.Host,
		ServerPort:     cfg.Orchestrator.Port,
		RetryCount:     cfg.Orchestrator.RetryCount,
		RetryInterval:  cfg.Orchestrator.RetryInterval,
		HostAddress:    cfg.Plugin.HostAddress,
		AdvertisedPort: cfg.Plugin.AdvertisedPort,
		Extra:          cfg.Plugin.Extra,
	}, agent.Identity{
		Name:        cfg.Plugin.Name,
		Version:     cfg.Plugin.Version,
		Type:        cfg.Plugin.Type,
		Description: cfg.Plugin.Description,
	})

	// 6. Graceful Shutdown: сигнал ОС или StopPlugin от оркестратора
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	remoteStop := make(chan struct{}, 1)
	requestStop := func() {
		select {
		case remoteStop <- struct{}{}:
		default:
		}
	}

	// 7. gRPC сервер плагина (адрес, заявленный при регистрации)
	grpcSrv := grpc.NewServer()
	pb.RegisterPluginServiceServer(grpcSrv, engine.NewPluginServer(router, lifecycle.PluginID, requestStop, logger))
	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.Plugin.HostAddress, cfg.Plugin.AdvertisedPort)
		lis, err := net.Listen("tcp", addr)
		if err != nil {
			logger.Fatal("failed to listen gRPC", zap.String("addr", addr), zap.Error(err))
		}
		logger.Info("plugin gRPC server started", zap.String("addr", addr))
		if err := grpcSrv.Serve(lis); err != nil {
			logger.Fatal("failed to serve gRPC", zap.Error(err))
		}
	}()

	// 8. Диагностический HTTP (health, metrics, локальные команды)
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Ops.Host, cfg.Ops.Port),
		Handler:      ops.NewServer(router, lifecycle, reg, logger),
		ReadTimeout:  cfg.Ops.ReadTimeout,
		WriteTimeout: cfg.Ops.WriteTimeout,
	}
	go func() {
		logger.Info("ops server started", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("ops server failed", zap.Error(err))
		}
	}()

	// 9. Старт агента: регистрация с ретраями, heartbeat-цикл
	if !lifecycle.Start(appCtx) {
		logger.Fatal("agent failed to start")
	}

	select {
	case <-stop:
		logger.Info("shutdown signal received")
	case <-remoteStop:
		logger.Info("shutdown requested by orchestrator")
	}

	// Даем 5 секунд на завершение запросов
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	lifecycle.Stop(shutdownCtx)
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("ops server shutdown failed", zap.Error(err))
	}
	grpcSrv.GracefulStop()
	logger.Info("plugin exited properly")
}

// buildStore выбирает бэкенд зеркала по конфигурации.
// backend=memory — работаем без зеркала, память авторитативна.
func buildStore(ctx context.Context, cfg *infra.Config) (persistence.Store, func(), error) {
	switch cfg.Persistence.Backend {
	case "memory":
		return nil, nil, nil
	case "file":
		s, err := filestore.New(cfg.Persistence.BaseDir)
		return s, nil, err
	case "postgres":
		s, err := postgres.Open(cfg.Database.URL)
		if err != nil {
			return nil, nil, err
		}
		if err := s.Ping(ctx); err != nil {
			return nil, nil, err
		}
		if err := s.InitSchema(ctx); err != nil {
			return nil, nil, err
		}
		return s, func() { s.Close() }, nil
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return nil, nil, fmt.Errorf("redis ping: %w", err)
		}
		return redisstore.New(rdb), func() { rdb.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown persistence backend %q", cfg.Persistence.Backend)
	}
}
