package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/config"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/api/handler"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/api/router"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/gateway"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/repository"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/service"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/pkg/jwt"
	applogger "github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/pkg/logger"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/pkg/metrics"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/pkg/redis"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	// 1. config
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	// 2. logger
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting",
		zap.Int("port", cfg.Server.Port),
		zap.String("upstream", cfg.Upstream.BaseURL),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. redis holds the sessions, so it is required
	rdb, err := redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Fatal("redis unavailable", zap.Error(err))
	}

	// 4. metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// 5. gateway to the REST backend; the token comes from the request's session
	gw, err := gateway.New(cfg.Upstream.BaseURL, gateway.ContextTokens{},
		gateway.WithTimeout(cfg.Upstream.Timeout),
		gateway.WithLogger(logger),
		gateway.WithMetrics(m),
	)
	if err != nil {
		logger.Fatal("init gateway", zap.Error(err))
	}

	// 6. dependency injection: Repository → Service → Handler
	jwtMgr := jwt.NewManager(&cfg.Auth)
	repo := repository.NewRepository(gw)
	svc, err := service.NewService(cfg, repo, rdb, jwtMgr, m, logger)
	if err != nil {
		logger.Fatal("init services", zap.Error(err))
	}
	h := handler.NewHandler(cfg, svc)

	// 7. router
	engine := router.Setup(cfg, h, svc.Auth, rdb, reg, logger)

	// 8. HTTP server with graceful shutdown
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Upstream.Timeout + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	// 9. wait for a signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("shutting down", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	if err := rdb.Close(); err != nil {
		logger.Error("close redis", zap.Error(err))
	}

	logger.Info("server stopped")
}
