package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/network/netpoll"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/Raeus1901/wine-bot/internal/config"
	"github.com/Raeus1901/wine-bot/internal/domain"
	"github.com/Raeus1901/wine-bot/internal/handler"
	"github.com/Raeus1901/wine-bot/internal/infrastructure/catalog"
	"github.com/Raeus1901/wine-bot/internal/infrastructure/memory"
	"github.com/Raeus1901/wine-bot/internal/infrastructure/redisstore"
	"github.com/Raeus1901/wine-bot/internal/recommender"
	"github.com/Raeus1901/wine-bot/internal/router"
	"github.com/Raeus1901/wine-bot/internal/usecase"
	"github.com/Raeus1901/wine-bot/pkg/logger"
)

var (
	cfgFile string
	version = "0.1.0"
)

var rootCmd = &cobra.Command{
	Use:   "wine-server",
	Short: "HTTP API for the wine recommender chat",
	Long: `wine-server answers the wine recommender chat clients over HTTP.
It serves both API shapes: the structured /conversation endpoint and the
older wizard flow (/next_question, /answer, /reset).`,
	Version: version,
	Run:     runServer,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "configs/config.yaml", "path to config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func runServer(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := logger.Setup(cfg.Log); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	slog.Info("wine-server starting...",
		"version", version,
		"config", cfgFile,
	)

	// Route Hertz framework logs through slog.
	hlog.SetLogger(logger.NewHertzSlogAdapter(slog.Default()))

	wines, err := catalog.LoadFile(cfg.Catalog.CSVPath)
	if err != nil {
		slog.Error("failed to load wine catalog", "path", cfg.Catalog.CSVPath, "error", err)
		os.Exit(1)
	}
	slog.Info("wine catalog loaded", "path", cfg.Catalog.CSVPath, "wines", len(wines))

	var sessionRepo domain.SessionRepository
	var rdb *redis.Client
	switch cfg.Session.Store {
	case "redis":
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Session.RedisAddr,
			Password: cfg.Session.RedisPassword,
			DB:       cfg.Session.RedisDB,
		})
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			cancel()
			slog.Error("failed to connect to redis", "addr", cfg.Session.RedisAddr, "error", err)
			os.Exit(1)
		}
		cancel()
		sessionRepo = redisstore.NewSessionRepository(rdb, cfg.Session.TTL)
		slog.Info("session store: redis", "addr", cfg.Session.RedisAddr, "ttl", cfg.Session.TTL)
	default:
		sessionRepo = memory.NewSessionRepository(cfg.Session.TTL)
		slog.Info("session store: memory", "ttl", cfg.Session.TTL)
	}

	engine := recommender.NewEngine(wines)
	conversationUsecase := usecase.NewConversationUsecase(engine, sessionRepo, slog.Default())
	conversationHandler := handler.NewConversationHandler(conversationUsecase, slog.Default())
	healthHandler := handler.NewHealthHandler(len(wines))

	h := server.Default(
		server.WithHostPorts(cfg.GetServerAddr()),
		server.WithReadTimeout(cfg.Server.ReadTimeout),
		server.WithWriteTimeout(cfg.Server.WriteTimeout),
		server.WithMaxRequestBodySize(cfg.Server.MaxRequestBodySize*1024*1024),
		server.WithTransport(netpoll.NewTransporter),
	)

	router.Setup(h, conversationHandler, healthHandler)

	slog.Info("server started",
		"address", cfg.GetServerAddr(),
		"mode", cfg.Server.Mode,
	)

	go func() {
		if err := h.Run(); err != nil {
			slog.Error("server run failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := h.Shutdown(ctx); err != nil {
		slog.Error("server shutdown failed", "error", err)
		os.Exit(1)
	}

	if rdb != nil {
		if err := rdb.Close(); err != nil {
			slog.Error("failed to close redis client", "error", err)
		}
	}

	slog.Info("server stopped gracefully")
}
