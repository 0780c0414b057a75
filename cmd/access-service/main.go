package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"openmusic/cmd/access-service/internal/biz"
	"openmusic/cmd/access-service/internal/conf"
	"openmusic/cmd/access-service/internal/data"
	"openmusic/cmd/access-service/internal/server"
	"openmusic/cmd/access-service/internal/service"
	"openmusic/pkg/cache"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

var configFile = flag.String("config", "", "path to config file")

func main() {
	flag.Parse()

	config, err := conf.Load(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := initLogger(config.Log)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("Starting access service",
		zap.Int("http_port", config.Server.HTTPPort),
		zap.String("environment", config.Log.Environment),
	)

	db, err := data.NewDB(&data.DBConfig{
		Host:            config.Database.Host,
		Port:            config.Database.Port,
		User:            config.Database.User,
		Password:        config.Database.Password,
		DBName:          config.Database.DBName,
		SSLMode:         config.Database.SSLMode,
		MaxOpenConns:    config.Database.MaxOpenConns,
		MaxIdleConns:    config.Database.MaxIdleConns,
		ConnMaxLifetime: config.Database.ConnMaxLifetime,
	})
	if err != nil {
		logger.Fatal("Failed to connect database", zap.Error(err))
	}
	defer db.Close()

	redisCache := cache.NewRedisCache(cache.RedisConfig{
		Addr:         config.Redis.Addr,
		Password:     config.Redis.Password,
		DB:           config.Redis.DB,
		PoolSize:     config.Redis.PoolSize,
		DialTimeout:  config.Redis.DialTimeout,
		ReadTimeout:  config.Redis.ReadTimeout,
		WriteTimeout: config.Redis.WriteTimeout,
	}, cache.Options{
		KeyPrefix:  config.Cache.KeyPrefix,
		DefaultTTL: config.Cache.DefaultTTL,
	})
	defer redisCache.Close()

	// Data layer
	playlistRepo := data.NewPlaylistRepo(db)
	collaborationRepo := data.NewCollaborationRepo(db)
	likeRepo := data.NewLikeRepo(db)
	activityRepo := data.NewActivityRepo(db)
	accountRepo := data.NewAccountRepo(db)
	albumRepo := data.NewAlbumRepo(db)
	songRepo := data.NewSongRepo(db)

	// Biz layer
	resolver := biz.NewAccessResolver(playlistRepo, collaborationRepo)
	collaborationUC := biz.NewCollaborationUsecase(resolver, collaborationRepo, accountRepo, logger)
	likeUC := biz.NewAlbumLikeUsecase(albumRepo, likeRepo, redisCache, config.Cache.DefaultTTL, logger)
	trail := biz.NewActivityTrail(activityRepo, logger)
	playlistUC := biz.NewPlaylistUsecase(resolver, playlistRepo, songRepo, trail, logger)

	// Service + server layer
	accessService := service.NewAccessService(resolver, collaborationUC, likeUC, playlistUC)
	httpServer := server.NewHTTPServer(accessService, db, redisCache, logger)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", config.Server.HTTPPort),
		Handler:      httpServer.Engine(),
		ReadTimeout:  config.Server.ReadTimeout,
		WriteTimeout: config.Server.WriteTimeout,
	}

	metricsSrv := &http.Server{
		Addr:    fmt.Sprintf(":%d", config.Server.MetricsPort),
		Handler: promhttp.Handler(),
	}

	go func() {
		logger.Info("HTTP server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	go func() {
		logger.Info("Metrics server starting", zap.String("addr", metricsSrv.Addr))
		if err := metricsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Metrics server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), config.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown failed", zap.Error(err))
	}
	if err := metricsSrv.Shutdown(ctx); err != nil {
		logger.Error("Metrics server shutdown failed", zap.Error(err))
	}

	logger.Info("Server exited")
}

func initLogger(cfg conf.LogConfig) (*zap.Logger, error) {
	var zapConfig zap.Config
	if cfg.Environment == "development" {
		zapConfig = zap.NewDevelopmentConfig()
	} else {
		zapConfig = zap.NewProductionConfig()
	}

	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	zapConfig.Level = level

	return zapConfig.Build()
}
