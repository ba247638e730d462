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
	"github.com/spf13/cobra"

	"github.com/westmead-kiosk/kiosk-apiserver/internal/config"
	"github.com/westmead-kiosk/kiosk-apiserver/internal/handler"
	infradb "github.com/westmead-kiosk/kiosk-apiserver/internal/infrastructure/database"
	"github.com/westmead-kiosk/kiosk-apiserver/internal/infrastructure/llm"
	"github.com/westmead-kiosk/kiosk-apiserver/internal/router"
	"github.com/westmead-kiosk/kiosk-apiserver/internal/usecase"
	dbpkg "github.com/westmead-kiosk/kiosk-apiserver/pkg/database"
	"github.com/westmead-kiosk/kiosk-apiserver/pkg/logger"
)

var (
	cfgFile string
	version = "0.1.0"
)

var rootCmd = &cobra.Command{
	Use:   "kiosk-apiserver",
	Short: "API server for the Westmead International School information kiosk",
	Long: `kiosk-apiserver is the backend of the school information kiosk.
It answers visitor questions through an LLM pipeline with topic filtering,
tracks frequently asked questions, and serves the school reference data
behind the kiosk terminals.`,
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

	slog.Info("kiosk API server starting...",
		"version", version,
		"config", cfgFile,
	)

	// Route Hertz framework logs through slog.
	hertzLogger := logger.NewHertzSlogAdapter(slog.Default())
	hlog.SetLogger(hertzLogger)

	// Database
	dbClient, err := dbpkg.NewClient(cfg.Database, slog.Default())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := dbClient.AutoMigrate(infradb.AllModels()...); err != nil {
		slog.Error("failed to migrate database schema", "error", err)
		os.Exit(1)
	}

	// User module
	userRepo := infradb.NewUserRepository(dbClient)
	userUsecase := usecase.NewUserUsecase(userRepo, slog.Default())
	userHandler := handler.NewUserHandler(userUsecase, cfg.JWT.Secret, slog.Default())

	// Reference data and settings
	referenceRepo := infradb.NewReferenceRepository(dbClient)
	settingsRepo := infradb.NewSettingsRepository(dbClient)
	referenceUsecase := usecase.NewReferenceUsecase(referenceRepo, slog.Default())
	settingsUsecase := usecase.NewSettingsUsecase(settingsRepo, slog.Default())
	referenceHandler := handler.NewReferenceHandler(referenceUsecase, slog.Default())
	settingsHandler := handler.NewSettingsHandler(settingsUsecase, slog.Default())

	// Chat pipeline
	llmClient := llm.NewClient(cfg.LLM, slog.Default())
	chatRepo := infradb.NewChatRepository(dbClient)
	faqRepo := infradb.NewFaqRepository(dbClient)
	faqUsecase := usecase.NewFaqUsecase(faqRepo, slog.Default())
	assembler := usecase.NewBriefingAssembler(
		referenceRepo,
		settingsRepo,
		cfg.Kiosk.BriefingMaxEntries,
		slog.Default(),
	)
	chatUsecase := usecase.NewChatUsecase(
		chatRepo,
		llmClient,
		assembler,
		faqUsecase,
		slog.Default(),
	)
	chatHandler := handler.NewChatHandler(chatUsecase, faqUsecase, slog.Default())

	healthHandler := handler.NewHealthHandler(dbClient)

	slog.Info("handlers initialized")

	h := server.Default(
		server.WithHostPorts(cfg.GetServerAddr()),
		server.WithReadTimeout(cfg.GetReadTimeout()),
		server.WithWriteTimeout(cfg.GetWriteTimeout()),
		server.WithMaxRequestBodySize(cfg.Server.MaxRequestBodySize*1024*1024),
		server.WithTransport(netpoll.NewTransporter),
	)

	router.Setup(h, userHandler, chatHandler, referenceHandler, settingsHandler, healthHandler)

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

	if err := dbpkg.Close(dbClient, slog.Default()); err != nil {
		slog.Error("failed to close database", "error", err)
	}

	slog.Info("server stopped gracefully")
}
