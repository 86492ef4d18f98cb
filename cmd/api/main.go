package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/utmdash/utmdash-api/infrastructure/integrator/gemini"
	"github.com/utmdash/utmdash-api/infrastructure/integrator/gemini/geminiclient"
	"github.com/utmdash/utmdash-api/infrastructure/repository"
	"github.com/utmdash/utmdash-api/infrastructure/storage"
	"github.com/utmdash/utmdash-api/internal/api"
	"github.com/utmdash/utmdash-api/internal/config"
	"github.com/utmdash/utmdash-api/internal/scheduler"
	"github.com/utmdash/utmdash-api/internal/session"
	"github.com/utmdash/utmdash-api/internal/usecases/filtering"
	"github.com/utmdash/utmdash-api/internal/usecases/importing"
	"github.com/utmdash/utmdash-api/internal/usecases/insighting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := storage.NewFileStore(cfg.Storage.DataDir)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao preparar o diretório de dados")
	}
	logrus.WithField("dir", cfg.Storage.DataDir).Info("Persistência local inicializada")

	historyRepo := repository.NewHistoryRepository(store)
	settingsRepo := repository.NewSettingsRepository(store)

	sess := session.New()

	importService := importing.NewService(sess, historyRepo)
	filterService := filtering.NewService(settingsRepo)
	insightService := insighting.NewService(sess, filterService, settingsRepo)

	geminiClient := geminiclient.NewClient(cfg)
	advisor := gemini.New(geminiClient)

	// Inicializa o agendador de sincronização da planilha
	sheetSyncService := scheduler.NewSheetSyncService(importService, cfg)
	if err := sheetSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização da planilha")
	} else {
		logrus.Info("Agendador de sincronização da planilha iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		sess,
		importService,
		filterService,
		insightService,
		advisor,
		historyRepo,
		settingsRepo,
		sheetSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
