package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/utmdash/utmdash-api/internal/config"
	"github.com/utmdash/utmdash-api/internal/usecases/importing"
)

// SheetSyncConfig representa a configuração do agendador de sincronização da planilha
type SheetSyncConfig struct {
	CronSchedule string
	SheetURL     string
	SyncEnabled  bool
}

// SheetSyncService gerencia o agendamento da reimportação periódica da planilha publicada
type SheetSyncService struct {
	scheduler           *gocron.Scheduler
	config              SheetSyncConfig
	importer            importing.Importer
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewSheetSyncService cria uma nova instância do serviço de sincronização da planilha
func NewSheetSyncService(
	importer importing.Importer,
	appConfig *config.Config,
) *SheetSyncService {
	syncConfig := SheetSyncConfig{
		CronSchedule: appConfig.SheetSync.CronSchedule,
		SheetURL:     appConfig.SheetSync.SheetURL,
		SyncEnabled:  appConfig.SheetSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sheet_url":     syncConfig.SheetURL,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de sincronização da planilha carregada")

	return &SheetSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		importer:    importer,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *SheetSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização da planilha desabilitada por configuração")
		return nil
	}

	if s.config.SheetURL == "" {
		logrus.Warn("Sincronização da planilha habilitada sem URL configurada. Agendador não será iniciado.")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização da planilha")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncSheet()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização da planilha: %w", err)
	}

	s.scheduler.StartAsync()

	// Parar o agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização da planilha")
		s.scheduler.Stop()
	}()

	return nil
}

// syncSheet reimporta a planilha publicada, substituindo o dataset ativo
func (s *SheetSyncService) syncSheet() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização da planilha já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.WithField("sheet_url", s.config.SheetURL).Info("Iniciando sincronização da planilha publicada")

	dataset, entry, err := s.importer.ImportFromURL(s.config.SheetURL)
	if err != nil {
		logrus.WithError(err).Error("Erro ao sincronizar planilha publicada")
		return
	}

	fields := logrus.Fields{
		"duration": time.Since(startTime).String(),
		"rows":     len(dataset.Rows),
	}
	if entry != nil {
		fields["entry_id"] = entry.ID
	}
	logrus.WithFields(fields).Info("Sincronização da planilha concluída")

	s.lastSyncCompletedAt = time.Now()
}

// TriggerManualSync inicia manualmente uma sincronização da planilha
func (s *SheetSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização da planilha já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual da planilha")
	go s.syncSheet()
}

// GetStatus retorna o status atual do agendador
func (s *SheetSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sheet_url":              s.config.SheetURL,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
