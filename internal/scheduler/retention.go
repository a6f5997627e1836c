package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/brief-generator-api/infrastructure/repository"
	"github.com/vfg2006/brief-generator-api/internal/config"
	"github.com/vfg2006/brief-generator-api/internal/domain"
)

// RetentionConfig representa a configuração do agendador de retenção
type RetentionConfig struct {
	CronSchedule string
	MaxAgeWeeks  int
	Enabled      bool
}

// RetentionService remove semanas mais antigas que a janela de retenção
// configurada. Desabilitado por padrão: nesse caso as semanas gravadas
// permanecem intactas indefinidamente.
type RetentionService struct {
	scheduler        *gocron.Scheduler
	config           RetentionConfig
	metricsRepo      repository.WeeklyMetricsRepository
	running          bool
	mutex            sync.Mutex
	lastRunStartedAt time.Time
}

// NewRetentionService cria uma nova instância do serviço de retenção
func NewRetentionService(metricsRepo repository.WeeklyMetricsRepository, appConfig *config.Config) *RetentionService {
	retentionConfig := RetentionConfig{
		CronSchedule: appConfig.Retention.CronSchedule,
		MaxAgeWeeks:  appConfig.Retention.MaxAgeWeeks,
		Enabled:      appConfig.Retention.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": retentionConfig.CronSchedule,
		"max_age_weeks": retentionConfig.MaxAgeWeeks,
		"enabled":       retentionConfig.Enabled,
	}).Info("Configuração do agendador de retenção carregada")

	return &RetentionService{
		scheduler:   gocron.NewScheduler(time.Local),
		config:      retentionConfig,
		metricsRepo: metricsRepo,
	}
}

// Start inicia o agendador
func (s *RetentionService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Retenção de métricas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de retenção de métricas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.pruneOldWeeks()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar retenção de métricas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de retenção de métricas")
		s.scheduler.Stop()
	}()

	return nil
}

// pruneOldWeeks apaga as semanas anteriores ao corte da janela de
// retenção.
func (s *RetentionService) pruneOldWeeks() {
	s.mutex.Lock()
	if s.running {
		s.mutex.Unlock()
		logrus.Info("Retenção de métricas já em andamento, ignorando")
		return
	}
	s.running = true
	s.mutex.Unlock()

	defer func() {
		s.mutex.Lock()
		s.running = false
		s.mutex.Unlock()
	}()

	s.lastRunStartedAt = time.Now()
	cutoff := retentionCutoff(time.Now(), s.config.MaxAgeWeeks)

	deleted, err := s.metricsRepo.DeleteWeeksBefore(cutoff)
	if err != nil {
		logrus.WithError(err).Error("Erro ao apagar semanas antigas")
		return
	}

	logrus.WithFields(logrus.Fields{
		"cutoff":        cutoff,
		"rows_affected": deleted,
	}).Info("Retenção de métricas concluída")
}

// retentionCutoff calcula o identificador da semana limite: semanas
// estritamente anteriores a ela são descartadas.
func retentionCutoff(now time.Time, maxAgeWeeks int) string {
	return domain.CurrentWeekID(now.AddDate(0, 0, -7*maxAgeWeeks))
}
