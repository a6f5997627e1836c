package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/brief-generator-api/infrastructure/database/postgres"
	"github.com/vfg2006/brief-generator-api/infrastructure/integrator/llm"
	"github.com/vfg2006/brief-generator-api/infrastructure/repository"
	"github.com/vfg2006/brief-generator-api/internal/api"
	"github.com/vfg2006/brief-generator-api/internal/config"
	"github.com/vfg2006/brief-generator-api/internal/scheduler"
	"github.com/vfg2006/brief-generator-api/internal/usecases/authenticating"
	"github.com/vfg2006/brief-generator-api/internal/usecases/briefing"
	"github.com/vfg2006/brief-generator-api/internal/usecases/metricsing"
	"github.com/vfg2006/brief-generator-api/internal/usecases/settings"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	weeklyMetricsRepo := repository.NewWeeklyMetricsRepository(pgConn)
	settingsRepo := repository.NewSettingsRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	provider, err := llm.NewProvider(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao configurar o provedor de LLM")
	}
	logrus.WithField("provider", cfg.LLM.Provider).Info("Provedor de LLM configurado")

	metricsService := metricsing.NewService(weeklyMetricsRepo)
	briefService := briefing.NewService(cfg, metricsService, provider)
	settingsService := settings.NewService(settingsRepo)

	retentionService := scheduler.NewRetentionService(weeklyMetricsRepo, cfg)
	if err := retentionService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de retenção de métricas")
	}

	server, err := api.New(
		cfg,
		metricsService,
		briefService,
		settingsService,
		authenticator,
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

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
