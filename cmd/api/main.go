package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-leaderboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/creator-leaderboard-api/infrastructure/integrator/vendora"
	"github.com/vfg2006/creator-leaderboard-api/infrastructure/integrator/vendora/vendoraclient"
	"github.com/vfg2006/creator-leaderboard-api/infrastructure/repository"
	"github.com/vfg2006/creator-leaderboard-api/internal/api"
	"github.com/vfg2006/creator-leaderboard-api/internal/config"
	"github.com/vfg2006/creator-leaderboard-api/internal/scheduler"
	"github.com/vfg2006/creator-leaderboard-api/internal/usecases/analyzing"
	"github.com/vfg2006/creator-leaderboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/creator-leaderboard-api/internal/usecases/drawing"
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

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	drawRepo := repository.NewDrawRepository(pgConn)
	companyRepo := repository.NewCompanyRepository(pgConn)

	authenticator := authenticating.NewService(cfg)

	vendoraClient := vendoraclient.NewClient(cfg)
	vendoraIntegrator := vendora.New(cfg, vendoraClient)

	analyzer := analyzing.NewService(cfg, vendoraIntegrator)

	drawer := drawing.NewService(cfg, analyzer, drawRepo, drawing.NewRandomSource())

	// Inicializa o agendador de warmup dos leaderboards
	warmupService := scheduler.NewLeaderboardWarmupService(analyzer, companyRepo, cfg)

	if err := warmupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de warmup de leaderboards")
	} else {
		logrus.Info("Agendador de warmup de leaderboards iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		analyzer,
		drawer,
		authenticator,
		warmupService,
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

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
