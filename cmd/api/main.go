package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/valuation-api/infrastructure/cache"
	"github.com/vfg2006/valuation-api/infrastructure/database/postgres"
	"github.com/vfg2006/valuation-api/infrastructure/repository"
	"github.com/vfg2006/valuation-api/internal/api"
	"github.com/vfg2006/valuation-api/internal/config"
	"github.com/vfg2006/valuation-api/internal/scheduler"
	"github.com/vfg2006/valuation-api/internal/usecases/authenticating"
	"github.com/vfg2006/valuation-api/internal/usecases/costing"
	"github.com/vfg2006/valuation-api/internal/usecases/valuating"
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

	companyRepo := repository.NewCompanyRepository(pgConn)
	costRepo := repository.NewCostRepository(pgConn)
	productRepo := repository.NewProductRepository(pgConn)
	configRepo := repository.NewValuationConfigRepository(pgConn)
	snapshotRepo := repository.NewValuationSnapshotRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	reportCache := newReportCache(ctx, cfg.Redis)

	valuationService := valuating.NewService(
		companyRepo,
		costRepo,
		productRepo,
		configRepo,
		snapshotRepo,
		reportCache,
		cfg,
	)

	// Alterações de cadastro invalidam o relatório em cache da empresa
	catalogService := costing.NewService(companyRepo, costRepo, productRepo, reportCache)

	authenticator := authenticating.NewService(userRepo, cfg)

	snapshotService := scheduler.NewValuationSnapshotService(companyRepo, valuationService, cfg)
	if err := snapshotService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de histórico de valuation")
	} else {
		logrus.Info("Agendador de histórico de valuation iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		catalogService,
		valuationService,
		authenticator,
		snapshotService,
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

// newReportCache usa o redis quando habilitado e cai para o cache nulo se a conexão falhar
func newReportCache(ctx context.Context, redisConfig config.Redis) valuating.ReportCache {
	if !redisConfig.Enabled {
		logrus.Info("Cache de relatórios desabilitado")
		return valuating.NoopReportCache{}
	}

	client, err := cache.NewRedisClient(ctx, redisConfig)
	if err != nil {
		logrus.WithError(err).Warn("Redis indisponível, relatórios serão calculados a cada requisição")
		return valuating.NoopReportCache{}
	}

	logrus.WithField("addr", redisConfig.Addr).Info("Conexão com Redis estabelecida com sucesso")
	return cache.NewReportCache(client, redisConfig.CacheTTL)
}
