package cache

import (
	"context"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/vfg2006/valuation-api/internal/config"
	"github.com/vfg2006/valuation-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const reportKeyPrefix = "valuation:report:"

// NewRedisClient cria o cliente e testa a conexão
func NewRedisClient(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrapf(err, "erro ao conectar ao redis em %s", cfg.Addr)
	}

	return client, nil
}

// ReportCache guarda relatórios de valuation serializados em JSON no redis
type ReportCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewReportCache(client redis.Cmdable, ttl time.Duration) *ReportCache {
	return &ReportCache{
		client: client,
		ttl:    ttl,
	}
}

func reportKey(companyID string) string {
	return fmt.Sprintf("%s%s", reportKeyPrefix, companyID)
}

func (c *ReportCache) GetReport(ctx context.Context, companyID string) (*domain.ValuationReport, bool, error) {
	payload, err := c.client.Get(ctx, reportKey(companyID)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "erro ao ler relatório do cache")
	}

	var report domain.ValuationReport
	if err := json.Unmarshal(payload, &report); err != nil {
		// Entrada corrompida é tratada como ausente
		_ = c.client.Del(ctx, reportKey(companyID)).Err()
		return nil, false, errors.Wrap(err, "erro ao decodificar relatório do cache")
	}

	return &report, true, nil
}

func (c *ReportCache) SetReport(ctx context.Context, report *domain.ValuationReport) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return errors.Wrap(err, "erro ao serializar relatório")
	}

	return errors.Wrap(
		c.client.Set(ctx, reportKey(report.Config.CompanyID), payload, c.ttl).Err(),
		"erro ao gravar relatório no cache",
	)
}

func (c *ReportCache) Invalidate(ctx context.Context, companyID string) error {
	return errors.Wrap(c.client.Del(ctx, reportKey(companyID)).Err(), "erro ao invalidar relatório no cache")
}
