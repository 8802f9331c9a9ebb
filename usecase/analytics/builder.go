package analytics

import (
	"errors"

	"github.com/radhian/fuel-station-analytics/entity"
	"github.com/radhian/fuel-station-analytics/infra/cache"
	"github.com/radhian/fuel-station-analytics/infra/db/dao"
	"github.com/radhian/fuel-station-analytics/infra/db/model"
)

// ErrNoData marks a required-result query that matched no records.
var ErrNoData = errors.New("no data found")

type AnalyticsUsecase interface {
	GetDashboardStats(startDate, endDate string) (*entity.DashboardStats, error)
	ListTransactions(fuel, dateFrom, dateTo string) ([]entity.TransactionResponse, error)
	GetStatsByDate(dateFrom, dateTo string) (*entity.DailyStats, error)
	GetUploadHistory(limit int) ([]model.UploadLog, error)
	ClearAll() error
	HealthCheck() error
}

type analyticsUsecase struct {
	dao   dao.DaoMethod
	cache *cache.StatsCache
}

func NewAnalyticsUsecase(d dao.DaoMethod, c *cache.StatsCache) AnalyticsUsecase {
	return &analyticsUsecase{dao: d, cache: c}
}
