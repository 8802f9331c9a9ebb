package analytics

import (
	"github.com/radhian/fuel-station-analytics/infra/db/model"

	"github.com/labstack/gommon/log"
)

// ClearAll wipes every stored transaction and invalidates the stats cache.
func (u *analyticsUsecase) ClearAll() error {
	if err := u.dao.DeleteAllTransactions(); err != nil {
		return err
	}
	u.cache.Reset()
	log.Infof("[Clear] All transactions deleted, cache reset")
	return nil
}

func (u *analyticsUsecase) HealthCheck() error {
	return u.dao.Ping()
}

func (u *analyticsUsecase) GetUploadHistory(limit int) ([]model.UploadLog, error) {
	return u.dao.GetRecentUploadLogs(limit)
}
