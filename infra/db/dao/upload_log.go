package dao

import (
	"fmt"

	"github.com/radhian/fuel-station-analytics/infra/db/model"
)

func (d *dao) CreateUploadLog(entry *model.UploadLog) error {
	if err := d.db.Create(entry).Error; err != nil {
		return fmt.Errorf("failed to save upload log: %w", err)
	}
	return nil
}

func (d *dao) GetRecentUploadLogs(limit int) ([]model.UploadLog, error) {
	var logs []model.UploadLog
	if err := d.db.
		Order("create_time DESC").
		Limit(limit).
		Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch upload logs: %w", err)
	}
	return logs, nil
}
