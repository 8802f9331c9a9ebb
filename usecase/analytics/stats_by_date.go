package analytics

import (
	"github.com/radhian/fuel-station-analytics/entity"
	"github.com/radhian/fuel-station-analytics/utils"
)

// GetStatsByDate summarizes daily sales and volume over a date range.
// Returns ErrNoData when no records match.
func (u *analyticsUsecase) GetStatsByDate(dateFrom, dateTo string) (*entity.DailyStats, error) {
	from, err := parseOptionalDate(dateFrom)
	if err != nil {
		return nil, err
	}
	to, err := parseOptionalDate(dateTo)
	if err != nil {
		return nil, err
	}

	txns, err := u.dao.GetTransactionsByDateRange(from, to)
	if err != nil {
		return nil, err
	}
	if len(txns) == 0 {
		return nil, ErrNoData
	}

	summary := make(map[string]*entity.TrendPoint)
	for _, t := range txns {
		dateKey := t.Date.Format("2006-01-02")
		day, ok := summary[dateKey]
		if !ok {
			day = &entity.TrendPoint{}
			summary[dateKey] = day
		}
		day.Sales += t.Amount
		day.Liters += t.Liters
	}
	for _, day := range summary {
		day.Sales = utils.Round2(day.Sales)
		day.Liters = utils.Round2(day.Liters)
	}

	return &entity.DailyStats{
		DailySummary: summary,
		TotalRecords: len(txns),
	}, nil
}
