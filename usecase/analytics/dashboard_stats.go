package analytics

import (
	"fmt"
	"strings"

	"github.com/radhian/fuel-station-analytics/consts"
	"github.com/radhian/fuel-station-analytics/entity"
	"github.com/radhian/fuel-station-analytics/infra/db/model"
	"github.com/radhian/fuel-station-analytics/utils"

	"github.com/labstack/gommon/log"
)

// GetDashboardStats serves the aggregate snapshot for an optional inclusive
// date range, from cache when fresh.
func (u *analyticsUsecase) GetDashboardStats(startDate, endDate string) (*entity.DashboardStats, error) {
	key := fmt.Sprintf("%s_%s", startDate, endDate)
	if stats, ok := u.cache.Get(key); ok {
		log.Infof("[Stats] Cache hit for %q", key)
		return stats, nil
	}

	from, err := parseOptionalDate(startDate)
	if err != nil {
		return nil, err
	}
	to, err := parseOptionalDate(endDate)
	if err != nil {
		return nil, err
	}

	txns, err := u.dao.GetTransactionsByDateRange(from, to)
	if err != nil {
		return nil, err
	}

	stats := buildDashboardStats(txns)
	u.cache.Put(key, stats)

	log.Infof("[Stats] Computed snapshot for %q over %d transactions", key, len(txns))
	return stats, nil
}

// buildDashboardStats computes every rollup in a single pass. Accumulation
// runs at full float precision; rounding happens only on the way out.
func buildDashboardStats(txns []model.Transaction) *entity.DashboardStats {
	stats := &entity.DashboardStats{
		PaymentMethods:   make(map[string]int),
		MachinesActivity: make(map[string]*entity.MachineActivity),
		DailyTrend:       make(map[string]*entity.TrendPoint),
		HourlyTrend:      make(map[string]*entity.HourlyPoint),
		FuelDistribution: make(map[string]entity.FuelBucket),
	}
	if len(txns) == 0 {
		return stats
	}

	var totalSales, totalLiters float64
	var petrolSales, petrolLiters float64
	var dieselSales, dieselLiters float64

	for _, t := range txns {
		totalSales += t.Amount
		totalLiters += t.Liters

		// Binary split: anything not exactly "petrol" lands in the diesel bucket.
		if strings.EqualFold(t.Fuel, consts.FuelPetrol) {
			petrolSales += t.Amount
			petrolLiters += t.Liters
		} else {
			dieselSales += t.Amount
			dieselLiters += t.Liters
		}

		stats.PaymentMethods[t.PaymentType]++

		machineKey := fmt.Sprintf("Machine %d", t.MachineNo)
		machine, ok := stats.MachinesActivity[machineKey]
		if !ok {
			machine = &entity.MachineActivity{}
			stats.MachinesActivity[machineKey] = machine
		}
		machine.Sales += t.Amount
		machine.Liters += t.Liters
		machine.Count++

		dateKey := t.Date.Format("2006-01-02")
		day, ok := stats.DailyTrend[dateKey]
		if !ok {
			day = &entity.TrendPoint{}
			stats.DailyTrend[dateKey] = day
		}
		day.Sales += t.Amount
		day.Liters += t.Liters

		hourKey := hourBucket(t.Time)
		hour, ok := stats.HourlyTrend[hourKey]
		if !ok {
			hour = &entity.HourlyPoint{}
			stats.HourlyTrend[hourKey] = hour
		}
		hour.Sales += t.Amount
		hour.Liters += t.Liters
		hour.Count++
	}

	stats.TotalSales = utils.Round2(totalSales)
	stats.TotalLiters = utils.Round2(totalLiters)
	stats.PetrolSales = utils.Round2(petrolSales)
	stats.DieselSales = utils.Round2(dieselSales)
	stats.PetrolLiters = utils.Round2(petrolLiters)
	stats.DieselLiters = utils.Round2(dieselLiters)
	stats.TotalTransactions = len(txns)
	stats.AverageTransactionValue = utils.Round2(totalSales / float64(len(txns)))

	stats.FuelDistribution[consts.FuelPetrol] = entity.FuelBucket{
		Sales:      utils.Round2(petrolSales),
		Liters:     utils.Round2(petrolLiters),
		Percentage: percentage(petrolSales, totalSales),
	}
	stats.FuelDistribution[consts.FuelDiesel] = entity.FuelBucket{
		Sales:      utils.Round2(dieselSales),
		Liters:     utils.Round2(dieselLiters),
		Percentage: percentage(dieselSales, totalSales),
	}

	for _, machine := range stats.MachinesActivity {
		machine.Sales = utils.Round2(machine.Sales)
		machine.Liters = utils.Round2(machine.Liters)
	}
	for _, day := range stats.DailyTrend {
		day.Sales = utils.Round2(day.Sales)
		day.Liters = utils.Round2(day.Liters)
	}
	for _, hour := range stats.HourlyTrend {
		hour.Sales = utils.Round2(hour.Sales)
		hour.Liters = utils.Round2(hour.Liters)
	}

	return stats
}

func percentage(part, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return utils.Round2(part / total * 100)
}

// hourBucket maps a stored "HH:MM:SS" clock to its "HH:00" trend key.
func hourBucket(clock string) string {
	if len(clock) >= 2 {
		return clock[:2] + ":00"
	}
	return "00:00"
}
