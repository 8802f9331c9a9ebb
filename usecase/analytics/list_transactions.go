package analytics

import (
	"github.com/radhian/fuel-station-analytics/entity"
)

// ListTransactions returns transactions filtered by exact fuel label and a
// strict YYYY-MM-DD range, sorted by date then time, both descending.
func (u *analyticsUsecase) ListTransactions(fuel, dateFrom, dateTo string) ([]entity.TransactionResponse, error) {
	from, err := parseOptionalISODate(dateFrom)
	if err != nil {
		return nil, err
	}
	to, err := parseOptionalISODate(dateTo)
	if err != nil {
		return nil, err
	}

	txns, err := u.dao.ListTransactions(fuel, from, to)
	if err != nil {
		return nil, err
	}

	responses := make([]entity.TransactionResponse, 0, len(txns))
	for _, t := range txns {
		responses = append(responses, t.ToResponse())
	}
	return responses, nil
}
