package change

import (
	"strconv"

	"kozeni/internal/domain"
	"kozeni/internal/log"
	"kozeni/internal/numeral"
)

// Service computes change against a fixed denomination table.
type Service struct {
	table domain.DenominationTable
}

// New returns a change service using table. An empty table falls back to
// domain.YenTable.
func New(table domain.DenominationTable) *Service {
	if table.Len() == 0 {
		table = domain.YenTable
	}
	return &Service{table: table}
}

// ParseAmount validates raw as an unsigned digit string and returns its value.
func (s *Service) ParseAmount(raw string) (domain.Amount, error) {
	digits, ok := numeral.Fold(raw)
	if !ok {
		return 0, &domain.InvalidAmountError{Input: raw}
	}
	v, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		// Digits only, so the sole failure left is overflow.
		return 0, &domain.InvalidAmountError{Input: raw}
	}
	log.Debug("parsed amount", "input", raw, "value", v)
	return domain.Amount(v), nil
}

// CalculateChange returns tendered - price, or an InsufficientFundsError
// carrying price - tendered when the customer has not paid enough.
func (s *Service) CalculateChange(tendered, price domain.Amount) (domain.Amount, error) {
	change := tendered - price
	if change < 0 {
		return 0, &domain.InsufficientFundsError{Shortfall: -change}
	}
	log.Debug("calculated change", "tendered", tendered, "price", price, "change", change)
	return change, nil
}

// Breakdown greedily splits change over the table, largest denomination
// first. The result has one entry per denomination, zero counts included.
func (s *Service) Breakdown(change domain.Amount) domain.Breakdown {
	denominations := s.table.Values()
	out := make(domain.Breakdown, 0, len(denominations))
	remaining := change.Int64()
	for _, d := range denominations {
		count := remaining / d.Int64()
		remaining %= d.Int64()
		out = append(out, domain.BreakdownEntry{Denomination: d, Count: count})
	}
	return out
}

// Table returns the denomination table the service breaks change down over.
func (s *Service) Table() domain.DenominationTable { return s.table }

// Compile-time assertion that Service implements domain.ChangeService.
var _ domain.ChangeService = (*Service)(nil)
