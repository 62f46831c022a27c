package interfaces

import (
	"context"

	domaintypes "kozeni/internal/domain/types"
)

// ChangeService validates amounts, computes change and breaks it down into
// notes and coins.
type ChangeService interface {
	ParseAmount(raw string) (domaintypes.Amount, error)
	CalculateChange(tendered, price domaintypes.Amount) (domaintypes.Amount, error)
	Breakdown(change domaintypes.Amount) domaintypes.Breakdown
	Table() domaintypes.DenominationTable
}

// PalindromeService checks whether a line of text reads the same reversed.
type PalindromeService interface {
	Check(text string) (domaintypes.PalindromeResult, error)
}

// PrimeService judges whether a natural number is prime.
type PrimeService interface {
	Judge(ctx context.Context, raw string) (domaintypes.PrimeVerdict, error)
}
