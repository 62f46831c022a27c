package domain

import (
	interfaces "kozeni/internal/domain/interfaces"
	types "kozeni/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Amount            = types.Amount
	Denomination      = types.Denomination
	DenominationTable = types.DenominationTable
	BreakdownEntry    = types.BreakdownEntry
	Breakdown         = types.Breakdown
	PalindromeResult  = types.PalindromeResult
	PrimeVerdict      = types.PrimeVerdict
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	ChangeService     = interfaces.ChangeService
	PalindromeService = interfaces.PalindromeService
	PrimeService      = interfaces.PrimeService
	Console           = interfaces.Console
)

// YenTable is the fixed yen denomination table.
var YenTable = types.YenTable

// NewDenominationTable validates and builds a custom denomination table.
var NewDenominationTable = types.NewDenominationTable
