package types

import (
	"errors"
	"fmt"
	"strconv"
)

// Denomination is the face value of a bill or coin, in yen.
type Denomination int64

// Int64 returns the face value as a plain integer.
func (d Denomination) Int64() int64 { return int64(d) }

// String returns the decimal form of the face value.
func (d Denomination) String() string { return strconv.FormatInt(int64(d), 10) }

var (
	// ErrEmptyTable is returned when a table has no denominations.
	ErrEmptyTable = errors.New("denomination table is empty")
	// ErrTableOrder is returned when denominations are not strictly decreasing and positive.
	ErrTableOrder = errors.New("denominations must be positive and strictly decreasing")
	// ErrTableUnit is returned when the smallest denomination is not 1.
	ErrTableUnit = errors.New("smallest denomination must be 1")
)

// DenominationTable is an immutable, strictly decreasing list of face values
// ending in 1. The zero value is an empty table.
type DenominationTable struct {
	values []Denomination
}

// NewDenominationTable validates values and returns a table that owns a copy of them.
func NewDenominationTable(values ...Denomination) (DenominationTable, error) {
	if len(values) == 0 {
		return DenominationTable{}, ErrEmptyTable
	}
	for i, v := range values {
		if v <= 0 || (i > 0 && v >= values[i-1]) {
			return DenominationTable{}, fmt.Errorf("%w: %d at position %d", ErrTableOrder, v, i)
		}
	}
	if values[len(values)-1] != 1 {
		return DenominationTable{}, ErrTableUnit
	}
	owned := make([]Denomination, len(values))
	copy(owned, values)
	return DenominationTable{values: owned}, nil
}

// Len returns the number of denominations.
func (t DenominationTable) Len() int { return len(t.values) }

// Values returns the denominations in descending order. The slice is a copy.
func (t DenominationTable) Values() []Denomination {
	out := make([]Denomination, len(t.values))
	copy(out, t.values)
	return out
}

// YenTable lists the yen notes and coins in circulation, largest first.
// The 2000 yen note is left out since it is rarely handed out as change.
var YenTable = mustTable(10000, 5000, 1000, 500, 100, 50, 10, 5, 1)

func mustTable(values ...Denomination) DenominationTable {
	t, err := NewDenominationTable(values...)
	if err != nil {
		panic(err)
	}
	return t
}
