package types

import "strconv"

// Amount is a non-negative whole number of yen.
type Amount int64

// Int64 returns the amount as a plain integer.
func (a Amount) Int64() int64 { return int64(a) }

// String returns the decimal form of the amount.
func (a Amount) String() string { return strconv.FormatInt(int64(a), 10) }
