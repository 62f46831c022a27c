// Package change implements the cash-register arithmetic: validating typed
// amounts, computing change and breaking it down into notes and coins.
//
// Every method is a pure function of its inputs and the service's fixed
// denomination table, so a single Service can be shared freely.
package change
