// Package prime judges whether a typed natural number is prime.
//
// Numbers below 2^40 are settled by trial division by 2 and the odd numbers up
// to and including the integer square root. Larger inputs, which may exceed 64
// bits, go through math/big's Baillie-PSW test; it has no known
// counterexamples and is exact below 2^64.
package prime
