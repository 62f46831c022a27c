// Package commands defines the kozeni CLI and wires dependencies for subcommands.
//
// Commands
//
//   - change       Compute change for a purchase and break it into notes and coins
//   - palindrome   Check whether a line of text is a palindrome
//   - prime        Check whether a natural number is prime
//
// # Implementation
//
// Each subcommand runs one interactive session on stdin/stdout. The root
// command loads configuration and builds the app wiring before any subcommand
// runs. Sessions return typed domain errors; the subcommand prints the
// matching message and the error propagates to main, which exits non-zero.
// Diagnostics go to stderr through internal/log and never mix with the
// session output.
package commands
