package app

import (
	"io"

	"kozeni/internal/console"
	"kozeni/internal/domain"
	"kozeni/internal/log"
	changesvc "kozeni/internal/services/change"
	palindromesvc "kozeni/internal/services/palindrome"
	primesvc "kozeni/internal/services/prime"
)

// Wire bundles the console and services for the CLI.
type Wire struct {
	Console    domain.Console
	Change     domain.ChangeService
	Palindrome domain.PalindromeService
	Prime      domain.PrimeService
}

// NewWire applies cfg's log level and constructs the dependency graph around
// the given input and output streams.
func NewWire(cfg Config, in io.Reader, out io.Writer) (*Wire, error) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	if err := log.SetLevel(level); err != nil {
		return nil, err
	}

	return &Wire{
		Console:    console.New(in, out),
		Change:     changesvc.New(domain.YenTable),
		Palindrome: palindromesvc.New(),
		Prime:      primesvc.New(),
	}, nil
}
