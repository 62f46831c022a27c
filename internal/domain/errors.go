package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAmount is matched by every InvalidAmountError.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInsufficientFunds is matched by every InsufficientFundsError.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrTextTooShort is matched by every TextTooShortError.
	ErrTextTooShort = errors.New("text too short")
	// ErrInvalidNumber is matched by every InvalidNumberError.
	ErrInvalidNumber = errors.New("invalid number")
)

// InvalidAmountError reports a price or tendered amount that is not a digit string.
type InvalidAmountError struct {
	Input string
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("%s: %q", ErrInvalidAmount, e.Input)
}

func (e *InvalidAmountError) Is(target error) bool { return target == ErrInvalidAmount }

// InsufficientFundsError reports a tendered amount below the price.
type InsufficientFundsError struct {
	Shortfall Amount
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("%s: short by %d", ErrInsufficientFunds, e.Shortfall)
}

func (e *InsufficientFundsError) Is(target error) bool { return target == ErrInsufficientFunds }

// TextTooShortError reports palindrome input with fewer than Min characters.
type TextTooShortError struct {
	Text string
	Min  int
}

func (e *TextTooShortError) Error() string {
	return fmt.Sprintf("%s: %q has fewer than %d characters", ErrTextTooShort, e.Text, e.Min)
}

func (e *TextTooShortError) Is(target error) bool { return target == ErrTextTooShort }

// InvalidNumberError reports prime-test input that is not a natural number.
type InvalidNumberError struct {
	Input string
}

func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("%s: %q", ErrInvalidNumber, e.Input)
}

func (e *InvalidNumberError) Is(target error) bool { return target == ErrInvalidNumber }
