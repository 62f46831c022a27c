package commands

import (
	"errors"
	"fmt"

	"kozeni/internal/domain"
)

// reportedError marks a domain error whose message has already been shown.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

// report prints the user-facing message for a domain error. Errors without a
// message are returned unchanged for the caller to log.
func report(con domain.Console, err error) error {
	if err == nil {
		return nil
	}
	msg, ok := userMessage(err)
	if !ok {
		return err
	}
	if werr := con.Println(msg); werr != nil {
		return errors.Join(err, werr)
	}
	return &reportedError{err: err}
}

func userMessage(err error) (string, bool) {
	var (
		invalidAmount *domain.InvalidAmountError
		insufficient  *domain.InsufficientFundsError
		tooShort      *domain.TextTooShortError
		invalidNumber *domain.InvalidNumberError
	)
	switch {
	case errors.As(err, &invalidAmount):
		return fmt.Sprintf(fmtInvalidAmount, invalidAmount.Input), true
	case errors.As(err, &insufficient):
		return fmt.Sprintf(fmtInsufficientFunds, insufficient.Shortfall), true
	case errors.As(err, &tooShort):
		return msgTextTooShort, true
	case errors.As(err, &invalidNumber):
		return msgInvalidNumber, true
	default:
		return "", false
	}
}
