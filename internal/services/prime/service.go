package prime

import (
	"context"
	"math/big"

	"kozeni/internal/domain"
	"kozeni/internal/log"
	"kozeni/internal/numeral"
)

const (
	// trialLimit bounds the inputs that are judged by trial division.
	trialLimit = uint64(1) << 40

	// millerRabinRounds is passed to big.Int.ProbablyPrime alongside its
	// built-in Baillie-PSW test.
	millerRabinRounds = 20

	// checkEvery is how many divisors are tried between context checks.
	checkEvery = 1 << 16
)

// Service judges primality.
type Service struct{}

// New returns a prime service.
func New() *Service { return &Service{} }

// Judge validates raw as a natural number and reports whether it is prime.
// 0 and 1 are not prime.
func (s *Service) Judge(ctx context.Context, raw string) (domain.PrimeVerdict, error) {
	digits, ok := numeral.Fold(raw)
	if !ok {
		return domain.PrimeVerdict{}, &domain.InvalidNumberError{Input: raw}
	}
	n, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return domain.PrimeVerdict{}, &domain.InvalidNumberError{Input: raw}
	}

	var prime bool
	if n.IsUint64() && n.Uint64() < trialLimit {
		var err error
		if prime, err = trialDivision(ctx, n.Uint64()); err != nil {
			return domain.PrimeVerdict{}, err
		}
		log.Debug("judged by trial division", "n", n, "prime", prime)
	} else {
		prime = n.ProbablyPrime(millerRabinRounds)
		log.Debug("judged by probable prime test", "n", n, "prime", prime)
	}
	return domain.PrimeVerdict{Input: raw, Prime: prime}, nil
}

// trialDivision tests n against 2 and every odd d with d*d <= n.
func trialDivision(ctx context.Context, n uint64) (bool, error) {
	switch {
	case n < 2:
		return false, nil
	case n < 4:
		return true, nil
	case n%2 == 0:
		return false, nil
	}
	for d, i := uint64(3), 0; d*d <= n; d, i = d+2, i+1 {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return false, err
			}
		}
		if n%d == 0 {
			return false, nil
		}
	}
	return true, nil
}

// Compile-time assertion that Service implements domain.PrimeService.
var _ domain.PrimeService = (*Service)(nil)
