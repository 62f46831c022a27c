package prime_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kozeni/internal/domain"
	"kozeni/internal/services/prime"
)

func judge(t *testing.T, raw string) bool {
	t.Helper()
	v, err := prime.New().Judge(context.Background(), raw)
	require.NoError(t, err, raw)
	assert.Equal(t, raw, v.Input)
	return v.Prime
}

func TestJudge_SmallNumbers(t *testing.T) {
	primes := map[string]bool{
		"2": true, "3": true, "5": true, "7": true, "11": true, "13": true, "97": true,
	}
	for _, raw := range []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "11", "13", "15", "25", "49", "97", "100"} {
		assert.Equal(t, primes[raw], judge(t, raw), raw)
	}
}

func TestJudge_PerfectSquaresAreComposite(t *testing.T) {
	for _, raw := range []string{"4", "9", "25", "121", "169", "10201"} {
		assert.False(t, judge(t, raw), raw)
	}
}

func TestJudge_AgreesWithProbablyPrime(t *testing.T) {
	svc := prime.New()
	for i := int64(0); i <= 3000; i++ {
		n := big.NewInt(i)
		v, err := svc.Judge(context.Background(), n.String())
		require.NoError(t, err)
		require.Equal(t, n.ProbablyPrime(20), v.Prime, "n=%d", i)
	}
}

func TestJudge_LargeNumbers(t *testing.T) {
	cases := []struct {
		raw   string
		prime bool
	}{
		{raw: "1000000007", prime: true},
		{raw: "1099511627791", prime: true},                            // smallest prime above 2^40
		{raw: "18446744073709551557", prime: true},                     // largest 64-bit prime
		{raw: "18446744073709551615", prime: false},                    // 2^64 - 1
		{raw: "170141183460469231731687303715884105727", prime: true},  // 2^127 - 1
		{raw: "340282366920938463463374607431768211457", prime: false}, // 2^128 + 1
	}
	for _, tc := range cases {
		assert.Equal(t, tc.prime, judge(t, tc.raw), tc.raw)
	}
}

func TestJudge_FullWidthDigits(t *testing.T) {
	assert.True(t, judge(t, "１３"))
}

func TestJudge_InvalidInput(t *testing.T) {
	svc := prime.New()
	for _, raw := range []string{"", "abc", "-7", "7.0", "1 3", "十三"} {
		_, err := svc.Judge(context.Background(), raw)
		require.Error(t, err, raw)
		assert.True(t, errors.Is(err, domain.ErrInvalidNumber), raw)

		var invalid *domain.InvalidNumberError
		require.True(t, errors.As(err, &invalid))
		assert.Equal(t, raw, invalid.Input)
	}
}

func TestJudge_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := prime.New().Judge(ctx, "1000000007")
	assert.ErrorIs(t, err, context.Canceled)
}
