package palindrome_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kozeni/internal/domain"
	"kozeni/internal/services/palindrome"
)

func TestCheck(t *testing.T) {
	cases := []struct {
		name       string
		text       string
		reversed   string
		palindrome bool
	}{
		{name: "tomato", text: "とまと", reversed: "とまと", palindrome: true},
		{name: "salad", text: "サラダ", reversed: "ダラサ", palindrome: false},
		{name: "ascii", text: "level", reversed: "level", palindrome: true},
		{name: "two chars", text: "ab", reversed: "ba", palindrome: false},
		{name: "case sensitive", text: "Aa", reversed: "aA", palindrome: false},
		{name: "spaces kept", text: "a b a", reversed: "a b a", palindrome: true},
	}

	svc := palindrome.New()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := svc.Check(tc.text)
			require.NoError(t, err)
			assert.Equal(t, tc.reversed, got.Reversed)
			assert.Equal(t, tc.palindrome, got.Palindrome)
		})
	}
}

func TestCheck_NormalizesCombiningMarks(t *testing.T) {
	// "だいだ" with the first だ decomposed into た + combining voiced mark.
	decomposed := "\u305f\u3099\u3044\u3060"

	got, err := palindrome.New().Check(decomposed)
	require.NoError(t, err)
	assert.True(t, got.Palindrome)
	assert.Equal(t, "だいだ", got.Reversed)
}

func TestCheck_TooShort(t *testing.T) {
	svc := palindrome.New()
	for _, text := range []string{"", "a", "と", "\u305f\u3099"} {
		_, err := svc.Check(text)
		require.Error(t, err, text)
		assert.True(t, errors.Is(err, domain.ErrTextTooShort), text)

		var short *domain.TextTooShortError
		require.True(t, errors.As(err, &short))
		assert.Equal(t, palindrome.MinLength, short.Min)
	}
}
