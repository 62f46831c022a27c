package palindrome

import (
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"kozeni/internal/domain"
	"kozeni/internal/log"
)

// MinLength is the fewest characters a checkable text may have.
const MinLength = 2

// Service checks texts for palindromes.
type Service struct{}

// New returns a palindrome service.
func New() *Service { return &Service{} }

// Check reverses text and reports whether it matches the original.
func (s *Service) Check(text string) (domain.PalindromeResult, error) {
	normalized := norm.NFC.String(text)
	if utf8.RuneCountInString(normalized) < MinLength {
		return domain.PalindromeResult{}, &domain.TextTooShortError{Text: text, Min: MinLength}
	}

	reversed := reverse(normalized)
	log.Debug("reversed text", "text", normalized, "reversed", reversed)
	return domain.PalindromeResult{
		Text:       normalized,
		Reversed:   reversed,
		Palindrome: normalized == reversed,
	}, nil
}

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// Compile-time assertion that Service implements domain.PalindromeService.
var _ domain.PalindromeService = (*Service)(nil)
