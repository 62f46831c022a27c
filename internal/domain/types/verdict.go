package types

// PalindromeResult is the outcome of checking a line of text.
type PalindromeResult struct {
	Text       string
	Reversed   string
	Palindrome bool
}

// PrimeVerdict reports whether a natural number is prime.
type PrimeVerdict struct {
	Input string
	Prime bool
}
