// Package palindrome checks whether a line of text reads the same backwards.
//
// Text is normalized to NFC first so that a kana typed with a combining voiced
// mark compares equal to its precomposed form, then reversed rune by rune.
package palindrome
