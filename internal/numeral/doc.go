// Package numeral recognises unsigned decimal digit strings as typed at a
// Japanese keyboard.
//
// Both ASCII digits and their full-width forms (０-９) are accepted. Full-width
// digits are folded to ASCII with golang.org/x/text/width before conversion so
// callers can hand the result to strconv or math/big. Signs, spaces, decimal
// points and digits from other scripts are rejected.
package numeral
