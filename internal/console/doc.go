// Package console is the line-oriented terminal a session reads prompts from
// and writes results to.
//
// Lines are returned without their trailing "\n" or "\r\n"; nothing else is
// trimmed, so surrounding spaces reach validation untouched. A final line
// without a newline is still returned. io.EOF is reported only when no
// characters were read at all.
package console
