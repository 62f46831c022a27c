package interfaces

// Console is the line-oriented terminal a session talks to.
type Console interface {
	// Prompt writes label without a trailing newline and reads one line.
	Prompt(label string) (string, error)
	// Println writes a single line of output.
	Println(line string) error
}
