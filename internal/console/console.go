package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"kozeni/internal/domain"
)

// Console reads lines from in and writes to out.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a console over in and out.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

// Prompt writes label with no trailing newline and returns the next line.
func (c *Console) Prompt(label string) (string, error) {
	if _, err := io.WriteString(c.out, label); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}
	return c.readLine()
}

// Println writes line followed by a newline.
func (c *Console) Println(line string) error {
	if _, err := io.WriteString(c.out, line+"\n"); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	switch {
	case err == nil:
	case errors.Is(err, io.EOF):
		if line == "" {
			return "", io.EOF
		}
	default:
		return "", fmt.Errorf("read line: %w", err)
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// Compile-time assertion that Console implements domain.Console.
var _ domain.Console = (*Console)(nil)
