package console_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kozeni/internal/console"
)

func TestPrompt_ReadsLinesInOrder(t *testing.T) {
	var out bytes.Buffer
	c := console.New(strings.NewReader("100\r\n1000\n"), &out)

	first, err := c.Prompt("price: ")
	require.NoError(t, err)
	second, err := c.Prompt("paid: ")
	require.NoError(t, err)

	assert.Equal(t, "100", first)
	assert.Equal(t, "1000", second)
	assert.Equal(t, "price: paid: ", out.String())
}

func TestPrompt_KeepsSurroundingSpaces(t *testing.T) {
	c := console.New(strings.NewReader(" 100 \n"), io.Discard)

	got, err := c.Prompt("")
	require.NoError(t, err)
	assert.Equal(t, " 100 ", got)
}

func TestPrompt_LastLineWithoutNewline(t *testing.T) {
	c := console.New(strings.NewReader("とまと"), io.Discard)

	got, err := c.Prompt("")
	require.NoError(t, err)
	assert.Equal(t, "とまと", got)

	_, err = c.Prompt("")
	assert.True(t, errors.Is(err, io.EOF))
}

func TestPrompt_EmptyLineIsNotEOF(t *testing.T) {
	c := console.New(strings.NewReader("\n"), io.Discard)

	got, err := c.Prompt("")
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestPrompt_EOF(t *testing.T) {
	c := console.New(strings.NewReader(""), io.Discard)

	_, err := c.Prompt("")
	assert.ErrorIs(t, err, io.EOF)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestPrintln(t *testing.T) {
	var out bytes.Buffer
	c := console.New(strings.NewReader(""), &out)

	require.NoError(t, c.Println("回文です"))
	assert.Equal(t, "回文です\n", out.String())

	assert.Error(t, console.New(strings.NewReader(""), failingWriter{}).Println("x"))
}
