package console

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranscript_ClearDiscardsText(t *testing.T) {
	var tr Transcript

	fmt.Fprintln(&tr, "first room")
	assert.Equal(t, "first room\n", tr.String())

	assert.NoError(t, tr.Clear())
	assert.Empty(t, tr.String())
	assert.Equal(t, 1, tr.Clears())

	fmt.Fprint(&tr, "second room")
	assert.Equal(t, "second room", tr.String())
}

func TestTerminal_PlainWhenPiped(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf)

	assert.Equal(t, "What now? ", term.Prompt("What now? "))

	_, err := fmt.Fprint(term, "hello")
	assert.NoError(t, err)
	assert.Equal(t, "hello", buf.String())
}

func TestTerminal_ClearWritesEscapes(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf)

	assert.NoError(t, term.Clear())
	assert.Contains(t, buf.String(), "\x1b[")
}
