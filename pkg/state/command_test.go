package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jwebster45206/dream-forest/pkg/scenario"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		input    string
		expected Command
	}{
		{input: "quit", expected: Command{Type: CmdQuit}},
		{input: "east", expected: Command{Type: CmdMove, Direction: scenario.East}},
		{input: "south", expected: Command{Type: CmdMove, Direction: scenario.South}},
		{input: "help", expected: Command{Type: CmdHelp}},
		{input: "north", expected: Command{Type: CmdMove, Direction: scenario.North}},
		{input: "west", expected: Command{Type: CmdMove, Direction: scenario.West}},
		{input: "Quit", expected: Command{Type: CmdRemark}},
		{input: "quit ", expected: Command{Type: CmdRemark}},
		{input: " east", expected: Command{Type: CmdRemark}},
		{input: "HELP", expected: Command{Type: CmdRemark}},
		{input: "blah", expected: Command{Type: CmdRemark}},
		{input: "", expected: Command{Type: CmdNone}},
		{input: "   \t", expected: Command{Type: CmdNone}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseCommand(tt.input))
		})
	}
}
