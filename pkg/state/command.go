package state

import (
	"strings"

	"github.com/jwebster45206/dream-forest/pkg/scenario"
)

type CommandType string

const (
	CmdMove   CommandType = "move"
	CmdQuit   CommandType = "quit"
	CmdHelp   CommandType = "help"
	CmdRemark CommandType = "remark"
	CmdNone   CommandType = "" // Blank input, nothing to do
)

const (
	quitWord = "quit"
	helpWord = "help"
)

// Command is one classified line of player input.
type Command struct {
	Type      CommandType
	Direction scenario.Direction // set for CmdMove
}

// parseCommand classifies one line of input. Matching is exact: "Quit",
// " quit" and "quit " are not the quit command. Every compass word is a
// move; whether the move succeeds is up to the location.
func parseCommand(input string) Command {
	if input == quitWord {
		return Command{Type: CmdQuit}
	}
	if d, ok := scenario.ParseDirection(input); ok {
		return Command{Type: CmdMove, Direction: d}
	}
	switch {
	case input == helpWord:
		return Command{Type: CmdHelp}
	case strings.TrimSpace(input) != "":
		return Command{Type: CmdRemark}
	}
	return Command{Type: CmdNone}
}
