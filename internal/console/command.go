package console

import "strings"

// CommandKind tells what a line typed during a round means.
type CommandKind int

const (
	CmdEmpty  CommandKind = iota // blank line
	CmdLetter                    // a letter guess (validated by the engine)
	CmdWord                      // "!" or "!palavra": whole-word guess
	CmdHint                      // "?"
	CmdQuit                      // "sair" / "quit"
)

// Command is one parsed input line. Text holds the guess for CmdLetter and
// CmdWord; it is empty for a bare "!" which asks for the word separately.
type Command struct {
	Kind CommandKind
	Text string
}

// ParseCommand classifies a line. Quit words are only recognised as whole
// lines, so they never collide with single-letter guesses.
func ParseCommand(line string) Command {
	s := strings.TrimSpace(line)
	switch {
	case s == "":
		return Command{Kind: CmdEmpty}
	case s == "?":
		return Command{Kind: CmdHint}
	case strings.HasPrefix(s, "!"):
		return Command{Kind: CmdWord, Text: strings.TrimSpace(s[1:])}
	}
	switch strings.ToLower(s) {
	case "sair", "quit":
		return Command{Kind: CmdQuit}
	}
	return Command{Kind: CmdLetter, Text: s}
}
