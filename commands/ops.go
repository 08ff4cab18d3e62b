package commands

import (
	"encoding/hex"
	"strings"

	"github.com/cockroachdb/errors"
)

type Operation int

const (
	// Zero value, never valid.
	DEFAULT Operation = iota
	// Run the epochs of a scenario file against the current ledger.
	EPOCH
	// Print every unspent output.
	SHOW
	// Print the balance of a hex public key.
	BALANCE
	// Store the current ledger snapshot.
	SAVE
	// Write a graphviz rendering of the ledger to a file.
	DOT
	// Leave the interactive session.
	QUIT
)

var (
	// ErrEmptyCommand indicates nothing was typed.
	ErrEmptyCommand = errors.New("command is empty")
	// ErrInvalidCommand indicates an unknown operation or bad arguments.
	ErrInvalidCommand = errors.New("invalid command")
)

// A command contains a operation and many arguments.
type Command struct {
	Op   Operation
	Args []string
}

func (c Command) IsValid() bool {
	switch c.Op {
	case SHOW, SAVE, QUIT:
		return len(c.Args) == 0
	case EPOCH, DOT:
		return len(c.Args) == 1
	case BALANCE:
		if len(c.Args) != 1 {
			return false
		}
		// public key must be hex.
		_, err := hex.DecodeString(c.Args[0])
		return err == nil
	default:
		return false
	}
}

// From string, create
func CreateCommand(s string) (Command, error) {
	// split command by whitespace.
	ss := strings.Fields(s)
	if len(ss) == 0 {
		return Command{}, ErrEmptyCommand
	}
	cmd := Command{}
	switch ss[0] {
	case "epoch":
		cmd.Op = EPOCH
	case "show":
		cmd.Op = SHOW
	case "balance":
		cmd.Op = BALANCE
	case "save":
		cmd.Op = SAVE
	case "dot":
		cmd.Op = DOT
	case "quit", "exit":
		cmd.Op = QUIT
	}
	cmd.Args = ss[1:]
	if !cmd.IsValid() {
		return Command{}, errors.Wrapf(ErrInvalidCommand, "%q", s)
	}
	return cmd, nil
}
