package commands

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCommand(t *testing.T) {
	tests := []struct {
		in   string
		want Command
	}{
		{"show", Command{Op: SHOW, Args: []string{}}},
		{"  epoch  /tmp/s.yaml ", Command{Op: EPOCH, Args: []string{"/tmp/s.yaml"}}},
		{"balance 00ab", Command{Op: BALANCE, Args: []string{"00ab"}}},
		{"save", Command{Op: SAVE, Args: []string{}}},
		{"dot /tmp/ledger.dot", Command{Op: DOT, Args: []string{"/tmp/ledger.dot"}}},
		{"exit", Command{Op: QUIT, Args: []string{}}},
	}
	for _, tt := range tests {
		c, err := CreateCommand(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, c, tt.in)
	}
}

func TestCreateInvalidCommand(t *testing.T) {
	_, err := CreateCommand("   ")
	assert.True(t, errors.Is(err, ErrEmptyCommand))

	for _, in := range []string{"mine", "show 1", "epoch", "balance xyz", "balance", "dot a b"} {
		_, err := CreateCommand(in)
		assert.True(t, errors.Is(err, ErrInvalidCommand), in)
	}
}
