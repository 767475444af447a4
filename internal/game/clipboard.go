package game

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

var errNoClipboard = errors.New("no clipboard utility available")

// shareText is what the game-over card copies to the clipboard.
func shareText(score int, summary string) string {
	if summary == "" {
		return fmt.Sprintf("I scored %d in Good Looking Snake", score)
	}
	return fmt.Sprintf("I scored %d in Good Looking Snake: %s", score, summary)
}

// copyToClipboard is swapped out in tests.
var copyToClipboard = func(s string) error {
	if clipboard.Unsupported {
		return errNoClipboard
	}
	return clipboard.WriteAll(s)
}

// shareScore copies the result line to the system clipboard.
func shareScore(score int, summary string) error {
	if err := copyToClipboard(shareText(score, summary)); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}
