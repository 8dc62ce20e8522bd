// Package input collects the tokens furl works on: positional arguments
// first, then whitespace separated words from standard input.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// DefaultMaxTokenSize is used when a caller passes a non-positive limit.
const DefaultMaxTokenSize = 1 << 20

// Tokens returns args followed by every word read from r. A nil r yields args
// only. Words longer than maxTokenSize bytes make Tokens fail.
func Tokens(args []string, r io.Reader, maxTokenSize int) ([]string, error) {
	tokens := append([]string(nil), args...)
	if r == nil {
		return tokens, nil
	}

	if maxTokenSize <= 0 {
		maxTokenSize = DefaultMaxTokenSize
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, min(64*1024, maxTokenSize)), maxTokenSize)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		tokens = append(tokens, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("could not read input: %w", err)
	}

	return tokens, nil
}

// IsTerminal reports whether f is an interactive terminal, in which case furl
// does not wait for input on it.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
