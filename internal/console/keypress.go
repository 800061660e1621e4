// Package console handles interactive terminal input.
package console

import (
	"bufio"
	"io"
	"os"

	"golang.org/x/term"
)

// WaitForKey blocks until a single key is pressed on in. When in is not a
// terminal it consumes one line instead; EOF counts as a keypress.
func WaitForKey(in *os.File) error {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return WaitForLine(in)
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return WaitForLine(in)
	}
	defer term.Restore(fd, state)

	buf := make([]byte, 1)
	if _, err := in.Read(buf); err != nil && err != io.EOF {
		return err
	}
	return nil
}

// WaitForLine reads up to and including the next newline from r.
func WaitForLine(r io.Reader) error {
	_, err := bufio.NewReader(r).ReadString('\n')
	if err == io.EOF {
		return nil
	}
	return err
}
