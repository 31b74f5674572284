package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword and isTerminal are test seams for the x/term calls.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The trailing newline is trimmed. If EOF occurs after some input was read,
// the partial line is returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	return readLine(reader)
}

func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword prompts on w and reads a secret without echo when stdin is a
// terminal. Piped input is read as a plain line from reader.
func GetPassword(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+": "); err != nil {
		return "", err
	}

	fd := int(os.Stdin.Fd())
	if !isTerminal(fd) {
		return readLine(reader)
	}

	pw, err := readPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}
