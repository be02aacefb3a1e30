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

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

// GetSimpleText prints a prompt to w and reads a single line of input from
// reader, trimming the trailing newline. If EOF occurs after some input was
// read, the partial line is returned.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword prints a password prompt to w and reads a password from the
// terminal without echo. The returned byte slice should be wiped by the
// caller when no longer needed.
func GetPassword(w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

// GetTopics prints the topic vocabulary and reads a comma-separated list of
// topic identifiers. Empty input yields an empty list; whitespace around
// entries is ignored. Validation belongs to the vault, not the console.
func GetTopics(reader *bufio.Reader, prompt string, topics []string, w io.Writer) ([]string, error) {
	if _, err := fmt.Fprintf(w, "%s\nAvailable topics: %s\n", prompt, strings.Join(topics, ", ")); err != nil {
		return nil, err
	}

	line, err := GetSimpleText(reader, "Enter topics, comma-separated (empty for none)", w)
	if err != nil {
		return nil, err
	}

	selected := make([]string, 0)
	for _, part := range strings.Split(line, ",") {
		if t := strings.TrimSpace(part); t != "" {
			selected = append(selected, t)
		}
	}
	return selected, nil
}
