package cli

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"

	"github.com/dmitrijs2005/aroma/internal/common"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// ErrEmptyPassword is returned when the password prompt is answered with nothing.
var ErrEmptyPassword = errors.New("empty password")

// GetSimpleText prints "prompt: " to w and reads one trimmed line from
// reader. A last line without a newline is still returned.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+": "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword reads the password from the terminal without echo. Blank input
// is wiped and rejected with ErrEmptyPassword. The caller wipes the result.
func GetPassword(w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, "Parolă: "); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, fmt.Errorf("read password: %w", err)
	}
	if len(bytes.TrimSpace(pw)) == 0 {
		common.WipeByteArray(pw)
		return nil, ErrEmptyPassword
	}
	return pw, nil
}

// GetMultiline reads a message body line by line. An empty line finishes the
// body once it has at least minRunes characters; until then the user is told
// how many are missing and can keep typing. EOF ends the body as it is.
func GetMultiline(reader *bufio.Reader, prompt string, minRunes int, w io.Writer) (string, error) {
	if _, err := fmt.Fprintf(w, "%s (linie goală pentru a termina)\n", prompt); err != nil {
		return "", err
	}

	var lines []string
	body := func() string { return strings.TrimSpace(strings.Join(lines, "\n")) }
	for {
		line, err := reader.ReadString('\n')
		if text := strings.TrimRight(line, "\r\n"); text != "" {
			lines = append(lines, text)
			if err == nil {
				continue
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return body(), nil
			}
			return "", err
		}

		missing := minRunes - utf8.RuneCountInString(body())
		if missing <= 0 {
			return body(), nil
		}
		fmt.Fprintf(w, "  mai sunt necesare %d caractere\n", missing)
	}
}
