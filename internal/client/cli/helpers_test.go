package cli

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/aroma/internal/client/config"
	"github.com/dmitrijs2005/aroma/internal/client/repositories/kv"
	"github.com/dmitrijs2005/aroma/internal/client/storage"
	"github.com/dmitrijs2005/aroma/internal/logging"
)

func testConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	c.StorageBackend = storage.BackendMemory
	c.MenuSource = ""
	c.LogFile = ""
	return c
}

// newTestApp builds an App over an in-memory store reading the given input.
func newTestApp(t *testing.T, store *storage.Store, input string) (*App, *bytes.Buffer) {
	t.Helper()
	if store == nil {
		store = storage.New(kv.NewMemoryRepository())
	}
	var out bytes.Buffer
	a := newApp(testConfig(), store, logging.Nop(), strings.NewReader(input), &out)
	return a, &out
}

func stubInputs(t *testing.T, answers []string, password string) {
	t.Helper()
	origST, origGP, origML := getSimpleText, getPassword, getMultiline

	next := func() (string, error) {
		if len(answers) == 0 {
			return "", io.EOF
		}
		v := answers[0]
		answers = answers[1:]
		return v, nil
	}
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return next() }
	getMultiline = func(_ *bufio.Reader, _ string, _ int, _ io.Writer) (string, error) { return next() }
	getPassword = func(_ io.Writer) ([]byte, error) { return []byte(password), nil }

	t.Cleanup(func() {
		getSimpleText, getPassword, getMultiline = origST, origGP, origML
	})
}

func silencePrompt(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}
