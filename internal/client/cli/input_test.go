package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetSimpleText_TrimsInput(t *testing.T) {
	out := &bytes.Buffer{}
	got, err := GetSimpleText(readerFromLines("  hello  "), "Say something", out)
	require.NoError(t, err)
	require.Equal(t, "hello", got)
	require.Contains(t, out.String(), "Say something")
}

func TestGetSimpleText_PartialLineBeforeEOF(t *testing.T) {
	out := &bytes.Buffer{}
	r := bufio.NewReader(strings.NewReader("no newline"))
	got, err := GetSimpleText(r, "p", out)
	require.NoError(t, err)
	require.Equal(t, "no newline", got)
}

func TestGetMultiline_JoinsUntilBlankLine(t *testing.T) {
	out := &bytes.Buffer{}
	r := readerFromLines("first", "second", "", "ignored")
	got, err := GetMultiline(r, "Body", out)
	require.NoError(t, err)
	require.Equal(t, "first\nsecond", got)
}

func TestGetPassword_UsesTerminalReader(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte("s3cret"), nil }
	defer func() { readPassword = orig }()

	out := &bytes.Buffer{}
	got, err := GetPassword(out)
	require.NoError(t, err)
	require.Equal(t, "s3cret", got)
	require.Contains(t, out.String(), "Enter password")
}
