package cmd

import (
	"bytes"
	"context"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	pkgerr "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"massnet.org/shasum/cmdutils"
	"massnet.org/shasum/config"
	"massnet.org/shasum/crypto/sha256"
)

const input = "abcd\n\nabc\nabcd\n"

var expected = []string{
	"88d4266fd4e6338d13b845fcf289579d209c897823b9217da3e161936f031589  abcd",
	"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855  ",
	"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad  abc",
	"88d4266fd4e6338d13b845fcf289579d209c897823b9217da3e161936f031589  abcd",
}

func TestBatch_Stdin(t *testing.T) {
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOutput(&out)
	cmd.SetIn(strings.NewReader(input))
	cmd.SetArgs([]string{"--workers", "3"})

	require.Equal(t, 0, cmdutils.Run(cmd, &errOut), errOut.String())
	assert.Equal(t, strings.Join(expected, "\n")+"\n", out.String())
}

func TestReadLines_KeepsCarriageReturn(t *testing.T) {
	lines, err := readLines(strings.NewReader("abc\r\nabc\n\r\nlast"))
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("abc\r"), []byte("abc"), []byte("\r"), []byte("last")}, lines)

	lines, err = readLines(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestRunBatch_CRLF(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runBatch(context.Background(), config.DefaultBatch(), strings.NewReader("abc\r\n"), &out))
	want, err := sha256.HashString("abc\r")
	require.NoError(t, err)
	assert.Equal(t, want+"  abc\r\n", out.String())
	assert.NotContains(t, out.String(), "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad")
}

func TestBatch_File(t *testing.T) {
	dir, err := ioutil.TempDir("", "sha256batch")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	file := filepath.Join(dir, "lines.txt")
	require.NoError(t, ioutil.WriteFile(file, []byte(input), 0600))

	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOutput(&out)
	cmd.SetArgs([]string{"--cache_size", "0", file})

	require.Equal(t, 0, cmdutils.Run(cmd, &errOut), errOut.String())
	assert.Equal(t, strings.Join(expected, "\n")+"\n", out.String())
}

func TestBatch_Errors(t *testing.T) {
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOutput(&out)
	cmd.SetArgs([]string{"a", "b"})
	assert.Equal(t, 2, cmdutils.Run(cmd, &errOut))
	assert.Contains(t, errOut.String(), "Usage:")

	cmd = NewRootCmd()
	errOut.Reset()
	cmd.SetOutput(&out)
	cmd.SetArgs([]string{filepath.Join(os.TempDir(), "no-such-sha256batch-input")})
	assert.Equal(t, 1, cmdutils.Run(cmd, &errOut))
	assert.Contains(t, errOut.String(), "Failed to read input")
}

func TestRunBatch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := runBatch(ctx, config.DefaultBatch(), strings.NewReader(input), &out)
	assert.Equal(t, context.Canceled, pkgerr.Cause(err))
	assert.Empty(t, out.String())
}
