package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tuneinsight/sinquad/quadrature"
)

const piOutput = "Enter interval's left border: Enter interval's right border: " +
	"5 2.03328 2.00011\n" +
	"10 2.00825 2.00001\n" +
	"20 2.00206 2.00000\n" +
	"100 2.00008 2.00000\n" +
	"500 2.00000 2.00000\n" +
	"1000 2.00000 2.00000\n"

func execute(t *testing.T, input string, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)

	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

// closedWriter accepts limit writes and then fails like a closed pipe.
type closedWriter struct {
	buf   bytes.Buffer
	limit int
}

func (w *closedWriter) Write(p []byte) (int, error) {
	if w.limit == 0 {
		return 0, io.ErrClosedPipe
	}
	w.limit--
	return w.buf.Write(p)
}

func TestRootCmd(t *testing.T) {

	t.Run("EndToEnd", func(t *testing.T) {
		stdout, stderr, err := execute(t, "0\n3.14159265358\n")
		require.NoError(t, err)
		require.Empty(t, stderr)
		require.Equal(t, piOutput, stdout)

		lines := strings.Split(strings.TrimSuffix(strings.TrimPrefix(stdout, quadrature.PromptLeft+quadrature.PromptRight), "\n"), "\n")
		require.Len(t, lines, 6)
		var sizes []string
		for _, line := range lines {
			sizes = append(sizes, strings.Fields(line)[0])
		}
		require.Equal(t, []string{"5", "10", "20", "100", "500", "1000"}, sizes)
	})

	t.Run("Idempotence", func(t *testing.T) {
		out0, _, err := execute(t, "0.25 2.5")
		require.NoError(t, err)
		out1, _, err := execute(t, "0.25 2.5")
		require.NoError(t, err)
		require.Equal(t, out0, out1)
	})

	t.Run("InvalidInput", func(t *testing.T) {
		for input, msg := range map[string]string{
			"-1\n":       "Left border of the interval must be greater than or equal to 0",
			"0\n4.0\n":   "Right border of the interval must be less than or equal to pi",
			"2.0\n1.0\n": "Right border of the interval must be greater than left",
			"x\n":        "Cannot read interval's left border",
		} {
			stdout, _, err := execute(t, input)
			require.ErrorIs(t, err, quadrature.ErrInput)
			require.Contains(t, err.Error(), msg)
			require.NotContains(t, stdout, "\n", "no row is printed on invalid input")
		}
	})

	t.Run("UnexpectedArgs", func(t *testing.T) {
		_, _, err := execute(t, "0 1", "extra")
		require.Error(t, err)
	})

	t.Run("Stats", func(t *testing.T) {
		stdout, _, err := execute(t, "0\n3.14159265358\n", "--stats")
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(stdout, piOutput))
		require.Contains(t, stdout, "rectangle")
		require.Contains(t, stdout, "simpson")
	})

	t.Run("Digest", func(t *testing.T) {
		out0, _, err := execute(t, "0\n1\n", "--digest")
		require.NoError(t, err)
		out1, _, err := execute(t, "0\n1\n", "--digest")
		require.NoError(t, err)
		require.Equal(t, out0, out1)
		require.Regexp(t, `blake3 [0-9a-f]{64}\n$`, out0)
	})

	t.Run("Verbose", func(t *testing.T) {
		stdout, _, err := execute(t, "0\n1\n", "-v")
		require.NoError(t, err)
		require.Contains(t, stdout, "1000 ")
	})
}

func TestRun(t *testing.T) {

	t.Run("OutputError", func(t *testing.T) {
		// prompts + 3 rows
		w := &closedWriter{limit: 5}
		err := run(strings.NewReader("0\n3.14159265358\n"), w, config{}, zap.NewNop())
		require.ErrorIs(t, err, quadrature.ErrOutput)
		require.Contains(t, err.Error(), "in experiment 3")
		require.Equal(t, 3, strings.Count(w.buf.String(), "\n"))
	})

	t.Run("PromptError", func(t *testing.T) {
		err := run(strings.NewReader("0\n1\n"), &closedWriter{}, config{}, zap.NewNop())
		require.ErrorIs(t, err, quadrature.ErrOutput)
	})
}
