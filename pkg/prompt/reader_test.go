package prompt

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReader(input string, opts ...Option) (*Reader, *bytes.Buffer) {
	var out bytes.Buffer
	return NewReader(strings.NewReader(input), &out, opts...), &out
}

func TestReadIntValid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int32
	}{
		{name: "positive", input: "42\n", want: 42},
		{name: "negative", input: "-100\n", want: -100},
		{name: "zero", input: "0\n", want: 0},
		{name: "surrounding spaces", input: "   7  \n", want: 7},
		{name: "trailing garbage", input: "12abc\n", want: 12},
		{name: "fraction truncated", input: "3.7\n", want: 3},
		{name: "no terminator", input: "5", want: 5},
		{name: "windows line ending", input: "9\r\n", want: 9},
		{name: "leading zero", input: "010\n", want: 10},
		{name: "octal looking", input: "08\n", want: 8},
		{name: "hex prefix stops at x", input: "0x10\n", want: 0},
		{name: "binary prefix stops at b", input: "0b11\n", want: 0},
		{name: "underscore ends number", input: "1_000\n", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, out := newTestReader(tt.input)
			got, err := r.ReadInt("Enter number: ")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "Enter number: ", out.String())
		})
	}
}

func TestReadIntInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "letters", input: "abc\n"},
		{name: "sign only", input: "-\n"},
		{name: "overflow", input: "2147483648\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, out := newTestReader(tt.input)
			got, err := r.ReadInt("Enter number: ")
			require.Error(t, err)
			assert.True(t, IsInvalid(err))
			assert.Zero(t, got)
			assert.Equal(t, "Enter number: Invalid input. Please enter a valid integer.\n", out.String())

			var readErr *ReadError
			require.True(t, errors.As(err, &readErr))
			assert.Equal(t, "integer", readErr.Kind)
			assert.Equal(t, strings.TrimSuffix(tt.input, "\n"), readErr.Input)
		})
	}
}

func TestReadFloatAndDouble(t *testing.T) {
	r, _ := newTestReader("3.14\n2.71828\n")

	f, err := r.ReadFloat("f: ")
	require.NoError(t, err)
	assert.InDelta(t, 3.14, f, 0.001)

	d, err := r.ReadDouble("d: ")
	require.NoError(t, err)
	assert.InDelta(t, 2.71828, d, 0.00001)
}

func TestReadDoubleInvalidDiagnostic(t *testing.T) {
	r, out := newTestReader("twelve\n")
	_, err := r.ReadDouble("Value: ")
	assert.True(t, IsInvalid(err))
	assert.Equal(t, "Value: Invalid input. Please enter a valid number.\n", out.String())
}

func TestReadThreeInts(t *testing.T) {
	r, out := newTestReader("10 20 30\n")
	a, b, c, err := r.ReadThreeInts("Enter three numbers: ")
	require.NoError(t, err)
	assert.Equal(t, []int32{10, 20, 30}, []int32{a, b, c})
	assert.Equal(t, "Enter three numbers: ", out.String())
}

func TestReadThreeIntsDecimalOnly(t *testing.T) {
	r, _ := newTestReader("010 08 -007\n")
	a, b, c, err := r.ReadThreeInts("Enter three numbers: ")
	require.NoError(t, err)
	assert.Equal(t, []int32{10, 8, -7}, []int32{a, b, c})
}

func TestReadThreeIntsRequiresAllOnOneLine(t *testing.T) {
	r, out := newTestReader("10 20\n30\n")
	_, _, _, err := r.ReadThreeInts("Enter three numbers: ")
	assert.True(t, IsInvalid(err))
	assert.Contains(t, out.String(), "Invalid input. Please enter three valid integers separated by spaces.\n")

	// the rejected line is gone; the next read sees the following line
	v, err := r.ReadInt("next: ")
	require.NoError(t, err)
	assert.Equal(t, int32(30), v)
}

func TestRejectedLineDoesNotLeakIntoNextRead(t *testing.T) {
	r, _ := newTestReader("oops 5\n8\n")

	_, err := r.ReadInt("first: ")
	require.True(t, IsInvalid(err))

	v, err := r.ReadInt("second: ")
	require.NoError(t, err)
	assert.Equal(t, int32(8), v)
}

func TestTrailingTokensDiscarded(t *testing.T) {
	r, _ := newTestReader("1 2 3\n4\n")

	v, err := r.ReadInt("a: ")
	require.NoError(t, err)
	assert.Equal(t, int32(1), v)

	v, err = r.ReadInt("b: ")
	require.NoError(t, err)
	assert.Equal(t, int32(4), v)
}

func TestBlankLinesSkipped(t *testing.T) {
	r, out := newTestReader("\n   \n\t\n6\n")
	v, err := r.ReadInt("n: ")
	require.NoError(t, err)
	assert.Equal(t, int32(6), v)
	assert.Equal(t, "n: ", out.String())
}

func TestEndOfInput(t *testing.T) {
	for _, input := range []string{"", "\n\n  \n"} {
		r, out := newTestReader(input)
		_, err := r.ReadInt("n: ")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrEndOfInput))
		assert.False(t, IsInvalid(err))
		assert.Equal(t, "n: ", out.String(), "no diagnostic at end of input")
	}
}

func TestEcho(t *testing.T) {
	r, out := newTestReader("12\n", WithEcho(true))
	_, err := r.ReadInt("n: ")
	require.NoError(t, err)
	assert.Equal(t, "n: 12\n", out.String())
}

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Logf(format string, v ...any) {
	l.lines = append(l.lines, fmt.Sprintf(format, v...))
}

func TestRejectedInputIsLogged(t *testing.T) {
	logger := &recordingLogger{}
	r, _ := newTestReader("x\n", WithLogger(logger))
	_, _ = r.ReadInt("n: ")
	require.Len(t, logger.lines, 1)
	assert.Contains(t, logger.lines[0], `"x"`)
}

func TestKindAccessors(t *testing.T) {
	assert.Equal(t, "three integers", Int32Triple.Name())
	assert.Equal(t, "Invalid input. Please enter a valid number.", Float32.Diagnostic())
}
