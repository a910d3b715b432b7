package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	// ErrInvalidInput reports a line that did not hold the requested value.
	ErrInvalidInput = errors.New("invalid input")
	// ErrEndOfInput reports that the input was exhausted before a value was read.
	ErrEndOfInput = errors.New("end of input")
)

// ReadError describes a failed read.
type ReadError struct {
	Kind  string // name of the requested kind, e.g. "integer"
	Input string // offending line without its terminator
	Err   error  // ErrInvalidInput, ErrEndOfInput or an I/O error
}

// Error implements the error interface
func (e *ReadError) Error() string {
	if errors.Is(e.Err, ErrInvalidInput) {
		return fmt.Sprintf("read %s from %q: %v", e.Kind, e.Input, e.Err)
	}
	return fmt.Sprintf("read %s: %v", e.Kind, e.Err)
}

// Unwrap returns the underlying error for errors.Is and errors.As
func (e *ReadError) Unwrap() error {
	return e.Err
}

// IsInvalid reports whether err is a recoverable malformed-input failure.
func IsInvalid(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// Logger receives diagnostics about rejected input.
type Logger interface {
	Logf(format string, v ...any)
}

type nopLogger struct{}

func (nopLogger) Logf(string, ...any) {}

// Reader writes prompts to an output and parses typed values from the
// lines of an input. It is not safe for concurrent use.
type Reader struct {
	in   *bufio.Reader
	out  io.Writer
	echo bool
	log  Logger
}

// Option configures a Reader.
type Option func(*Reader)

// WithEcho writes every consumed line back to the output after the prompt.
func WithEcho(echo bool) Option {
	return func(r *Reader) { r.echo = echo }
}

// WithLogger records rejected input to l.
func WithLogger(l Logger) Option {
	return func(r *Reader) {
		if l != nil {
			r.log = l
		}
	}
}

// NewReader creates a Reader over in that prompts on out.
func NewReader(in io.Reader, out io.Writer, opts ...Option) *Reader {
	br, ok := in.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(in)
	}
	r := &Reader{in: br, out: out, log: nopLogger{}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Output returns the writer prompts and diagnostics go to.
func (r *Reader) Output() io.Writer {
	return r.out
}

// Read writes prompt, then parses one value of the given kind from the next
// non-blank input line. The remainder of that line is always discarded.
// On malformed input the kind's diagnostic is written and the returned
// error wraps ErrInvalidInput.
func Read[T any](r *Reader, prompt string, kind Kind[T]) (T, error) {
	var zero T

	fmt.Fprint(r.out, prompt)
	line, err := r.nextLine()
	if err != nil {
		return zero, &ReadError{Kind: kind.name, Err: err}
	}
	if r.echo {
		fmt.Fprintln(r.out, line)
	}

	v, err := kind.scan(line)
	if err != nil {
		fmt.Fprintln(r.out, kind.diagnostic)
		r.log.Logf("Rejected %s input %q: %v", kind.name, line, err)
		return zero, &ReadError{Kind: kind.name, Input: line, Err: ErrInvalidInput}
	}
	return v, nil
}

// ReadInt reads one int32.
func (r *Reader) ReadInt(prompt string) (int32, error) {
	return Read(r, prompt, Int32)
}

// ReadFloat reads one float32.
func (r *Reader) ReadFloat(prompt string) (float32, error) {
	return Read(r, prompt, Float32)
}

// ReadDouble reads one float64.
func (r *Reader) ReadDouble(prompt string) (float64, error) {
	return Read(r, prompt, Float64)
}

// ReadThreeInts reads three whitespace separated int32 values from one line.
func (r *Reader) ReadThreeInts(prompt string) (int32, int32, int32, error) {
	v, err := Read(r, prompt, Int32Triple)
	return v[0], v[1], v[2], err
}

// nextLine returns the next line holding something other than whitespace,
// without its terminator. A final line with no terminator is still returned.
func (r *Reader) nextLine() (string, error) {
	for {
		line, err := r.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", err
		}
		if strings.TrimSpace(line) != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if err != nil {
			return "", ErrEndOfInput
		}
	}
}
