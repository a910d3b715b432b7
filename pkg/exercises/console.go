package exercises

import (
	"fmt"
	"io"

	"github.com/alantheprice/calcmenu/pkg/menu"
	"github.com/alantheprice/calcmenu/pkg/prompt"
)

// Console runs leaf operations against one reader and writer. It is the
// session object every operation of a menu shares.
type Console struct {
	in  *prompt.Reader
	out io.Writer
}

// NewConsole creates a Console that reads through in and prints to the
// reader's output.
func NewConsole(in *prompt.Reader) *Console {
	return &Console{in: in, out: in.Output()}
}

// Reader returns the reader operations use.
func (c *Console) Reader() *prompt.Reader { return c.in }

// Run dispatches m on this console.
func (c *Console) Run(m *menu.Menu) error {
	return m.Run(c.in, c.out)
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) println(line string) {
	fmt.Fprintln(c.out, line)
}

// abort turns a failed read into the operation's result: malformed input
// ends the operation quietly, anything else is passed up.
func abort(err error) error {
	if prompt.IsInvalid(err) {
		return nil
	}
	return err
}

// readInt is ReadInt widened to int.
func (c *Console) readInt(p string) (int, error) {
	v, err := c.in.ReadInt(p)
	return int(v), err
}

// readInts reads one int per prompt, stopping at the first failure.
func (c *Console) readInts(prompts ...string) ([]int, error) {
	vals := make([]int, 0, len(prompts))
	for _, p := range prompts {
		v, err := c.readInt(p)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	return vals, nil
}
