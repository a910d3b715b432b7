package menu

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/alantheprice/calcmenu/pkg/prompt"
)

// Action is the operation behind a menu entry.
type Action func() error

// Entry pairs a selection key with a label and an operation.
type Entry struct {
	Key    int
	Label  string
	Action Action
}

// Mode selects what happens after an entry runs.
type Mode int

const (
	// RunOnce stops after the first valid selection has run.
	RunOnce Mode = iota
	// Loop keeps offering the menu until the exit key is chosen.
	Loop
)

// State is the dispatcher state.
type State int

const (
	// AwaitingSelection means the menu is waiting for a valid selection.
	AwaitingSelection State = iota
	// Done means the session is over.
	Done
)

func (s State) String() string {
	switch s {
	case AwaitingSelection:
		return "awaiting-selection"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

// Logger receives dispatcher events.
type Logger interface {
	Logf(format string, v ...any)
}

type nopLogger struct{}

func (nopLogger) Logf(string, ...any) {}

// Menu is an immutable table of entries resolved by key.
type Menu struct {
	title     string
	mode      Mode
	entries   []Entry
	byKey     map[int]Entry
	exitKey   int
	exitLabel string
	farewell  string
	log       Logger
}

// Option configures a Menu.
type Option func(*Menu)

// WithLoop makes the menu repeat until exitKey is chosen. The exit entry
// is listed last under label.
func WithLoop(exitKey int, label string) Option {
	return func(m *Menu) {
		m.mode = Loop
		m.exitKey = exitKey
		m.exitLabel = label
	}
}

// WithFarewell sets the line printed when a loop menu exits.
func WithFarewell(farewell string) Option {
	return func(m *Menu) { m.farewell = farewell }
}

// WithLogger records selections to l.
func WithLogger(l Logger) Option {
	return func(m *Menu) {
		if l != nil {
			m.log = l
		}
	}
}

// New builds a menu. Entries are listed in the order given.
func New(title string, entries []Entry, opts ...Option) (*Menu, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("menu %q: no entries", title)
	}
	m := &Menu{
		title:    title,
		mode:     RunOnce,
		entries:  make([]Entry, len(entries)),
		byKey:    make(map[int]Entry, len(entries)),
		farewell: "Goodbye!",
		log:      nopLogger{},
	}
	copy(m.entries, entries)
	for _, opt := range opts {
		opt(m)
	}

	for _, e := range m.entries {
		if e.Action == nil {
			return nil, fmt.Errorf("menu %q: entry %d has no action", title, e.Key)
		}
		if _, ok := m.byKey[e.Key]; ok {
			return nil, fmt.Errorf("menu %q: duplicate key %d", title, e.Key)
		}
		if m.mode == Loop && e.Key == m.exitKey {
			return nil, fmt.Errorf("menu %q: key %d is reserved for exit", title, e.Key)
		}
		m.byKey[e.Key] = e
	}
	return m, nil
}

// Title returns the menu title.
func (m *Menu) Title() string { return m.title }

// Mode returns the menu mode.
func (m *Menu) Mode() Mode { return m.mode }

// Entries returns a copy of the entries in display order.
func (m *Menu) Entries() []Entry {
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Resolve looks up the entry for key.
func (m *Menu) Resolve(key int) (Entry, bool) {
	e, ok := m.byKey[key]
	return e, ok
}

// Render writes the menu block. Loop menus start with a blank line so
// consecutive rounds stay apart.
func (m *Menu) Render(w io.Writer) {
	header := "=== " + m.title + " ==="
	width := 0
	for _, k := range m.keys() {
		if n := len(strconv.Itoa(k)); n > width {
			width = n
		}
	}

	var b strings.Builder
	if m.mode == Loop {
		b.WriteString("\n")
	}
	b.WriteString(header + "\n")
	for _, e := range m.entries {
		fmt.Fprintf(&b, "%-*d - %s\n", width, e.Key, e.Label)
	}
	if m.mode == Loop {
		fmt.Fprintf(&b, "%-*d - %s\n", width, m.exitKey, m.exitLabel)
	}
	b.WriteString(strings.Repeat("=", len(header)) + "\n")
	io.WriteString(w, b.String())
}

// ChoicePrompt returns the prompt used to read a selection.
func (m *Menu) ChoicePrompt() string {
	return fmt.Sprintf("Enter your choice (%s): ", m.keyRange())
}

// Step renders the menu, reads one selection and acts on it. It returns
// the state the dispatcher is in afterwards.
//
// Malformed input and unknown keys leave the menu in AwaitingSelection.
// End of input is returned as an error wrapping prompt.ErrEndOfInput.
func (m *Menu) Step(r *prompt.Reader, w io.Writer) (State, error) {
	m.Render(w)

	choice, err := r.ReadInt(m.ChoicePrompt())
	if err != nil {
		if prompt.IsInvalid(err) {
			return AwaitingSelection, nil
		}
		return Done, err
	}
	key := int(choice)

	if m.mode == Loop && key == m.exitKey {
		m.log.Logf("Menu %q: exit selected", m.title)
		fmt.Fprintln(w, m.farewell)
		return Done, nil
	}

	entry, ok := m.Resolve(key)
	if !ok {
		m.log.Logf("Menu %q: invalid choice %d", m.title, key)
		fmt.Fprintf(w, "Invalid choice! Please choose %s.\n", m.keyRange())
		return AwaitingSelection, nil
	}

	m.log.Logf("Menu %q: running %d (%s)", m.title, entry.Key, entry.Label)
	if err := entry.Action(); err != nil {
		return Done, fmt.Errorf("%s: %w", entry.Label, err)
	}
	if m.mode == Loop {
		return AwaitingSelection, nil
	}
	return Done, nil
}

// Run steps the menu until it is done.
func (m *Menu) Run(r *prompt.Reader, w io.Writer) error {
	state := AwaitingSelection
	for state != Done {
		var err error
		state, err = m.Step(r, w)
		if err != nil {
			if errors.Is(err, prompt.ErrEndOfInput) {
				m.log.Logf("Menu %q: end of input", m.title)
			}
			return err
		}
	}
	return nil
}

func (m *Menu) keys() []int {
	keys := make([]int, 0, len(m.entries)+1)
	for _, e := range m.entries {
		keys = append(keys, e.Key)
	}
	if m.mode == Loop {
		keys = append(keys, m.exitKey)
	}
	sort.Ints(keys)
	return keys
}

func (m *Menu) keyRange() string {
	keys := m.keys()
	lo, hi := keys[0], keys[len(keys)-1]
	if lo == hi {
		return strconv.Itoa(lo)
	}
	return fmt.Sprintf("%d-%d", lo, hi)
}
