package exercises

import (
	"errors"
	"fmt"

	"github.com/alantheprice/calcmenu/pkg/menu"
)

// errUnknownMenu is returned by Build for names not in the catalogue.
var errUnknownMenu = errors.New("unknown menu")

// Definition describes one menu of the catalogue.
type Definition struct {
	Name    string
	Summary string
	Title   string
	build   func(c *Console) ([]menu.Entry, []menu.Option)
}

var catalog = []Definition{
	{
		Name:    "basics",
		Summary: "grade averages, areas, temperature conversion and swapping",
		Title:   "Calculation Menu",
		build: func(c *Console) ([]menu.Entry, []menu.Option) {
			return []menu.Entry{
				{Key: 1, Label: "Average of two grades", Action: c.TwoGradeAverage},
				{Key: 2, Label: "Birth year calculator", Action: c.BirthYear},
				{Key: 3, Label: "Rectangle area", Action: c.RectangleArea},
				{Key: 4, Label: "Rectangle and circle area", Action: c.RectangleCircleArea},
				{Key: 5, Label: "Rectangle perimeter", Action: c.RectanglePerimeter},
				{Key: 6, Label: "Average of three grades", Action: c.ThreeGradeAverage},
				{Key: 7, Label: "Temperature converter", Action: c.TemperatureConverter},
				{Key: 8, Label: "Swap two floating numbers", Action: c.SwapTwoFloats},
				{Key: 9, Label: "Arithmetic sequence walkthrough", Action: c.ArithmeticSequenceDemo},
			}, nil
		},
	},
	{
		Name:    "applied",
		Summary: "arithmetic series, salary, driving time and seconds conversion",
		Title:   "Applied Calculation Menu",
		build: func(c *Console) ([]menu.Entry, []menu.Option) {
			return []menu.Entry{
				{Key: 1, Label: "Calculate sum of arithmetic sequence", Action: c.ArithmeticSequenceSum},
				{Key: 2, Label: "Salary calculator", Action: c.SalaryCalculator},
				{Key: 3, Label: "Driving time calculator", Action: c.DrivingTime},
				{Key: 4, Label: "Seconds to hours, minutes and seconds", Action: c.SecondsToHMS},
			}, nil
		},
	},
	{
		Name:    "funmath",
		Summary: "primes, Fibonacci, factorials and other integer puzzles until you exit",
		Title:   "Fun Math Functions Menu",
		build: func(c *Console) ([]menu.Entry, []menu.Option) {
			return []menu.Entry{
				{Key: 1, Label: "Explain modular programming", Action: c.ExplainModularProgramming},
				{Key: 2, Label: "Check if number is prime", Action: c.PrimeCheck},
				{Key: 3, Label: "Calculate Fibonacci number", Action: c.FibonacciNumber},
				{Key: 4, Label: "Calculate factorial", Action: c.FactorialOf},
				{Key: 5, Label: "Print pyramid", Action: c.Pyramid},
				{Key: 6, Label: "Reverse number", Action: c.Reverse},
				{Key: 7, Label: "Check if palindrome", Action: c.PalindromeCheck},
				{Key: 8, Label: "Sum of digits", Action: c.DigitSum},
				{Key: 9, Label: "Multiplication table", Action: c.MultiplicationTable},
				{Key: 10, Label: "Greatest Common Divisor (GCD)", Action: c.GreatestCommonDivisor},
			}, []menu.Option{menu.WithLoop(0, "Exit"), menu.WithFarewell("Goodbye!")}
		},
	},
	{
		Name:    "modular",
		Summary: "single-entry modular programming demo",
		Title:   "Modular Programming Demo",
		build: func(c *Console) ([]menu.Entry, []menu.Option) {
			return []menu.Entry{
				{Key: 1, Label: "Explain modular programming", Action: c.ExplainModularProgramming},
			}, nil
		},
	},
}

// Definitions returns the catalogue in display order.
func Definitions() []Definition {
	out := make([]Definition, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup finds a catalogue entry by name.
func Lookup(name string) (Definition, bool) {
	for _, d := range catalog {
		if d.Name == name {
			return d, true
		}
	}
	return Definition{}, false
}

// Build assembles the named menu with its operations bound to c.
// Extra options are applied after the menu's own.
func (c *Console) Build(name string, opts ...menu.Option) (*menu.Menu, error) {
	def, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", errUnknownMenu, name)
	}
	entries, own := def.build(c)
	return menu.New(def.Title, entries, append(own, opts...)...)
}

// IsUnknownMenu reports whether err came from Build being given a name
// outside the catalogue.
func IsUnknownMenu(err error) bool {
	return errors.Is(err, errUnknownMenu)
}
