package prompt

import (
	"fmt"
)

// Kind describes the shape of a value Read can parse and the diagnostic
// shown when a line does not hold it.
type Kind[T any] struct {
	name       string
	diagnostic string
	scan       func(line string) (T, error)
}

// Name returns the human readable name of the kind.
func (k Kind[T]) Name() string { return k.name }

// Diagnostic returns the message written when input is rejected.
func (k Kind[T]) Diagnostic() string { return k.diagnostic }

var (
	Int32 = Kind[int32]{
		name:       "integer",
		diagnostic: "Invalid input. Please enter a valid integer.",
		scan:       scanDecimal,
	}
	Float32 = Kind[float32]{
		name:       "float",
		diagnostic: "Invalid input. Please enter a valid number.",
		scan:       scanFloat[float32],
	}
	Float64 = Kind[float64]{
		name:       "double",
		diagnostic: "Invalid input. Please enter a valid number.",
		scan:       scanFloat[float64],
	}
	Int32Triple = Kind[[3]int32]{
		name:       "three integers",
		diagnostic: "Invalid input. Please enter three valid integers separated by spaces.",
		scan:       scanTriple,
	}
)

// scanDecimal takes the base 10 prefix of the first token, so "12abc"
// yields 12, "3.7" yields 3 and "010" yields 10. Base prefixes and digit
// separators are not recognised.
func scanDecimal(line string) (int32, error) {
	var v int32
	if _, err := fmt.Sscanf(line, "%d", &v); err != nil {
		return 0, err
	}
	return v, nil
}

// scanFloat takes the numeric prefix of the first token. Trailing text is
// ignored.
func scanFloat[T float32 | float64](line string) (T, error) {
	var v T
	if _, err := fmt.Sscan(line, &v); err != nil {
		return v, err
	}
	return v, nil
}

func scanTriple(line string) ([3]int32, error) {
	var v [3]int32
	n, err := fmt.Sscanf(line, "%d %d %d", &v[0], &v[1], &v[2])
	if err != nil {
		return [3]int32{}, fmt.Errorf("parsed %d of 3 integers: %w", n, err)
	}
	return v, nil
}
