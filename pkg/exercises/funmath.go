package exercises

import (
	"strings"

	"github.com/alantheprice/calcmenu/pkg/calc"
)

var modularProgrammingText = []string{
	"This program demonstrates modular programming in Go.",
	"It consists of multiple packages, each handling specific tasks.",
	"The main package coordinates the execution flow.",
	"Exported identifiers form the API a package offers for reuse.",
	"Unexported code stays private to the package that defines it.",
	"This structure enhances code organization and maintainability.",
}

// ExplainModularProgramming prints a short description of the layout.
func (c *Console) ExplainModularProgramming() error {
	for _, line := range modularProgrammingText {
		c.println(line)
	}
	return nil
}

// PrimeCheck reports whether a number is prime.
func (c *Console) PrimeCheck() error {
	n, err := c.readInt("Enter a number: ")
	if err != nil {
		return abort(err)
	}
	if calc.IsPrime(n) {
		c.printf("%d is prime!\n", n)
	} else {
		c.printf("%d is not prime.\n", n)
	}
	return nil
}

// FibonacciNumber prints the n-th Fibonacci number.
func (c *Console) FibonacciNumber() error {
	n, err := c.readInt("Enter position (n): ")
	if err != nil {
		return abort(err)
	}
	c.printf("Fibonacci(%d) = %d\n", n, calc.Fibonacci(n))
	return nil
}

// FactorialOf prints n!, or an error line for negative n.
func (c *Console) FactorialOf() error {
	n, err := c.readInt("Enter a number: ")
	if err != nil {
		return abort(err)
	}
	result := calc.Factorial(n)
	if result == -1 {
		c.println("Error: Factorial not defined for negative numbers.")
		return nil
	}
	c.printf("%d! = %d\n", n, result)
	return nil
}

// Pyramid prints a centred pyramid of stars.
func (c *Console) Pyramid() error {
	height, err := c.readInt("Enter pyramid height: ")
	if err != nil {
		return abort(err)
	}
	for i := 1; i <= height; i++ {
		c.println(strings.Repeat(" ", height-i) + strings.Repeat("*", 2*i-1))
	}
	return nil
}

// Reverse prints a number with its digits reversed.
func (c *Console) Reverse() error {
	n, err := c.readInt("Enter a number: ")
	if err != nil {
		return abort(err)
	}
	c.printf("Reversed: %d\n", calc.ReverseNumber(n))
	return nil
}

// PalindromeCheck reports whether a number reads the same reversed.
func (c *Console) PalindromeCheck() error {
	n, err := c.readInt("Enter a number: ")
	if err != nil {
		return abort(err)
	}
	if calc.IsPalindrome(n) {
		c.printf("%d is a palindrome!\n", n)
	} else {
		c.printf("%d is not a palindrome.\n", n)
	}
	return nil
}

// DigitSum prints the sum of a number's digits.
func (c *Console) DigitSum() error {
	n, err := c.readInt("Enter a number: ")
	if err != nil {
		return abort(err)
	}
	c.printf("Sum of digits: %d\n", calc.SumOfDigits(n))
	return nil
}

// MultiplicationTable prints n x 1 through n x 10.
func (c *Console) MultiplicationTable() error {
	n, err := c.readInt("Enter a number: ")
	if err != nil {
		return abort(err)
	}
	c.printf("\nMultiplication Table for %d:\n", n)
	for i := 1; i <= 10; i++ {
		c.printf("%d x %d = %d\n", n, i, n*i)
	}
	return nil
}

// GreatestCommonDivisor reads two numbers and prints their GCD.
func (c *Console) GreatestCommonDivisor() error {
	v, err := c.readInts("Enter first number: ", "Enter second number: ")
	if err != nil {
		return abort(err)
	}
	c.printf("GCD(%d, %d) = %d\n", v[0], v[1], calc.GCD(v[0], v[1]))
	return nil
}
