package exercises

import (
	"github.com/alantheprice/calcmenu/pkg/calc"
)

// TwoGradeAverage reads two grades and prints their mean.
func (c *Console) TwoGradeAverage() error {
	g, err := c.readInts("Input first grade: ", "Input second grade: ")
	if err != nil {
		return abort(err)
	}
	c.printf("The average grade is: %.2f\n", calc.AverageOfTwo(g[0], g[1]))
	return nil
}

// BirthYear reads the current year and an age.
func (c *Console) BirthYear() error {
	v, err := c.readInts("Input current year: ", "Input your age: ")
	if err != nil {
		return abort(err)
	}
	c.printf("You were born in: %d\n", calc.BirthYear(v[0], v[1]))
	return nil
}

// RectangleArea reads whole-number sides.
func (c *Console) RectangleArea() error {
	v, err := c.readInts("Input rectangle length: ", "Input rectangle height: ")
	if err != nil {
		return abort(err)
	}
	c.printf("The area of the rectangle is: %d\n", calc.RectangleArea(v[0], v[1]))
	return nil
}

// RectangleCircleArea reads a rectangle and a radius in single precision.
func (c *Console) RectangleCircleArea() error {
	length, err := c.in.ReadFloat("Input rectangle length: ")
	if err != nil {
		return abort(err)
	}
	width, err := c.in.ReadFloat("Input rectangle width: ")
	if err != nil {
		return abort(err)
	}
	radius, err := c.in.ReadFloat("Input circle radius: ")
	if err != nil {
		return abort(err)
	}

	c.printf("Rectangle area: %.2f\n", calc.RectangleAreaF(length, width))
	c.printf("Circle area: %.2f\n", calc.CircleArea(radius))
	return nil
}

// RectanglePerimeter reads double precision sides.
func (c *Console) RectanglePerimeter() error {
	length, err := c.in.ReadDouble("Input rectangle length: ")
	if err != nil {
		return abort(err)
	}
	width, err := c.in.ReadDouble("Input rectangle width: ")
	if err != nil {
		return abort(err)
	}
	c.printf("Rectangle perimeter: %.2f\n", calc.RectanglePerimeter(length, width))
	return nil
}

// ThreeGradeAverage reads three grades from a single line.
func (c *Console) ThreeGradeAverage() error {
	a, b, g, err := c.in.ReadThreeInts("Input three grades separated by spaces: ")
	if err != nil {
		return abort(err)
	}
	c.printf("The average grade is: %.2f\n", calc.AverageOfThree(int(a), int(b), int(g)))
	return nil
}

// TemperatureConverter asks for a direction and converts one temperature.
func (c *Console) TemperatureConverter() error {
	choice, err := c.in.ReadDouble("Enter 1 to convert Celsius to Fahrenheit or 2 to convert Fahrenheit to Celsius: ")
	if err != nil {
		return abort(err)
	}

	switch choice {
	case 1:
		celsius, err := c.in.ReadDouble("Enter temperature in Celsius: ")
		if err != nil {
			return abort(err)
		}
		c.printf("%.2f Celsius is %.2f Fahrenheit\n", celsius, calc.CelsiusToFahrenheit(celsius))
	case 2:
		fahrenheit, err := c.in.ReadDouble("Enter temperature in Fahrenheit: ")
		if err != nil {
			return abort(err)
		}
		c.printf("%.2f Fahrenheit is %.2f Celsius\n", fahrenheit, calc.FahrenheitToCelsius(fahrenheit))
	default:
		c.println("Invalid choice! Please run the program again and choose 1 or 2.")
	}
	return nil
}

// SwapTwoFloats reads two numbers and prints them before and after a swap.
func (c *Console) SwapTwoFloats() error {
	first, err := c.in.ReadFloat("Enter first number: ")
	if err != nil {
		return abort(err)
	}
	second, err := c.in.ReadFloat("Enter second number: ")
	if err != nil {
		return abort(err)
	}

	c.printf("First number before swap: %f\n", first)
	c.printf("Second number before swap: %f\n", second)
	calc.Swap(&first, &second)
	c.printf("First number after swap: %f\n", first)
	c.printf("Second number after swap: %f\n", second)
	return nil
}

// Walkthrough defaults for ArithmeticSequenceDemo.
const (
	demoFirstTerm  = 1
	demoDifference = 2.0
	demoPosition   = 9.0
)

// ArithmeticSequenceDemo walks through the n-th term formula for a fixed
// sequence and closes with the sum of its terms.
func (c *Console) ArithmeticSequenceDemo() error {
	nth := calc.ArithmeticTerm(demoFirstTerm, demoDifference, demoPosition)
	sum := calc.ArithmeticSum(demoFirstTerm, nth, demoPosition)

	c.println("We are working with an arithmetic sequence.")
	c.printf("The first term is: %d\n", demoFirstTerm)
	c.printf("The common difference is: %.2f\n", demoDifference)
	c.printf("We want to find the %.2f-th term.\n", demoPosition)
	c.println("Using the formula nth_term = first_term + (term_position - 1) * common_difference:")
	c.printf("nth_term = %d + (%.2f - 1) * %.2f = %.2f\n", demoFirstTerm, demoPosition, demoDifference, nth)
	c.printf("Therefore, the %.2f-th term of the arithmetic sequence is: %.2f\n", demoPosition, nth)
	c.printf("The sum of the first %.2f terms is: %.2f\n", demoPosition, sum)
	return nil
}
