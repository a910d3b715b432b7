package exercises

import (
	"github.com/alantheprice/calcmenu/pkg/calc"
)

// ArithmeticSequenceSum reads the number of terms, the first term and the
// common difference on one line, then prints the last term and the sum.
func (c *Console) ArithmeticSequenceSum() error {
	n, first, diff, err := c.in.ReadThreeInts("Enter number of terms, first term and common difference: ")
	if err != nil {
		return abort(err)
	}

	last := calc.ArithmeticTerm(float64(first), float64(diff), float64(n))
	c.printf("The %d-th term is: %.2f\n", n, last)
	c.printf("Sum of the first %d terms: %.2f\n", n, calc.ArithmeticSum(float64(first), last, float64(n)))
	return nil
}

// SalaryCalculator prints gross pay, tax and net pay.
func (c *Console) SalaryCalculator() error {
	wage, err := c.in.ReadDouble("Enter hourly wage: ")
	if err != nil {
		return abort(err)
	}
	hours, err := c.in.ReadDouble("Enter hours worked: ")
	if err != nil {
		return abort(err)
	}
	rate, err := c.readInt("Enter tax rate (%): ")
	if err != nil {
		return abort(err)
	}

	s := calc.ComputeSalary(wage, hours, rate)
	c.printf("Gross salary: %.2f\n", s.Gross)
	c.printf("Tax amount: %.2f\n", s.Tax)
	c.printf("Net salary: %.2f\n", s.Net)
	return nil
}

// DrivingTime reads a distance and a speed and prints the travel time.
func (c *Console) DrivingTime() error {
	v, err := c.readInts("Enter distance (km): ", "Enter average speed (km/h): ")
	if err != nil {
		return abort(err)
	}

	t := calc.DrivingTime(v[0], v[1])
	c.printf("Travel time: %d hours, %d minutes, %d seconds and %d milliseconds\n",
		t.Hours, t.Minutes, t.Seconds, t.Milliseconds)
	return nil
}

// SecondsToHMS reads a number of seconds.
func (c *Console) SecondsToHMS() error {
	total, err := c.readInt("Enter total seconds: ")
	if err != nil {
		return abort(err)
	}

	h, m, s := calc.SecondsToHMS(total)
	c.printf("%d seconds is %d hours, %d minutes and %d seconds\n", total, h, m, s)
	return nil
}
