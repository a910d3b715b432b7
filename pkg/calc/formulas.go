package calc

// AverageOfTwo returns the mean of two integer grades.
func AverageOfTwo(a, b int) float64 {
	return float64(a+b) / 2.0
}

// AverageOfThree returns the mean of three integer grades.
func AverageOfThree(a, b, c int) float64 {
	return float64(a+b+c) / 3.0
}

// BirthYear returns the year someone of the given age was born in.
func BirthYear(currentYear, age int) int {
	return currentYear - age
}

// CelsiusToFahrenheit converts a Celsius temperature.
func CelsiusToFahrenheit(c float64) float64 {
	return c*9.0/5.0 + 32.0
}

// FahrenheitToCelsius converts a Fahrenheit temperature.
func FahrenheitToCelsius(f float64) float64 {
	return (f - 32.0) * 5.0 / 9.0
}

// Swap exchanges two values through a temporary.
func Swap[T any](a, b *T) {
	tmp := *a
	*a = *b
	*b = tmp
}

// ArithmeticTerm returns the n-th term of the sequence starting at first
// with the given common difference.
func ArithmeticTerm(first, difference, n float64) float64 {
	return first + (n-1)*difference
}

// ArithmeticSum returns the sum of n terms running from first to last.
func ArithmeticSum(first, last, n float64) float64 {
	return (first + last) * n / 2
}

// Salary is a monthly pay breakdown.
type Salary struct {
	Gross float64
	Tax   float64
	Net   float64
}

// ComputeSalary applies a whole-percent tax rate to hourly earnings.
func ComputeSalary(hourlyWage, hoursWorked float64, taxRate int) Salary {
	gross := hourlyWage * hoursWorked
	tax := gross * float64(taxRate) / 100.0
	return Salary{Gross: gross, Tax: tax, Net: gross - tax}
}
