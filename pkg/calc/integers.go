package calc

// IsPrime reports whether n is prime using trial division.
func IsPrime(n int) bool {
	if n <= 1 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	for i := 3; i*i <= n; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// Fibonacci returns the n-th Fibonacci number, with Fibonacci(0) == 0.
// Negative positions yield 0.
func Fibonacci(n int) int {
	if n <= 0 {
		return 0
	}
	a, b := 0, 1
	for i := 2; i <= n; i++ {
		a, b = b, a+b
	}
	return b
}

// Factorial returns n!, or -1 when n is negative.
func Factorial(n int) int {
	if n < 0 {
		return -1
	}
	result := 1
	for i := 2; i <= n; i++ {
		result *= i
	}
	return result
}

// ReverseNumber reverses the decimal digits of num, keeping its sign.
// Trailing zeros are dropped: 120 becomes 21.
func ReverseNumber(num int) int {
	sign := 1
	if num < 0 {
		sign = -1
		num = -num
	}
	reversed := 0
	for num > 0 {
		reversed = reversed*10 + num%10
		num /= 10
	}
	return reversed * sign
}

// IsPalindrome reports whether num reads the same reversed.
// Negative numbers never do.
func IsPalindrome(num int) bool {
	if num < 0 {
		return false
	}
	return num == ReverseNumber(num)
}

// SumOfDigits adds the decimal digits of |num|.
func SumOfDigits(num int) int {
	if num < 0 {
		num = -num
	}
	sum := 0
	for num > 0 {
		sum += num % 10
		num /= 10
	}
	return sum
}

// GCD returns the greatest common divisor of |a| and |b|. GCD(0, 0) is 0.
func GCD(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
