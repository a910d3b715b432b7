package calc

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAverages(t *testing.T) {
	assert.Equal(t, "75.00", fmt.Sprintf("%.2f", AverageOfTwo(70, 80)))
	assert.Equal(t, "1.50", fmt.Sprintf("%.2f", AverageOfTwo(1, 2)))
	assert.Equal(t, "80.00", fmt.Sprintf("%.2f", AverageOfThree(70, 80, 90)))
	assert.Equal(t, "1.33", fmt.Sprintf("%.2f", AverageOfThree(1, 1, 2)))
}

func TestBirthYear(t *testing.T) {
	assert.Equal(t, 2000, BirthYear(2025, 25))
	assert.Equal(t, 1995, BirthYear(2025, 30))
}

func TestTemperature(t *testing.T) {
	assert.Equal(t, "98.60", fmt.Sprintf("%.2f", CelsiusToFahrenheit(37)))
	assert.Equal(t, "100.00", fmt.Sprintf("%.2f", FahrenheitToCelsius(212)))
	assert.Equal(t, "-40.00", fmt.Sprintf("%.2f", CelsiusToFahrenheit(-40)))
}

func TestSwap(t *testing.T) {
	a, b := float32(1.23), float32(4.56)
	Swap(&a, &b)
	assert.Equal(t, float32(4.56), a)
	assert.Equal(t, float32(1.23), b)
}

func TestArithmeticSequence(t *testing.T) {
	nth := ArithmeticTerm(1, 2, 9)
	assert.Equal(t, 17.0, nth)
	assert.InDelta(t, 81.0, ArithmeticSum(1, nth, 9), 0.01)
}

func TestComputeSalary(t *testing.T) {
	s := ComputeSalary(20, 160, 15)
	assert.InDelta(t, 3200.0, s.Gross, 0.01)
	assert.InDelta(t, 480.0, s.Tax, 0.01)
	assert.InDelta(t, 2720.0, s.Net, 0.01)
}

func TestGeometry(t *testing.T) {
	assert.Equal(t, 20, RectangleArea(4, 5))
	assert.Equal(t, 0, RectangleArea(0, 12))
	assert.Equal(t, "7.00", fmt.Sprintf("%.2f", RectangleAreaF(3.5, 2.0)))
	assert.Equal(t, "7.07", fmt.Sprintf("%.2f", CircleArea(1.5)))
	assert.Equal(t, "15.00", fmt.Sprintf("%.2f", RectanglePerimeter(2.5, 5.0)))
}

func TestDrivingTime(t *testing.T) {
	tests := []struct {
		name            string
		distance, speed int
		want            TravelTime
	}{
		{name: "whole hours", distance: 120, speed: 60, want: TravelTime{Hours: 2}},
		{name: "half hour", distance: 150, speed: 60, want: TravelTime{Hours: 2, Minutes: 30}},
		{name: "quarter hour", distance: 25, speed: 100, want: TravelTime{Minutes: 15}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DrivingTime(tt.distance, tt.speed))
		})
	}
}

func TestSecondsToHMS(t *testing.T) {
	tests := []struct {
		total   int
		h, m, s int
	}{
		{3661, 1, 1, 1},
		{0, 0, 0, 0},
		{86400, 24, 0, 0},
		{300, 0, 5, 0},
	}

	for _, tt := range tests {
		h, m, s := SecondsToHMS(tt.total)
		assert.Equal(t, []int{tt.h, tt.m, tt.s}, []int{h, m, s}, "SecondsToHMS(%d)", tt.total)
	}
}
