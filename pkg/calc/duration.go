package calc

// TravelTime is a journey length split into whole units.
type TravelTime struct {
	Hours        int
	Minutes      int
	Seconds      int
	Milliseconds int
}

// DrivingTime divides distance by speed and splits the fractional hours
// into whole hours, minutes, seconds and milliseconds, truncating at each
// step. A zero speed is not guarded against.
func DrivingTime(distanceKm, speedKmh int) TravelTime {
	hours := float64(distanceKm) / float64(speedKmh)

	var t TravelTime
	t.Hours = int(hours)
	minutes := (hours - float64(t.Hours)) * 60
	t.Minutes = int(minutes)
	seconds := (minutes - float64(t.Minutes)) * 60
	t.Seconds = int(seconds)
	t.Milliseconds = int((seconds - float64(t.Seconds)) * 1000)
	return t
}

// SecondsToHMS splits a number of seconds into hours, minutes and seconds.
func SecondsToHMS(total int) (hours, minutes, seconds int) {
	return total / 3600, (total % 3600) / 60, total % 60
}
