package utils

// millisPerDay is one day's worth of epoch milliseconds.
const millisPerDay = 24 * 60 * 60 * 1000

// RentalDays converts a date range in epoch milliseconds into billable days:
// the millisecond difference truncated to whole days, floored to at least 1.
// A span shorter than a full day therefore still charges one day.
// Callers must reject end <= start before pricing.
func RentalDays(startMillis, endMillis int64) int64 {
	days := (endMillis - startMillis) / millisPerDay
	if days < 1 {
		days = 1
	}
	return days
}

// TotalPrice derives the booking total from the range and the machine's
// authoritative daily price.
func TotalPrice(startMillis, endMillis int64, pricePerDay float64) float64 {
	return float64(RentalDays(startMillis, endMillis)) * pricePerDay
}
