package booking

import "time"

// Overlap is the single date-range predicate for room reservations.
// Ranges are half-open [checkIn, checkOut): a checkout on day N does not
// conflict with a check-in on day N, so back-to-back turnover is allowed.
func Overlap(aIn, aOut, bIn, bOut time.Time) bool {
	return aIn.Before(bOut) && bIn.Before(aOut)
}

func Nights(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn).Hours() / 24)
}
