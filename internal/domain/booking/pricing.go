package booking

// ===============================
// Pricing
// ===============================

const (
	// Flat fee added to every stay before tax.
	ServiceFee = 10

	// Tax applied to room total plus service fee, in percent.
	TaxPercent = 10
)

// TotalPrice computes nights × roomPrice + service fee + tax.
// Multiplication before the division keeps the arithmetic exact for
// whole-unit prices.
func TotalPrice(nights int, roomPrice float64) float64 {
	roomTotal := roomPrice * float64(nights)
	tax := (roomTotal + ServiceFee) * TaxPercent / 100
	return roomTotal + ServiceFee + tax
}
