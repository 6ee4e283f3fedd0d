// Package tvm provides fixed-rate time-value-of-money primitives.
//
// Amounts use a positive convention: a positive principal yields a positive
// payment, and a positive payment yields a positive present value.
package tvm

import "math"

// Payment returns the level payment that amortizes principal down to
// futureValue over periods at rate per period. When due is true payments
// fall at the start of each period.
func Payment(rate float64, periods int, principal, futureValue float64, due bool) float64 {
	if periods <= 0 {
		return 0
	}
	n := float64(periods)
	if rate == 0 {
		return (principal + futureValue) / n
	}

	growth := math.Pow(1+rate, n)
	payment := (principal*growth + futureValue) * rate / (growth - 1)
	if due {
		payment /= 1 + rate
	}
	return payment
}

// PresentValue returns the present value of periods level payments plus a
// lump sum of futureValue received at the end.
func PresentValue(rate float64, periods int, payment, futureValue float64, due bool) float64 {
	if periods <= 0 {
		return 0
	}
	n := float64(periods)
	if rate == 0 {
		return payment*n + futureValue
	}

	growth := math.Pow(1+rate, n)
	annuity := payment * (growth - 1) / rate
	if due {
		annuity *= 1 + rate
	}
	return (annuity + futureValue) / growth
}

// Discount returns amount discounted back over periods at rate.
func Discount(rate float64, periods int, amount float64) float64 {
	if periods <= 0 {
		return amount
	}
	return amount / math.Pow(1+rate, float64(periods))
}
