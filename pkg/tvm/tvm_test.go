package tvm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPayment(t *testing.T) {
	tests := []struct {
		name        string
		rate        float64
		periods     int
		principal   float64
		futureValue float64
		due         bool
		expected    float64
	}{
		{
			name:      "Eight year annuity at eight percent",
			rate:      0.08,
			periods:   8,
			principal: 1000,
			expected:  174.0148,
		},
		{
			name:      "Thirty year mortgage monthly",
			rate:      0.005,
			periods:   360,
			principal: 240000,
			expected:  1438.92,
		},
		{
			name:      "Zero rate divides linearly",
			rate:      0,
			periods:   10,
			principal: 1000,
			expected:  100,
		},
		{
			name:        "Zero rate with future value",
			rate:        0,
			periods:     4,
			principal:   1000,
			futureValue: 200,
			expected:    300,
		},
		{
			name:      "Payments due at start",
			rate:      0.08,
			periods:   8,
			principal: 1000,
			due:       true,
			expected:  161.1248,
		},
		{
			name:      "Zero periods",
			rate:      0.08,
			periods:   0,
			principal: 1000,
			expected:  0,
		},
		{
			name:      "Negative periods",
			rate:      0,
			periods:   -3,
			principal: 1000,
			expected:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Payment(tt.rate, tt.periods, tt.principal, tt.futureValue, tt.due)
			assert.InDelta(t, tt.expected, got, 0.01)
		})
	}
}

func TestPresentValue(t *testing.T) {
	tests := []struct {
		name        string
		rate        float64
		periods     int
		payment     float64
		futureValue float64
		due         bool
		expected    float64
	}{
		{
			name:     "Eight year annuity at eight percent",
			rate:     0.08,
			periods:  8,
			payment:  100,
			expected: 574.6639,
		},
		{
			name:        "Lump sum only",
			rate:        0.1,
			periods:     2,
			futureValue: 121,
			expected:    100,
		},
		{
			name:     "Zero rate multiplies",
			rate:     0,
			periods:  5,
			payment:  100,
			expected: 500,
		},
		{
			name:        "Zero rate with future value",
			rate:        0,
			periods:     5,
			payment:     100,
			futureValue: 50,
			expected:    550,
		},
		{
			name:     "Payments due at start",
			rate:     0.08,
			periods:  8,
			payment:  100,
			due:      true,
			expected: 620.6370,
		},
		{
			name:     "Zero periods",
			rate:     0.08,
			periods:  0,
			payment:  100,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PresentValue(tt.rate, tt.periods, tt.payment, tt.futureValue, tt.due)
			assert.InDelta(t, tt.expected, got, 0.01)
		})
	}
}

func TestPaymentInvertsPresentValue(t *testing.T) {
	rates := []float64{0.001, 0.03, 0.08, 0.25}
	periods := []int{1, 2, 8, 30}
	principals := []float64{1, 1000, 394119087392.5}

	for _, rate := range rates {
		for _, n := range periods {
			for _, p := range principals {
				for _, due := range []bool{false, true} {
					pv := PresentValue(rate, n, p, 0, due)
					got := Payment(rate, n, pv, 0, due)
					assert.InDelta(t, p, got, p*1e-9, "rate=%v n=%d p=%v due=%v", rate, n, p, due)
				}
			}
		}
	}
}

func TestDiscount(t *testing.T) {
	assert.InDelta(t, 100.0, Discount(0.1, 2, 121), 1e-9)
	assert.Equal(t, 121.0, Discount(0.1, 0, 121))
	assert.False(t, math.IsNaN(Discount(0, 5, 10)))
	assert.Equal(t, 10.0, Discount(0, 5, 10))
}
