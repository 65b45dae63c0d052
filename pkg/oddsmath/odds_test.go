package oddsmath_test

import (
	"math"
	"testing"

	"github.com/agreensr/sports-prop-odds-api-sub002/pkg/oddsmath"
)

func TestAmericanToDecimal(t *testing.T) {
	tests := []struct {
		name     string
		american int
		want     float64
	}{
		{"Even odds +100", 100, 2.0},
		{"Positive odds +150", 150, 2.5},
		{"Positive odds +264", 264, 3.64},
		{"Negative odds -110", -110, 1.909090909},
		{"Negative odds -150", -150, 1.666666667},
		{"Negative odds -200", -200, 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := oddsmath.AmericanToDecimal(tt.american)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			// Allow small floating point differences
			if math.Abs(got-tt.want) > 0.0001 {
				t.Errorf("AmericanToDecimal(%d) = %f, want %f", tt.american, got, tt.want)
			}
		})
	}
}

func TestAmericanToDecimalZero(t *testing.T) {
	if _, err := oddsmath.AmericanToDecimal(0); err == nil {
		t.Error("AmericanToDecimal(0) should return an error")
	}
}

func TestDecimalToAmerican(t *testing.T) {
	tests := []struct {
		name    string
		decimal float64
		want    int
	}{
		{"Even odds 2.0", 2.0, 100},
		{"Underdog 2.5", 2.5, 150},
		{"Underdog 3.0", 3.0, 200},
		{"Favorite 1.909", 1.909, -110},
		{"Favorite 1.667", 1.667, -150},
		{"Favorite 1.5", 1.5, -200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := oddsmath.DecimalToAmerican(tt.decimal)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			// Allow ±1 for rounding
			if math.Abs(float64(got-tt.want)) > 1 {
				t.Errorf("DecimalToAmerican(%f) = %d, want %d", tt.decimal, got, tt.want)
			}
		})
	}
}

func TestDecimalToAmericanInvalid(t *testing.T) {
	for _, decimal := range []float64{1.0, 0.5, 0, -2.0} {
		if _, err := oddsmath.DecimalToAmerican(decimal); err == nil {
			t.Errorf("DecimalToAmerican(%f) should return an error", decimal)
		}
	}
}

func TestDecimalToImpliedProbability(t *testing.T) {
	tests := []struct {
		name    string
		decimal float64
		want    float64
	}{
		{"Even odds", 2.0, 0.50},
		{"Favorite", 1.909090909, 0.5238},
		{"Heavy favorite", 1.5, 0.6667},
		{"Underdog", 2.5, 0.40},
		{"Heavy underdog", 4.0, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := oddsmath.DecimalToImpliedProbability(tt.decimal)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if math.Abs(got-tt.want) > 0.0001 {
				t.Errorf("DecimalToImpliedProbability(%f) = %f, want %f", tt.decimal, got, tt.want)
			}
		})
	}

	if _, err := oddsmath.DecimalToImpliedProbability(0); err == nil {
		t.Error("DecimalToImpliedProbability(0) should return an error")
	}
}

// Round-tripping decimal → American → decimal stays within rounding tolerance
func TestRoundTrip(t *testing.T) {
	for _, decimal := range []float64{1.10, 1.25, 1.5, 1.909, 1.99, 2.0, 2.5, 3.64, 5.0, 11.0} {
		american, err := oddsmath.DecimalToAmerican(decimal)
		if err != nil {
			t.Fatalf("DecimalToAmerican(%f): %v", decimal, err)
		}

		back, err := oddsmath.AmericanToDecimal(american)
		if err != nil {
			t.Fatalf("AmericanToDecimal(%d): %v", american, err)
		}

		if math.Abs(back-decimal) > 0.01 {
			t.Errorf("round trip %f → %d → %f drifted", decimal, american, back)
		}
	}

	for _, american := range []int{100, 110, 150, 264, 500, -110, -150, -200, -1000} {
		decimal, err := oddsmath.AmericanToDecimal(american)
		if err != nil {
			t.Fatalf("AmericanToDecimal(%d): %v", american, err)
		}

		back, err := oddsmath.DecimalToAmerican(decimal)
		if err != nil {
			t.Fatalf("DecimalToAmerican(%f): %v", decimal, err)
		}

		if math.Abs(float64(back-american)) > 1 {
			t.Errorf("round trip %d → %f → %d drifted", american, decimal, back)
		}
	}
}
