package flashloan

import (
	"errors"
	"math"
	"testing"
)

func TestComputeFee(t *testing.T) {
	tests := []struct {
		name      string
		principal uint64
		fee       uint64
	}{
		{"zero principal", 0, 0},
		{"below fee granularity", 19, 0},
		{"smallest nonzero fee", 20, 1},
		{"round figure", 1000, 50},
		{"truncates toward zero", 1019, 50},
		{"one token at 9 decimals", 1_000_000_000, 50_000_000},
		{"max uint64", math.MaxUint64, math.MaxUint64 / 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fee, err := ComputeFee(tt.principal)
			if err != nil {
				t.Fatalf("ComputeFee(%d) returned error: %v", tt.principal, err)
			}
			if fee != tt.fee {
				t.Errorf("ComputeFee(%d): expected %d, got %d", tt.principal, tt.fee, fee)
			}
		})
	}
}

func TestComputeFeeMatchesFloorFormula(t *testing.T) {
	// fee = floor(principal * 500 / 10_000) reduces to principal / 20 exactly.
	principals := []uint64{1, 7, 20, 21, 999, 1_000, 123_456_789, 1 << 40, 1<<63 - 1}

	for _, p := range principals {
		fee, err := ComputeFee(p)
		if err != nil {
			t.Fatalf("ComputeFee(%d) returned error: %v", p, err)
		}
		if expected := p / 20; fee != expected {
			t.Errorf("ComputeFee(%d): expected %d, got %d", p, expected, fee)
		}
	}
}

func TestComputeTotal(t *testing.T) {
	t.Run("principal plus fee", func(t *testing.T) {
		total, err := ComputeTotal(1000, 50)
		if err != nil {
			t.Fatalf("ComputeTotal returned error: %v", err)
		}
		if total != 1050 {
			t.Errorf("Expected total 1050, got %d", total)
		}
	})

	t.Run("zero fee", func(t *testing.T) {
		total, err := ComputeTotal(19, 0)
		if err != nil {
			t.Fatalf("ComputeTotal returned error: %v", err)
		}
		if total != 19 {
			t.Errorf("Expected total 19, got %d", total)
		}
	})

	t.Run("overflow is reported, never wrapped", func(t *testing.T) {
		_, err := ComputeTotal(math.MaxUint64, 1)
		if !errors.Is(err, ErrOverflow) {
			t.Errorf("Expected ErrOverflow, got %v", err)
		}
	})

	t.Run("exactly at the uint64 boundary", func(t *testing.T) {
		total, err := ComputeTotal(math.MaxUint64-1, 1)
		if err != nil {
			t.Fatalf("ComputeTotal returned error: %v", err)
		}
		if total != math.MaxUint64 {
			t.Errorf("Expected total %d, got %d", uint64(math.MaxUint64), total)
		}
	})
}

func TestComputeFeeCustomRate(t *testing.T) {
	tests := []struct {
		name        string
		principal   uint64
		basisPoints uint64
		fee         uint64
	}{
		{"no fee", 1000, 0, 0},
		{"ten percent", 1000, 1000, 100},
		{"full principal", 1000, FeeDenominator, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fee, err := computeFee(tt.principal, tt.basisPoints)
			if err != nil {
				t.Fatalf("computeFee returned error: %v", err)
			}
			if fee != tt.fee {
				t.Errorf("computeFee(%d, %d): expected %d, got %d", tt.principal, tt.basisPoints, tt.fee, fee)
			}
		})
	}
}
