package layout

import (
	"math"
	"testing"
)

// TestPtPxRoundTrip 验证 pt↔px 换算的往返精度。
func TestPtPxRoundTrip(t *testing.T) {
	samples := []float64{0, 0.001, 1, 12, 14.4, 72, 96, 144, 1000}
	for _, pt := range samples {
		back := pt * PtToPx * PxToPt
		if diff := math.Abs(back - pt); diff > 1e-9 {
			t.Fatalf("pt→px→pt 往返误差过大: in=%g back=%g diff=%g", pt, back, diff)
		}
	}
}

func TestParseLength(t *testing.T) {
	tests := []struct {
		in     string
		wantPX float64
		unit   Unit
	}{
		{"48", 48, UnitPX},
		{"120px", 120, UnitPX},
		{" 72PT ", 96, UnitPT},
		{"0", 0, UnitPX},
		{"12.5px", 12.5, UnitPX},
	}
	for _, tt := range tests {
		got, err := ParseLength(tt.in)
		if err != nil {
			t.Fatalf("ParseLength(%q) error: %v", tt.in, err)
		}
		if got.Unit != tt.unit {
			t.Fatalf("ParseLength(%q) unit = %v, want %v", tt.in, got.Unit, tt.unit)
		}
		if diff := math.Abs(got.PX() - tt.wantPX); diff > 1e-9 {
			t.Fatalf("ParseLength(%q).PX() = %g, want %g", tt.in, got.PX(), tt.wantPX)
		}
	}
}

func TestParseLengthRejects(t *testing.T) {
	for _, in := range []string{"", "abc", "12mm", "-4px", "NaN", "inf", "-Inf", "+infpx", "nanpt"} {
		if _, err := ParseLength(in); err == nil {
			t.Fatalf("ParseLength(%q) should fail", in)
		}
	}
}
