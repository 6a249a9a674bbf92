package swatch

import (
	"errors"
	"testing"
)

func TestStandout(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"#ffffff", "#4c4c4c"},
		{"#000000", "#cccccc"},
		{"#808080", "#4c4c4c"},
		{"#3498db", "#125886"},
		{"#ff0000", "#ff9999"},
		{"#ff0080", "#ff99cc"},
		{"#1a1a2e", "#b5b5e2"},
		// S = 0.25/0.5 = 0.5 at L 0.8: channels 229.5 and 178.5.
		{"#804040", "#e5b2b2"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Standout(tt.in)
			if err != nil {
				t.Fatalf("Standout(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Standout(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStandout_Lightness(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"#ffffff", standoutDark},
		{"#000000", standoutLight},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			out, err := Standout(tt.in)
			if err != nil {
				t.Fatalf("Standout(%q) error = %v", tt.in, err)
			}
			c, err := ParseHex(out)
			if err != nil {
				t.Fatalf("ParseHex(%q) error = %v", out, err)
			}
			// Hex truncation costs at most one channel unit.
			if l := c.HSL().L; absDiff(l, tt.want) > 1.0/255 {
				t.Errorf("Standout(%q) lightness = %v, want %v", tt.in, l, tt.want)
			}
		})
	}
}

func TestStandout_KeepsHue(t *testing.T) {
	in := New(52, 152, 219)
	out := StandoutColor(in)
	if absDiff(out.HSL().H, in.HSL().H) > 1e-9 {
		t.Errorf("StandoutColor hue = %v, want %v", out.HSL().H, in.HSL().H)
	}
}

func TestStandoutColor_Unclamped(t *testing.T) {
	// Out of range channels are clamped to white first.
	if got := StandoutColor(New(300, 300, 300)).Hex(); got != "#4c4c4c" {
		t.Errorf("StandoutColor(300, 300, 300) = %q, want #4c4c4c", got)
	}
}

func TestStandout_Invalid(t *testing.T) {
	got, err := Standout("white")
	if !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Standout(\"white\") error = %v, want ErrInvalidFormat", err)
	}
	if got != "" {
		t.Errorf("Standout(\"white\") = %q, want empty", got)
	}
}
