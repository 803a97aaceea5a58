package models

import (
	"math"
	"testing"
)

func TestIsHexColor(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "empty", value: "", want: false},
		{name: "whitespace", value: "   ", want: false},
		{name: "missing_hash", value: "AABBCC", want: false},
		{name: "short_hex", value: "#ABC", want: false},
		{name: "long_hex", value: "#AABBCCDD", want: false},
		{name: "invalid_char", value: "#AABBCG", want: false},
		{name: "lowercase_hex", value: "#aabbcc", want: true},
		{name: "uppercase_hex", value: "#AABBCC", want: true},
		{name: "trimmed_hex", value: "  #AABBCC  ", want: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := IsHexColor(test.value); got != test.want {
				t.Fatalf("IsHexColor(%q) = %t, want %t", test.value, got, test.want)
			}
		})
	}
}

func TestHexToRGB(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    RGB
		wantErr bool
	}{
		{name: "developer_primary", value: "#00D4FF", want: RGB{R: 0, G: 212, B: 255}},
		{name: "lowercase", value: "#ff6b35", want: RGB{R: 255, G: 107, B: 53}},
		{name: "no_hash", value: "2563EB", want: RGB{R: 37, G: 99, B: 235}},
		{name: "short", value: "#FFF", wantErr: true},
		{name: "garbage", value: "#GGGGGG", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := HexToRGB(test.value)
			if test.wantErr {
				if err == nil {
					t.Fatalf("HexToRGB(%q) expected error, got %+v", test.value, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("HexToRGB(%q) error = %v", test.value, err)
			}
			if got != test.want {
				t.Fatalf("HexToRGB(%q) = %+v, want %+v", test.value, got, test.want)
			}
		})
	}
}

func TestRGBToHSL(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want HSL
	}{
		// (0,212,255): b is the max channel, so hue = ((0-0.831)/1 + 4) * 60.
		{name: "developer_primary", rgb: RGB{R: 0, G: 212, B: 255}, want: HSL{H: 190.12, S: 100, L: 50}},
		{name: "pure_red", rgb: RGB{R: 255, G: 0, B: 0}, want: HSL{H: 0, S: 100, L: 50}},
		{name: "pure_green", rgb: RGB{R: 0, G: 255, B: 0}, want: HSL{H: 120, S: 100, L: 50}},
		{name: "magenta_wraps", rgb: RGB{R: 255, G: 0, B: 128}, want: HSL{H: 329.88, S: 100, L: 50}},
		{name: "white", rgb: RGB{R: 255, G: 255, B: 255}, want: HSL{H: 0, S: 0, L: 100}},
		{name: "black", rgb: RGB{R: 0, G: 0, B: 0}, want: HSL{H: 0, S: 0, L: 0}},
		{name: "gray", rgb: RGB{R: 128, G: 128, B: 128}, want: HSL{H: 0, S: 0, L: 50.2}},
		{name: "light_tint", rgb: RGB{R: 255, G: 224, B: 102}, want: HSL{H: 47.84, S: 100, L: 70}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := RGBToHSL(test.rgb)
			if !within(got.H, test.want.H, 0.1) || !within(got.S, test.want.S, 0.1) || !within(got.L, test.want.L, 0.1) {
				t.Fatalf("RGBToHSL(%+v) = %+v, want %+v", test.rgb, got, test.want)
			}
			if got.H < 0 || got.H >= 360 {
				t.Fatalf("hue %f outside [0,360)", got.H)
			}
		})
	}
}

func TestHSLRoundTrip(t *testing.T) {
	catalog, err := DefaultCatalog()
	if err != nil {
		t.Fatalf("DefaultCatalog() error = %v", err)
	}

	colors := []string{"#000000", "#FFFFFF", "#808080", "#0F1419", "#1A1D3A", "#B3B8DB", "#6B7280"}
	for _, persona := range catalog.All() {
		colors = append(colors, persona.PrimaryColor, persona.SecondaryColor, persona.AccentColor)
	}

	for _, hex := range colors {
		rgb, err := HexToRGB(hex)
		if err != nil {
			t.Fatalf("HexToRGB(%q) error = %v", hex, err)
		}
		back := HSLToRGB(RGBToHSL(rgb))
		if absInt(back.R-rgb.R) > 1 || absInt(back.G-rgb.G) > 1 || absInt(back.B-rgb.B) > 1 {
			t.Fatalf("round trip %s: got %+v want %+v", hex, back, rgb)
		}
	}
}

func TestRGBHex(t *testing.T) {
	if got := (RGB{R: 0, G: 212, B: 255}).Hex(); got != "#00D4FF" {
		t.Fatalf("Hex() = %q, want #00D4FF", got)
	}
	if got := (RGB{R: -4, G: 300, B: 16}).Hex(); got != "#00FF10" {
		t.Fatalf("Hex() clamped = %q, want #00FF10", got)
	}
}

func TestContrastRatio(t *testing.T) {
	ratio, err := ContrastRatio("#000000", "#FFFFFF")
	if err != nil {
		t.Fatalf("ContrastRatio() error = %v", err)
	}
	if !within(ratio, 21, 0.01) {
		t.Fatalf("black/white contrast = %f, want 21", ratio)
	}

	if _, err := ContrastRatio("#000", "#FFFFFF"); err == nil {
		t.Fatalf("expected error for short hex color")
	}
}

func within(got, want, tolerance float64) bool {
	return math.Abs(got-want) <= tolerance
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
