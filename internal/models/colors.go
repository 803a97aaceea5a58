package models

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Persona colors back headers and tags, not body text, so we use the AA large-text threshold.
const wcagAAMinContrastRatio = 3.0
const wcagAAContrastNote = "WCAG AA for large text/UI components"
const darkTextColor = "#000000"
const lightTextColor = "#FFFFFF"

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
var looseHexColorRegex = regexp.MustCompile(`^#?([0-9a-fA-F]{2})([0-9a-fA-F]{2})([0-9a-fA-F]{2})$`)

func IsHexColor(value string) bool {
	return hexColorRegex.MatchString(strings.TrimSpace(value))
}

// RGB holds 8-bit channel values.
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// HSL holds hue in [0,360) and saturation/lightness in [0,100].
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// HexToRGB parses "#RRGGBB" or "RRGGBB", case-insensitively.
func HexToRGB(hex string) (RGB, error) {
	match := looseHexColorRegex.FindStringSubmatch(hex)
	if match == nil {
		return RGB{}, fmt.Errorf("invalid hex color: %s", hex)
	}
	var channels [3]int
	for i := range channels {
		value, err := strconv.ParseUint(match[i+1], 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("invalid hex color: %s", hex)
		}
		channels[i] = int(value)
	}
	return RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}

func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", clampChannel(c.R), clampChannel(c.G), clampChannel(c.B))
}

// RGBToHSL converts 8-bit channels to HSL.
func RGBToHSL(c RGB) HSL {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l := (max + min) / 2

	if max == min {
		return HSL{H: 0, S: 0, L: l * 100}
	}

	d := max - min
	var s float64
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}

	var h float64
	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h /= 6

	return HSL{H: h * 360, S: s * 100, L: l * 100}
}

// HSLToRGB is the inverse of RGBToHSL, rounding to the nearest channel value.
func HSLToRGB(c HSL) RGB {
	hue := math.Mod(c.H, 360)
	if hue < 0 {
		hue += 360
	}
	color := colorful.Hsl(hue, c.S/100, c.L/100).Clamped()
	r, g, b := color.RGB255()
	return RGB{R: int(r), G: int(g), B: int(b)}
}

// ContrastRatio returns the WCAG contrast ratio between two hex colors.
func ContrastRatio(textColor, backgroundColor string) (float64, error) {
	textL, err := relativeLuminance(textColor)
	if err != nil {
		return 0, err
	}
	backgroundL, err := relativeLuminance(backgroundColor)
	if err != nil {
		return 0, err
	}
	lightest := math.Max(textL, backgroundL)
	darkest := math.Min(textL, backgroundL)
	return (lightest + 0.05) / (darkest + 0.05), nil
}

func validateTextContrast(colorName, backgroundColor string) error {
	textColors := []string{darkTextColor, lightTextColor}
	bestRatio := 0.0
	bestText := ""
	for _, textColor := range textColors {
		ratio, err := ContrastRatio(textColor, backgroundColor)
		if err != nil {
			return err
		}
		if ratio > bestRatio {
			bestRatio = ratio
			bestText = textColor
		}
	}
	if bestRatio < wcagAAMinContrastRatio {
		return fmt.Errorf(
			"%s must have contrast ratio >= %.1f with #000000 or #FFFFFF text (%s); best is %s at %.2f",
			colorName,
			wcagAAMinContrastRatio,
			wcagAAContrastNote,
			bestText,
			bestRatio,
		)
	}
	return nil
}

func relativeLuminance(hexColor string) (float64, error) {
	if !hexColorRegex.MatchString(hexColor) {
		return 0, fmt.Errorf("invalid hex color: %s", hexColor)
	}
	rgb, err := HexToRGB(hexColor)
	if err != nil {
		return 0, err
	}

	rl := srgbToLinear(float64(rgb.R) / 255)
	gl := srgbToLinear(float64(rgb.G) / 255)
	bl := srgbToLinear(float64(rgb.B) / 255)

	return 0.2126*rl + 0.7152*gl + 0.0722*bl, nil
}

func srgbToLinear(value float64) float64 {
	if value <= 0.03928 {
		return value / 12.92
	}
	return math.Pow((value+0.055)/1.055, 2.4)
}

func clampChannel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
