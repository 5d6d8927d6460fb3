package display

import "image/color"

// UI constants
const (
	DigitSize     float32 = 42.0
	LabelSize     float32 = 11.0
	SeparatorSize float32 = 36.0
)

// Style contains colors and sizes for the digit display.
type Style struct {
	DigitSize     float32
	LabelSize     float32
	SeparatorSize float32

	DigitColor     color.Color
	LabelColor     color.Color
	SeparatorColor color.Color
}

// DefaultStyle returns the stock dark-on-light digit style.
func DefaultStyle() Style {
	return Style{
		DigitSize:      DigitSize,
		LabelSize:      LabelSize,
		SeparatorSize:  SeparatorSize,
		DigitColor:     color.NRGBA{R: 0xfa, G: 0xfa, B: 0xfa, A: 0xff},
		LabelColor:     color.NRGBA{R: 0xb0, G: 0xb0, B: 0xb0, A: 0xff},
		SeparatorColor: color.NRGBA{R: 0xfa, G: 0xfa, B: 0xfa, A: 0xff},
	}
}
