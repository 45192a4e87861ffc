// Package colors contains functions to quickly and easily generate scrollstage.Color instances by name (i.e. "White()", "Stage()", "Amber()", etc).
package colors

import "github.com/solarlune/scrollstage"

// Transparent generates a fully transparent scrollstage.Color.
func Transparent() scrollstage.Color {
	return scrollstage.NewColor(0, 0, 0, 0)
}

// White generates a scrollstage.Color instance of the provided name.
func White() scrollstage.Color {
	return scrollstage.NewColor(1, 1, 1, 1)
}

// Black generates a scrollstage.Color instance of the provided name.
func Black() scrollstage.Color {
	return scrollstage.NewColor(0, 0, 0, 1)
}

// LightGray generates a scrollstage.Color instance of the provided name.
func LightGray() scrollstage.Color {
	return scrollstage.NewColor(0.8, 0.8, 0.8, 1)
}

// DarkGray generates a scrollstage.Color instance of the provided name.
func DarkGray() scrollstage.Color {
	return scrollstage.NewColor(0.2, 0.2, 0.2, 1)
}

// Red generates a scrollstage.Color instance of the provided name.
func Red() scrollstage.Color {
	return scrollstage.NewColor(1, 0, 0, 1)
}

// Yellow generates a scrollstage.Color instance of the provided name.
func Yellow() scrollstage.Color {
	return scrollstage.NewColor(1, 1, 0, 1)
}

// Stage is the dark blue-gray backdrop both demo pages clear to (#1d1d26).
func Stage() scrollstage.Color {
	return scrollstage.NewColor(0x1d/255.0, 0x1d/255.0, 0x26/255.0, 1)
}

// Amber is the base color of the sample cube and the text solids (#ff9900).
func Amber() scrollstage.Color {
	return scrollstage.NewColor(1, 0x99/255.0, 0, 1)
}

// Azure is the emissive color of the sample cube and the text solids (#049ef4).
func Azure() scrollstage.Color {
	return scrollstage.NewColor(0x04/255.0, 0x9e/255.0, 0xf4/255.0, 1)
}

// SkyBlue generates a scrollstage.Color instance of the provided name.
func SkyBlue() scrollstage.Color {
	return scrollstage.NewColor(0, 0.5, 1, 1)
}
