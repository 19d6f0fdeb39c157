package config

import "image/color"

var (
	WindowW = 960
	WindowH = 720

	// World units to screen pixels in the top-down view
	PixelsPerUnit = 60.0
)

var BackgroundColor color.Color = color.RGBA{
	R: 18,
	G: 22,
	B: 30,
	A: 255,
}

var EdgeColor color.Color = color.RGBA{
	R: 255,
	G: 255,
	B: 255,
	A: 90,
}

// LightDir is the direction towards the light used to shade faces.
var LightDir = [3]float64{-0.4, 0.8, -0.45}
