package core

// ResolvePixel converts an accumulated sample sum into a displayable
// color: average over the sample count, then gamma 2 correction.
func ResolvePixel(sum Color, samplesPerPixel int) Color {
	return sum.Divide(float64(samplesPerPixel)).Sqrt()
}

// ChannelToByte maps a linear channel value to an integer in [0,255].
// Values at or above 1.0 clamp to 255, negatives to 0.
func ChannelToByte(c float64) int {
	return int(256 * max(0.0, min(0.999, c)))
}

// RGB returns the three output channels of a resolved color
func RGB(c Color) (r, g, b int) {
	return ChannelToByte(c.X), ChannelToByte(c.Y), ChannelToByte(c.Z)
}
