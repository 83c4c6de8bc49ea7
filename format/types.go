package format

// Width is the fixed number of bits used to store every element of one
// encoded sequence. It is chosen once per sequence from the ladder {4, 7, 9}.
type Width uint8

const (
	Width4 Width = 4 // Width4 stores values up to 15; selected when the maximum is below 10.
	Width7 Width = 7 // Width7 stores values up to 127; selected when the maximum is below 100.
	Width9 Width = 9 // Width9 stores values up to 511; covers the full 1-300 range.
)

// Bits returns the width as a bit count usable with a bit writer or reader.
func (w Width) Bits() int {
	return int(w)
}

func (w Width) String() string {
	switch w {
	case Width4:
		return "Width4"
	case Width7:
		return "Width7"
	case Width9:
		return "Width9"
	default:
		return "Unknown"
	}
}
