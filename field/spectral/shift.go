package spectral

import "github.com/cwbudde/algo-field/field"

// Shift swaps the quadrants of g in place, moving the DC bin between the
// corner (native transform layout) and the centre (display layout).
//
// Each axis of length n is split at h = n/2. For even n the halves [0, h)
// and [h, n) trade places. For odd n the second half carries one extra
// leading sample: index h stays where it is and [0, h) trades places with
// [h+1, n). Both rules are involutions, so applying Shift twice restores g.
// The x pass runs first, then the y pass, through a pooled scratch grid.
func Shift(g *field.Grid) {
	w, h := g.Width(), g.Height()
	if w == 0 || h == 0 {
		return
	}

	scratch := field.GetGrid(w, h)
	defer field.PutGrid(scratch)

	src, tmp := g.Data(), scratch.Data()

	for y := 0; y < h; y++ {
		row := w * y
		for x := 0; x < w; x++ {
			tmp[row+shiftIndex(x, w)] = src[row+x]
		}
	}

	for y := 0; y < h; y++ {
		dst := w * shiftIndex(y, h)
		copy(src[dst:dst+w], tmp[w*y:w*y+w])
	}
}

// CenterIndex returns where Shift moves index 0 of an axis of length n.
func CenterIndex(n int) int {
	return shiftIndex(0, n)
}

// shiftIndex returns the destination of index i on an axis of length n.
func shiftIndex(i, n int) int {
	half := n / 2
	if n%2 == 0 {
		if i < half {
			return i + half
		}
		return i - half
	}
	switch {
	case i < half:
		return i + half + 1
	case i == half:
		return i
	default:
		return i - half - 1
	}
}

// signedFrequency maps a native bin index to its signed frequency.
func signedFrequency(k, n int) int {
	if k > n/2 {
		return k - n
	}
	return k
}
