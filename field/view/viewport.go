package view

// Speed scales mouse deltas for panning and zooming.
const Speed = 0.001

// MinZoom is the smallest zoom ZoomBy allows.
const MinZoom = 0.01

// Viewport is an orthographic camera over a field drawn in the unit square.
// The longer field axis spans [0, 1]; the shorter one is scaled down.
type Viewport struct {
	ScreenWidth  int
	ScreenHeight int

	EyeX float64
	EyeY float64
	Zoom float64
}

// NewViewport returns a viewport looking at the centre of a fieldW x fieldH
// field.
func NewViewport(screenW, screenH, fieldW, fieldH int) Viewport {
	v := Viewport{ScreenWidth: screenW, ScreenHeight: screenH, EyeX: 0.5, EyeY: 0.5, Zoom: 1}
	if fieldW < fieldH {
		v.EyeX = float64(fieldW) / float64(fieldH) * 0.5
	}
	if fieldH < fieldW {
		v.EyeY = float64(fieldH) / float64(fieldW) * 0.5
	}
	return v
}

// Pan moves the eye by a mouse delta in screen pixels.
func (v *Viewport) Pan(dx, dy float64) {
	v.EyeX -= dx * Speed
	v.EyeY += dy * Speed
}

// ZoomBy changes the zoom by a vertical mouse delta in screen pixels. The
// zoom never drops below MinZoom.
func (v *Viewport) ZoomBy(dy float64) {
	v.Zoom = max(v.Zoom-dy*Speed, MinZoom)
}

// CellAt maps screen pixel (sx, sy), origin at the top left, to the field
// cell under it. The result is clamped into the field.
func (v Viewport) CellAt(sx, sy, fieldW, fieldH int) (x, y int) {
	sy = v.ScreenHeight - sy

	xNorm := float64(sx) / float64(v.ScreenWidth)
	yNorm := float64(sy) / float64(v.ScreenHeight)

	half := 0.5 * v.Zoom
	xWorldMin, xWorldMax := v.EyeX-half, v.EyeX+half
	yWorldMin, yWorldMax := v.EyeY-half, v.EyeY+half

	xMin := (0 - xWorldMin) / (xWorldMax - xWorldMin)
	xMax := (1 - xWorldMin) / (xWorldMax - xWorldMin)
	yMin := (0 - yWorldMin) / (yWorldMax - yWorldMin)
	yMax := (1 - yWorldMin) / (yWorldMax - yWorldMin)

	xScale, yScale := 1.0, 1.0
	if fieldW < fieldH {
		xScale = float64(fieldH) / float64(fieldW)
	}
	if fieldW > fieldH {
		yScale = float64(fieldW) / float64(fieldH)
	}

	x = int(xScale * float64(fieldW) * ((xNorm - xMin) / (xMax - xMin)))
	y = int(yScale * float64(fieldH) * ((yNorm - yMin) / (yMax - yMin)))

	return clamp(x, fieldW), clamp(y, fieldH)
}

func clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
