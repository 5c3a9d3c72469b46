package canvas

import "math"

// DrawCircle draws the circle of radius r centered on (cx, cy) with the midpoint
// algorithm.
func (c *Canvas) DrawCircle(cx, cy, r int, fill Fill) {
	x, y := 0, r
	d := 1 - r

	c.DrawPoint(cx+x, cy+y)
	c.DrawPoint(cx-x, cy-y)
	c.DrawPoint(cx+y, cy+x)
	c.DrawPoint(cx-y, cy-x)
	if fill {
		for j := -y; j < y; j++ {
			c.DrawPoint(cx, cy+j)
		}
	}

	for x < y {
		x++
		if d < 0 {
			d += 2*x + 1
		} else {
			y--
			d += 2*(x-y) + 1
		}

		c.DrawPoint(cx+x, cy+y)
		c.DrawPoint(cx+y, cy+x)
		c.DrawPoint(cx-x, cy-y)
		c.DrawPoint(cx-y, cy-x)
		c.DrawPoint(cx+x, cy-y)
		c.DrawPoint(cx+y, cy-x)
		c.DrawPoint(cx-x, cy+y)
		c.DrawPoint(cx-y, cy+x)

		if fill {
			for j := -y; j < y; j++ {
				c.DrawPoint(cx+x, cy+j)
				c.DrawPoint(cx-x, cy+j)
			}
			for j := -x; j < x; j++ {
				c.DrawPoint(cx-y, cy+j)
				c.DrawPoint(cx+y, cy+j)
			}
		}
	}
}

// The ellipse decision values are the only floating point in the rasterizers. a and b
// are the horizontal and vertical semi-axes; (x, y) is the current point of the first
// quadrant.

func ellipseStart(a, b float64) float64 {
	return b*b + a*a*(-b+0.5)
}

// ellipseUpper reports whether (x, y) is still in the region where the slope is
// shallower than -1, stepping along x.
func ellipseUpper(a, b float64, x, y int) bool {
	return b*b*float64(x+1) < a*a*(float64(y)-0.5)
}

func ellipseStepUpper(a, b, d float64, x, y int, down bool) float64 {
	d += b * b * float64(2*x+3)
	if down {
		d += a * a * float64(-2*y+2)
	}
	return d
}

func ellipseLowerStart(a, b float64, x, y int) float64 {
	fx, fy := float64(x)+0.5, float64(y-1)
	return b*b*fx*fx + a*a*fy*fy - a*a*b*b
}

func ellipseStepLower(a, b, d float64, x, y int, right bool) float64 {
	d += a * a * float64(-2*y+3)
	if right {
		d += b * b * float64(2*x+2)
	}
	return d
}

// DrawEllipse draws the axis-aligned ellipse centered on (cx, cy) with horizontal
// semi-axis a and vertical semi-axis b, using the two-region midpoint algorithm.
func (c *Canvas) DrawEllipse(cx, cy, a, b int, fill Fill) {
	fa, fb := float64(a), float64(b)
	x, y := 0, b

	plot := func() {
		if fill {
			for j := -y; j < y; j++ {
				c.DrawPoint(cx+x, cy+j)
				c.DrawPoint(cx-x, cy+j)
			}
		}
		c.DrawPoint(cx+x, cy+y)
		c.DrawPoint(cx-x, cy-y)
		c.DrawPoint(cx-x, cy+y)
		c.DrawPoint(cx+x, cy-y)
	}

	plot()

	d1 := ellipseStart(fa, fb)
	for ellipseUpper(fa, fb, x, y) {
		down := d1 > 0
		d1 = ellipseStepUpper(fa, fb, d1, x, y, down)
		if down {
			y--
		}
		x++
		plot()
	}

	d2 := ellipseLowerStart(fa, fb, x, y)
	for y > 0 {
		right := d2 <= 0
		d2 = ellipseStepLower(fa, fb, d2, x, y, right)
		if right {
			x++
		}
		y--
		plot()
	}
}

// DrawArc draws the part of the circle of radius r centered on (cx, cy) that lies
// between the start and end angles, in degrees. See InAngle for the orientation.
// A filled arc is a pie slice.
func (c *Canvas) DrawArc(cx, cy, r, start, end int, fill Fill) {
	plot := func(dx, dy int) {
		if InAngle(dx, dy, start, end) {
			c.DrawPoint(cx+dx, cy+dy)
		}
	}

	x, y := 0, r
	d := 1 - r

	plot(x, y)
	plot(-x, -y)
	plot(y, x)
	plot(-y, -x)
	if fill {
		for j := -y; j < y; j++ {
			plot(0, j)
		}
	}

	for x < y {
		x++
		if d < 0 {
			d += 2*x + 1
		} else {
			y--
			d += 2*(x-y) + 1
		}

		plot(x, y)
		plot(y, x)
		plot(-x, -y)
		plot(-y, -x)
		plot(x, -y)
		plot(y, -x)
		plot(-x, y)
		plot(-y, x)

		if fill {
			for j := -y; j < y; j++ {
				plot(x, j)
				plot(-x, j)
			}
			for j := -x; j < x; j++ {
				plot(-y, j)
				plot(y, j)
			}
		}
	}
}

// InAngle reports whether the point (x, y), relative to a center, lies in the sector
// from start to end degrees.
//
// 0 degrees points right and 180 or -180 left; positive angles are below the
// horizontal, so angles grow clockwise on screen. The point's angle is truncated to
// whole degrees. When start < end the sector is [start, end]; otherwise it wraps
// through 180 and holds angles >= start or <= end.
func InAngle(x, y, start, end int) bool {
	angle := int(math.Atan2(float64(y), float64(x)) * 180 / math.Pi)
	if start < end {
		return angle >= start && angle <= end
	}
	return angle >= start || angle <= end
}
