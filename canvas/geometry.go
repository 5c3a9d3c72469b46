package canvas

// DrawLine draws a line from (x0, y0) to (x1, y1), both endpoints included.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	switch {
	case y0 == y1:
		if x0 > x1 {
			x0, x1 = x1, x0
		}
		for x := x0; x <= x1; x++ {
			c.DrawPoint(x, y0)
		}
		return
	case x0 == x1:
		if y0 > y1 {
			y0, y1 = y1, y0
		}
		for y := y0; y <= y1; y++ {
			c.DrawPoint(x0, y)
		}
		return
	}

	// Bring the line into the first octant, then undo the transforms per point
	if x0 > x1 {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}
	yflip := false
	if y0 > y1 {
		y0, y1 = -y0, -y1
		yflip = true
	}
	swap := false
	if y1-y0 > x1-x0 {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
		swap = true
	}
	plot := func(x, y int) {
		if swap {
			x, y = y, x
		}
		if yflip {
			y = -y
		}
		c.DrawPoint(x, y)
	}

	dx, dy := x1-x0, y1-y0
	incrE := 2 * dy
	incrNE := 2 * (dy - dx)
	d := 2*dy - dx
	x, y := x0, y0
	plot(x, y)
	for x < x1 {
		x++
		if d < 0 {
			d += incrE
		} else {
			y++
			d += incrNE
		}
		plot(x, y)
	}
}

// DrawRectangle draws the width x height rectangle with its top-left corner at (x, y).
func (c *Canvas) DrawRectangle(x, y, width, height int, fill Fill) {
	if fill {
		for i := x; i < x+width; i++ {
			for j := y; j < y+height; j++ {
				c.DrawPoint(i, j)
			}
		}
		return
	}
	for i := x; i < x+width; i++ {
		c.DrawPoint(i, y)
		c.DrawPoint(i, y+height-1)
	}
	for j := y; j < y+height; j++ {
		c.DrawPoint(x, j)
		c.DrawPoint(x+width-1, j)
	}
}

// DrawTriangle draws the triangle with corners (x0, y0), (x1, y1) and (x2, y2).
// A filled triangle sets every pixel of its bounding box that PointInPolygon accepts.
func (c *Canvas) DrawTriangle(x0, y0, x1, y1, x2, y2 int, fill Fill) {
	if !fill {
		c.DrawLine(x0, y0, x1, y1)
		c.DrawLine(x0, y0, x2, y2)
		c.DrawLine(x1, y1, x2, y2)
		return
	}

	vx := []int{x0, x1, x2}
	vy := []int{y0, y1, y2}
	minX, maxX := min(x0, x1, x2), max(x0, x1, x2)
	minY, maxY := min(y0, y1, y2), max(y0, y1, y2)
	for i := minX; i <= maxX; i++ {
		for j := minY; j <= maxY; j++ {
			if PointInPolygon(vx, vy, i, j) {
				c.DrawPoint(i, j)
			}
		}
	}
}

// PointInPolygon reports whether (x, y) lies inside the polygon with vertices
// (vx[i], vy[i]) under the even-odd rule. The crossing test uses integer division, so
// points on the right and bottom edges fall outside.
func PointInPolygon(vx, vy []int, x, y int) bool {
	n := min(len(vx), len(vy))
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		if (vy[i] > y) != (vy[j] > y) &&
			x < (vx[j]-vx[i])*(y-vy[i])/(vy[j]-vy[i])+vx[i] {
			inside = !inside
		}
	}
	return inside
}
