package renderer

// maxLineSteps bounds rasterization of edges stretched far off screen at high zoom
const maxLineSteps = 4096

// cellLine walks the Bresenham line from (x0,y0) to (x1,y1), fn receives step i of n
func cellLine(x0, y0, x1, y1 int, fn func(x, y, i, n int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	n := max(dx, -dy)
	if n > maxLineSteps {
		return
	}
	err := dx + dy
	for i := 0; ; i++ {
		fn(x0, y0, i, n)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// lineVisible rejects segments whose bounding box misses the w×h cell area
func lineVisible(x0, y0, x1, y1, w, h int) bool {
	if max(x0, x1) < 0 || min(x0, x1) >= w {
		return false
	}
	if max(y0, y1) < 0 || min(y0, y1) >= h {
		return false
	}
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
