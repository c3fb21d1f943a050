package gridmap

import "math"

// ToGrid converts a metric coordinate to the grid cell containing it.
// By default each axis is floored, so negative coordinates map to negative
// cells; WithTruncation rounds toward zero instead. The result agrees with
// ToMetric: cell n holds every v with n*r <= v < (n+1)*r, which makes
// ToGrid(ToMetric(g)) == g exact. An axis that cannot be converted yields OffGrid.
// Complexity: O(1).
func (gm *GridMap) ToGrid(x, y float64) Point2i {
	return Point2i{X: gm.toCell(x), Y: gm.toCell(y)}
}

// ToMetric returns the metric position of cell (x,y)'s origin corner.
// Complexity: O(1).
func (gm *GridMap) ToMetric(x, y int) Point2f {
	r := gm.info.Resolution
	return Point2f{X: float64(x) * r, Y: float64(y) * r}
}

// CellCenter returns the metric position of cell (x,y)'s center.
func (gm *GridMap) CellCenter(x, y int) Point2f {
	r := gm.info.Resolution
	return Point2f{X: (float64(x) + 0.5) * r, Y: (float64(y) + 0.5) * r}
}

func (gm *GridMap) toCell(v float64) int {
	r := gm.info.Resolution
	if !validResolution(r) || math.IsNaN(v) || math.IsInf(v, 0) {
		return OffGrid
	}

	var n float64
	if gm.truncate {
		n = math.Trunc(v / r)
		// truncated cells are (n-1)*r < v <= n*r below zero
		if v < 0 {
			if (n-1)*r >= v {
				n--
			} else if n < 0 && n*r < v {
				n++
			}
			return clampCell(n)
		}
	} else {
		n = math.Floor(v / r)
	}
	// division may land one cell off near a boundary
	if (n+1)*r <= v {
		n++
	} else if n*r > v {
		n--
	}

	return clampCell(n)
}

func clampCell(n float64) int {
	if n < math.MinInt32 || n > math.MaxInt32 {
		return OffGrid
	}

	return int(n)
}
