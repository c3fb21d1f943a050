package gridmap

// GetFromGrid returns the value of cell (x,y), or Sentinel when x is outside
// [0,Width), y is outside [0,Height), or the flat index runs past the stored data.
// Complexity: O(1).
func (gm *GridMap) GetFromGrid(x, y int) int64 {
	v, ok := gm.Lookup(x, y)
	if !ok {
		return Sentinel
	}

	return int64(v)
}

// GetFromMetric returns the value of the cell containing metric point (x,y),
// or Sentinel. It is GetFromGrid applied to ToGrid(x, y).
func (gm *GridMap) GetFromMetric(x, y float64) int64 {
	p := gm.ToGrid(x, y)
	return gm.GetFromGrid(p.X, p.Y)
}

// Lookup is the comma-ok form of GetFromGrid.
func (gm *GridMap) Lookup(x, y int) (int32, bool) {
	if !gm.InBounds(x, y) {
		return 0, false
	}
	idx := int64(gm.info.Width)*int64(y) + int64(x)
	if idx >= int64(len(gm.data)) {
		return 0, false
	}

	return gm.data[idx], true
}

// LookupMetric is the comma-ok form of GetFromMetric.
func (gm *GridMap) LookupMetric(x, y float64) (int32, bool) {
	p := gm.ToGrid(x, y)
	return gm.Lookup(p.X, p.Y)
}
