package gridmap

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// New constructs a GridMap from metadata and row-major cell values.
// It copies data to ensure immutability and never fails: dimensions are
// clamped to [0, MaxDimension], and a degenerate resolution is kept as is
// (conversions then report OffGrid). Use NewStrict or Validate to reject it.
// Complexity: O(len(data)) time and memory.
func New(info Info, data []int32, opts ...Option) *GridMap {
	info.Width = clampDimension(info.Width)
	info.Height = clampDimension(info.Height)
	cells := make([]int32, len(data))
	copy(cells, data)

	gm := &GridMap{info: info, data: cells}
	for _, opt := range opts {
		opt(gm)
	}

	return gm
}

// NewStrict is New followed by Validate.
// Returns ErrInvalidResolution or ErrShortData on malformed input.
func NewStrict(info Info, data []int32, opts ...Option) (*GridMap, error) {
	gm := New(info, data, opts...)
	if err := gm.Validate(); err != nil {
		return nil, err
	}

	return gm, nil
}

// Validate reports whether the map is usable for conversion and full-coverage lookups.
func (gm *GridMap) Validate() error {
	if !validResolution(gm.info.Resolution) {
		return fmt.Errorf("resolution %v: %w", gm.info.Resolution, ErrInvalidResolution)
	}
	if need := int64(gm.info.Width) * int64(gm.info.Height); int64(len(gm.data)) < need {
		return fmt.Errorf("have %d cells, want %d: %w", len(gm.data), need, ErrShortData)
	}

	return nil
}

// Width returns the number of columns, 0 if unknown.
func (gm *GridMap) Width() int { return gm.info.Width }

// Height returns the number of rows, 0 if unknown.
func (gm *GridMap) Height() int { return gm.info.Height }

// Resolution returns the metric length of one cell edge.
// 0.0 means the metadata carried no usable resolution.
func (gm *GridMap) Resolution() float64 { return gm.info.Resolution }

// Info returns a copy of the grid metadata.
func (gm *GridMap) Info() Info { return gm.info }

// Len returns the number of stored cell values, which may differ from Width×Height.
func (gm *GridMap) Len() int { return len(gm.data) }

// Header returns a deep copy of the opaque header, or nil if none was attached.
func (gm *GridMap) Header() *structpb.Value {
	if gm.header == nil {
		return nil
	}

	return proto.Clone(gm.header).(*structpb.Value)
}

// InBounds reports whether (x,y) lies within [0,Width)×[0,Height).
// Complexity: O(1).
func (gm *GridMap) InBounds(x, y int) bool {
	if x < 0 || x >= gm.info.Width {
		return false
	}
	if y < 0 || y >= gm.info.Height {
		return false
	}

	return true
}

// Index maps (x,y) to a row-major index: y*Width + x.
// It does not check bounds.
func (gm *GridMap) Index(x, y int) int {
	return gm.info.Width*y + x
}

// Coordinate converts a row-major index back to (x,y).
// Returns (OffGrid, OffGrid) for a negative index or a zero-width map.
func (gm *GridMap) Coordinate(idx int) Point2i {
	if idx < 0 || gm.info.Width == 0 {
		return Point2i{X: OffGrid, Y: OffGrid}
	}

	return Point2i{X: idx % gm.info.Width, Y: idx / gm.info.Width}
}

func clampDimension(n int) int {
	switch {
	case n < 0:
		return 0
	case n > MaxDimension:
		return MaxDimension
	}

	return n
}

func validResolution(r float64) bool {
	return r > 0 && !math.IsInf(r, 1)
}
