package gridmap

import (
	"math"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// Sentinel is returned by GetFromGrid and GetFromMetric when no cell exists
// at the requested location. Cells are stored as int32, so no cell value can
// ever equal Sentinel. Callers MUST compare against it; treating it as a
// cost would read an out-of-map query as "maximally occupied".
const Sentinel int64 = math.MaxInt64

// OffGrid is the coordinate ToGrid reports for an axis that cannot be
// mapped to a cell (degenerate resolution, non-finite or out-of-range input).
const OffGrid = -1

// MaxDimension bounds Width and Height so that Width×Height and every flat
// index fit in an int64.
const MaxDimension = math.MaxInt32

// Point2f is a point in metric space.
type Point2f struct {
	X, Y float64
}

// Point2i is a point in grid space. Coordinates are signed so that
// positions left of or below the map stay representable.
type Point2i struct {
	X, Y int
}

// Info holds the grid metadata: dimensions in cells and the metric
// length of one cell edge.
type Info struct {
	Width      int
	Height     int
	Resolution float64
}

// Option configures a GridMap during construction.
type Option func(gm *GridMap)

// WithHeader attaches an opaque header. The value is deep-cloned and never interpreted.
func WithHeader(header *structpb.Value) Option {
	return func(gm *GridMap) {
		if header == nil {
			gm.header = nil
			return
		}
		gm.header = proto.Clone(header).(*structpb.Value)
	}
}

// WithTruncation makes ToGrid truncate toward zero instead of flooring.
// With it, metric coordinates in (-resolution, 0) land in cell 0.
func WithTruncation() Option {
	return func(gm *GridMap) { gm.truncate = true }
}

// GridMap is a read-only view over a flat, row-major grid of cell values.
// It is immutable once built and safe for concurrent use.
// data[y*Width+x] holds the value of cell (x, y).
type GridMap struct {
	info     Info
	data     []int32
	header   *structpb.Value
	truncate bool
}
