// Package gridmap wraps a flat, row-major grid of cell values (an occupancy
// or cost map) with metric↔grid conversion and bounds-checked lookup.
//
// What:
//
//   - GridMap stores Info{Width, Height, Resolution}, a copy of the []int32 cells
//     and an optional opaque *structpb.Value header.
//   - ToGrid/ToMetric convert between metric coordinates and cell indices.
//   - GetFromGrid/GetFromMetric return a cell value or Sentinel.
//   - FromStruct builds a map from already-decoded structpb values.
//
// Why:
//
//   - Robot navigation: "is the cell under this pose free?"
//   - Simulation: sample cost maps at continuous positions.
//
// Coordinates:
//
//	cell (x,y) covers [x·r, (x+1)·r) × [y·r, (y+1)·r), r = Resolution
//	flat index      = Width·y + x
//
// Width and Height are clamped to [0, MaxDimension] on construction, so
// Width×Height and every flat index fit in an int64.
//
// ToGrid floors by default; WithTruncation rounds toward zero instead, which
// folds (-r, r) into cell 0.
//
// Sentinel:
//
//	Lookups never fail. Out-of-range coordinates, under-sized data and
//	unconvertible metric points all return Sentinel (math.MaxInt64), which no
//	int32 cell can equal. Always test for it before using a value as a cost,
//	or use Lookup/LookupMetric for the comma-ok form.
//
// Complexity:
//
//   - New, FromStruct: O(W×H), Memory: O(W×H).
//   - All queries:     O(1).
//
// Errors (NewStrict, Validate only):
//
//   - ErrInvalidResolution: resolution missing, zero, negative, NaN or ±Inf.
//   - ErrShortData: fewer than Width×Height cells.
package gridmap
