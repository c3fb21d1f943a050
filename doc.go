// Package occgrid is a small toolkit for querying 2D occupancy and cost grids
// shared between robots, simulators and planners.
//
// What is occgrid?
//
//	A read-only map view with:
//		• Grid metadata: width, height, resolution
//		• Metric ↔ grid coordinate conversion
//		• Bounds-checked cell lookup with an explicit Sentinel
//		• A structpb boundary for maps that arrive as decoded messages
//
// Everything lives in one subpackage:
//
//	gridmap/ — GridMap, Point2f, Point2i, Info, options and sentinel errors
//
// Quick ASCII example (resolution r):
//
//	    ┌───┬───┬───┐
//	y=1 │ 3 │ 4 │ 5 │   cell (x,y) spans [x·r,(x+1)·r) × [y·r,(y+1)·r)
//	    ├───┼───┼───┤
//	y=0 │ 0 │ 1 │ 2 │   value at data[y·width + x]
//	    └───┴───┴───┘
//	     x=0  1   2
//
// See examples/ for a runnable occupancy lookup.
//
//	go get github.com/katalvlaran/occgrid/gridmap
package occgrid
