package gridmap

import (
	"math"

	"google.golang.org/protobuf/types/known/structpb"
)

// Metadata keys read by InfoFromStruct.
const (
	KeyWidth      = "width"
	KeyHeight     = "height"
	KeyResolution = "resolution"
)

// FromStruct builds a GridMap from already-parsed structured values, e.g. a
// decoded map message. Missing or malformed fields fall back to zero values;
// see InfoFromStruct and CellsFromList. header is attached as with WithHeader.
func FromStruct(info *structpb.Struct, data *structpb.ListValue, header *structpb.Value, opts ...Option) *GridMap {
	all := make([]Option, 0, len(opts)+1)
	all = append(all, WithHeader(header))
	all = append(all, opts...)

	return New(InfoFromStruct(info), CellsFromList(data), all...)
}

// InfoFromStruct extracts width, height and resolution from s.
// A field that is absent, not a number, or not finite reads as 0.
// Width and height are truncated toward zero; negative values read as 0.
func InfoFromStruct(s *structpb.Struct) Info {
	fields := s.GetFields()

	return Info{
		Width:      dimension(fields[KeyWidth]),
		Height:     dimension(fields[KeyHeight]),
		Resolution: number(fields[KeyResolution]),
	}
}

// CellsFromList converts each element of l to an int32 cell value.
// Numbers are truncated toward zero and saturated to the int32 range;
// any other kind of element reads as 0.
func CellsFromList(l *structpb.ListValue) []int32 {
	values := l.GetValues()
	cells := make([]int32, len(values))
	for i, v := range values {
		f := math.Trunc(number(v))
		switch {
		case f >= math.MaxInt32:
			cells[i] = math.MaxInt32
		case f <= math.MinInt32:
			cells[i] = math.MinInt32
		default:
			cells[i] = int32(f)
		}
	}

	return cells
}

func number(v *structpb.Value) float64 {
	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok || math.IsNaN(n.NumberValue) || math.IsInf(n.NumberValue, 0) {
		return 0
	}

	return n.NumberValue
}

func dimension(v *structpb.Value) int {
	f := math.Trunc(number(v))
	if f <= 0 || f > MaxDimension {
		return 0
	}

	return int(f)
}
