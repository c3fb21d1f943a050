package gridmap_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/testing/protocmp"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/katalvlaran/occgrid/gridmap"
)

func TestInfoFromStruct(t *testing.T) {
	cases := []struct {
		name   string
		fields map[string]any
		want   gridmap.Info
	}{
		{"Complete", map[string]any{"width": 3, "height": 2, "resolution": 0.5}, gridmap.Info{Width: 3, Height: 2, Resolution: 0.5}},
		{"MissingResolution", map[string]any{"width": 3, "height": 2}, gridmap.Info{Width: 3, Height: 2}},
		{"Empty", map[string]any{}, gridmap.Info{}},
		{"WrongKinds", map[string]any{"width": "3", "height": true, "resolution": []any{0.5}}, gridmap.Info{}},
		{"NullFields", map[string]any{"width": nil, "height": nil, "resolution": nil}, gridmap.Info{}},
		{"NegativeDims", map[string]any{"width": -3, "height": -1, "resolution": 0.1}, gridmap.Info{Resolution: 0.1}},
		{"FractionalDims", map[string]any{"width": 3.9, "height": 2.2, "resolution": 1}, gridmap.Info{Width: 3, Height: 2, Resolution: 1}},
		{"HugeDims", map[string]any{"width": 1e20, "height": 4, "resolution": 1}, gridmap.Info{Height: 4, Resolution: 1}},
		{"ExtraKeysIgnored", map[string]any{"width": 1, "height": 1, "resolution": 2, "origin": map[string]any{"x": 1}}, gridmap.Info{Width: 1, Height: 1, Resolution: 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := structpb.NewStruct(tc.fields)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, gridmap.InfoFromStruct(s)); diff != "" {
				t.Errorf("InfoFromStruct mismatch (-want+got):\n%v", diff)
			}
		})
	}
}

func TestInfoFromStruct_NonFinite(t *testing.T) {
	s := &structpb.Struct{Fields: map[string]*structpb.Value{
		"width":      structpb.NewNumberValue(math.Inf(1)),
		"height":     structpb.NewNumberValue(math.NaN()),
		"resolution": structpb.NewNumberValue(math.Inf(-1)),
	}}
	require.Equal(t, gridmap.Info{}, gridmap.InfoFromStruct(s))
	require.Equal(t, gridmap.Info{}, gridmap.InfoFromStruct(nil))
}

func TestCellsFromList(t *testing.T) {
	l, err := structpb.NewList([]any{0, 100, -1, 1e12, -1e12, "x", nil, 2.7, -2.7, true})
	require.NoError(t, err)

	want := []int32{0, 100, -1, math.MaxInt32, math.MinInt32, 0, 0, 2, -2, 0}
	if diff := cmp.Diff(want, gridmap.CellsFromList(l)); diff != "" {
		t.Errorf("CellsFromList mismatch (-want+got):\n%v", diff)
	}
	require.Empty(t, gridmap.CellsFromList(nil))
}

func TestFromStruct(t *testing.T) {
	info, err := structpb.NewStruct(map[string]any{"width": 3, "height": 2, "resolution": 0.5})
	require.NoError(t, err)
	data, err := structpb.NewList([]any{0, 1, 2, 3, 4, 5})
	require.NoError(t, err)
	header, err := structpb.NewValue(map[string]any{"frame_id": "map"})
	require.NoError(t, err)

	gm := gridmap.FromStruct(info, data, header)

	require.NoError(t, gm.Validate())
	require.Equal(t, int64(5), gm.GetFromGrid(2, 1))
	require.Equal(t, gridmap.Sentinel, gm.GetFromGrid(3, 0))
	require.Equal(t, int64(2), gm.GetFromMetric(1.0, 0.25))
	if diff := cmp.Diff(header, gm.Header(), protocmp.Transform()); diff != "" {
		t.Errorf("Header() mismatch (-want+got):\n%v", diff)
	}
}

func TestFromStruct_Options(t *testing.T) {
	info, err := structpb.NewStruct(map[string]any{"width": 3, "height": 2, "resolution": 0.5})
	require.NoError(t, err)
	data, err := structpb.NewList([]any{0, 1, 2, 3, 4, 5})
	require.NoError(t, err)

	gm := gridmap.FromStruct(info, data, nil, gridmap.WithTruncation())
	require.Nil(t, gm.Header())
	require.Equal(t, int64(0), gm.GetFromMetric(-0.25, -0.25))
}

func TestFromStruct_MissingEverything(t *testing.T) {
	gm := gridmap.FromStruct(nil, nil, nil)

	require.Equal(t, 0, gm.Width())
	require.Equal(t, 0, gm.Height())
	require.Equal(t, 0.0, gm.Resolution())
	require.Equal(t, gridmap.Point2i{X: gridmap.OffGrid, Y: gridmap.OffGrid}, gm.ToGrid(1.0, 1.0))
	require.Equal(t, gridmap.Sentinel, gm.GetFromMetric(1.0, 1.0))
	require.ErrorIs(t, gm.Validate(), gridmap.ErrInvalidResolution)
}
