package dataset_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metroroute/dataset"
	"github.com/katalvlaran/metroroute/geo"
	"github.com/katalvlaran/metroroute/transit"
)

func TestLoadKeepsOrder(t *testing.T) {
	ds, err := dataset.Load("testdata/lines.json", dataset.Options{Coordinates: dataset.Normalized, Width: 400, Height: 500})
	require.NoError(t, err)

	require.Len(t, ds.Lines, 2)
	l1, l2 := ds.Lines[0], ds.Lines[1]
	require.Equal(t, "L1", l1.Name)
	require.Equal(t, "#f5a3c7", l1.Color)
	require.Equal(t, "L2", l2.Name)

	var names []string
	for _, s := range l2.Stops {
		names = append(names, s.Station)
	}
	require.Equal(t, []string{"D", "B", "E"}, names)
	require.Equal(t, geo.Point{100, -100}, l2.Stops[0].Pos)
	require.Equal(t, geo.Point{200, 0}, l1.Stops[2].Pos)

	net, err := transit.Build(ds, transit.DefaultParams())
	require.NoError(t, err)
	require.Equal(t, 5, net.Stats().Stations)
}

func TestDecodeCoordinateModes(t *testing.T) {
	src := `{"L": {"stations": {"X": [19.43, -99.13], "Y": [19.44, -99.14]}}}`

	ds, err := dataset.Decode(strings.NewReader(src), dataset.Options{Coordinates: dataset.Geographic})
	require.NoError(t, err)
	require.Equal(t, geo.Point{-99.13, 19.43}, ds.Lines[0].Stops[0].Pos)

	ds, err = dataset.Decode(strings.NewReader(src), dataset.Options{Coordinates: dataset.Pixel})
	require.NoError(t, err)
	require.Equal(t, geo.Point{19.43, -99.13}, ds.Lines[0].Stops[0].Pos)

	_, err = dataset.Decode(strings.NewReader(src), dataset.Options{Coordinates: "polar"})
	require.ErrorIs(t, err, dataset.ErrUnknownCoordinates)

	_, err = dataset.Decode(strings.NewReader(src), dataset.Options{Coordinates: dataset.Normalized})
	require.Error(t, err)
}

func TestDecodeYAML(t *testing.T) {
	src := `
L9:
  color: "#999"
  stations:
    P: [1, 2]
    Q: [3, 4]
`
	ds, err := dataset.Decode(strings.NewReader(src), dataset.Options{Coordinates: dataset.Pixel})
	require.NoError(t, err)
	require.Equal(t, []transit.StopSpec{
		{Station: "P", Pos: geo.Point{1, 2}},
		{Station: "Q", Pos: geo.Point{3, 4}},
	}, ds.Lines[0].Stops)
}

func TestDecodeMalformed(t *testing.T) {
	cases := map[string]string{
		"empty":          ``,
		"array":          `[1, 2]`,
		"line not obj":   `{"L1": 3}`,
		"no stations":    `{"L1": {"color": "#fff"}}`,
		"short pair":     `{"L1": {"stations": {"A": [1]}}}`,
		"non-numeric":    `{"L1": {"stations": {"A": ["x", "y"]}}}`,
		"broken json":    `{"L1": `,
		"stations array": `{"L1": {"stations": [[1, 2]]}}`,
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := dataset.Decode(strings.NewReader(src), dataset.DefaultOptions())
			require.ErrorIs(t, err, transit.ErrMalformedDataset)
		})
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := dataset.Load("testdata/absent.json", dataset.DefaultOptions())
	require.Error(t, err)
}
