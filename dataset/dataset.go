// Package dataset reads line files into a transit.Dataset.
//
// The file is a JSON (or YAML) object keyed by line name:
//
//	{
//	  "L1": {"color": "#f5a3c7", "stations": {"A": [0.10, 0.20], "B": [0.15, 0.20]}},
//	  "L2": {"color": "#005eb8", "stations": {"D": [0.15, 0.10], "B": [0.15, 0.20]}}
//	}
//
// Key order is significant: lines keep file order and stations are stops in
// travel order, so the object is decoded through yaml.Node rather than a map.
package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/metroroute/geo"
	"github.com/katalvlaran/metroroute/transit"
)

// ErrUnknownCoordinates indicates Options.Coordinates names no known mode.
var ErrUnknownCoordinates = errors.New("dataset: unknown coordinate mode")

// Coordinate modes.
const (
	// Pixel coordinates are used as-is.
	Pixel = "pixel"
	// Normalized coordinates in [0, 1] are scaled by Width and Height.
	Normalized = "normalized"
	// Geographic coordinates are [lat, lon] pairs in degrees.
	Geographic = "geographic"
)

// Options controls how coordinates are read.
type Options struct {
	Coordinates string
	Width       float64
	Height      float64
}

// DefaultOptions reads normalized coordinates onto a 396×443 map.
func DefaultOptions() Options {
	return Options{Coordinates: Normalized, Width: 396, Height: 443}
}

// Load reads the file at path.
func Load(path string, opts Options) (transit.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return transit.Dataset{}, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()

	ds, err := Decode(f, opts)
	if err != nil {
		return transit.Dataset{}, fmt.Errorf("%s: %w", path, err)
	}

	return ds, nil
}

// Decode reads one line file from r. Structural problems are reported as
// transit.ErrMalformedDataset.
func Decode(r io.Reader, opts Options) (transit.Dataset, error) {
	project, err := projection(opts)
	if err != nil {
		return transit.Dataset{}, err
	}

	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return transit.Dataset{}, fmt.Errorf("%w: empty file", transit.ErrMalformedDataset)
		}
		return transit.Dataset{}, fmt.Errorf("%w: %v", transit.ErrMalformedDataset, err)
	}
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) == 1 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return transit.Dataset{}, fmt.Errorf("%w: top level must be an object of lines", transit.ErrMalformedDataset)
	}

	var ds transit.Dataset
	for i := 0; i+1 < len(root.Content); i += 2 {
		name, body := root.Content[i].Value, root.Content[i+1]
		ls, err := decodeLine(name, body, project)
		if err != nil {
			return transit.Dataset{}, err
		}
		ds.Lines = append(ds.Lines, ls)
	}

	return ds, nil
}

func decodeLine(name string, body *yaml.Node, project func(a, b float64) geo.Point) (transit.LineSpec, error) {
	ls := transit.LineSpec{Name: name}
	if body.Kind != yaml.MappingNode {
		return ls, fmt.Errorf("%w: line %q must be an object", transit.ErrMalformedDataset, name)
	}

	var stations *yaml.Node
	for i := 0; i+1 < len(body.Content); i += 2 {
		switch key, val := body.Content[i].Value, body.Content[i+1]; key {
		case "color":
			ls.Color = val.Value
		case "stations":
			stations = val
		}
	}
	if stations == nil || stations.Kind != yaml.MappingNode {
		return ls, fmt.Errorf("%w: line %q has no stations object", transit.ErrMalformedDataset, name)
	}

	for i := 0; i+1 < len(stations.Content); i += 2 {
		station, val := stations.Content[i].Value, stations.Content[i+1]
		var xy []float64
		if err := val.Decode(&xy); err != nil || len(xy) != 2 {
			return ls, fmt.Errorf("%w: line %q station %q: want a [x, y] pair at line %d",
				transit.ErrMalformedDataset, name, station, val.Line)
		}
		ls.Stops = append(ls.Stops, transit.StopSpec{Station: station, Pos: project(xy[0], xy[1])})
	}

	return ls, nil
}

func projection(opts Options) (func(a, b float64) geo.Point, error) {
	switch opts.Coordinates {
	case Pixel:
		return func(x, y float64) geo.Point { return geo.Point{x, y} }, nil
	case "", Normalized:
		if opts.Width <= 0 || opts.Height <= 0 {
			return nil, fmt.Errorf("dataset: normalized coordinates need a positive width and height, got %v×%v", opts.Width, opts.Height)
		}
		w, h := opts.Width, opts.Height
		return func(x, y float64) geo.Point { return geo.Point{x * w, y * h} }, nil
	case Geographic:
		return func(lat, lon float64) geo.Point { return geo.Point{lon, lat} }, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCoordinates, opts.Coordinates)
	}
}
