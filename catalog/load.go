package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Column headers of the property catalog artifact.
const (
	colName       = "Property Name"
	colID         = "Property ID"
	colStarRating = "Star Rating"
	colType       = "Property Type"
	colDistance   = "Distance from Center"
	colLatitude   = "Latitude"
	colLongitude  = "Longitude"
)

// LoadCSV reads the property catalog artifact.
func LoadCSV(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog artifact, %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Read parses catalog entries out of CSV content.
func Read(r io.Reader) (*Catalog, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read catalog header, %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	for _, required := range []string{colName, colID, colStarRating, colType, colDistance, colLatitude, colLongitude} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("catalog artifact missing column %q", required)
		}
	}

	var properties []Property
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read catalog line %d, %w", line, err)
		}

		// star ratings appear as "4" or "4.0" depending on the export
		starFloat, err := strconv.ParseFloat(rec[cols[colStarRating]], 64)
		if err != nil {
			return nil, fmt.Errorf("catalog line %d star rating, %w", line, err)
		}
		dist, err := strconv.ParseFloat(rec[cols[colDistance]], 64)
		if err != nil {
			return nil, fmt.Errorf("catalog line %d distance, %w", line, err)
		}
		lat, err := strconv.ParseFloat(rec[cols[colLatitude]], 64)
		if err != nil {
			return nil, fmt.Errorf("catalog line %d latitude, %w", line, err)
		}
		lon, err := strconv.ParseFloat(rec[cols[colLongitude]], 64)
		if err != nil {
			return nil, fmt.Errorf("catalog line %d longitude, %w", line, err)
		}

		properties = append(properties, Property{
			Name:               rec[cols[colName]],
			ID:                 rec[cols[colID]],
			StarRating:         int(starFloat),
			PropertyType:       rec[cols[colType]],
			DistanceFromCenter: dist,
			Latitude:           lat,
			Longitude:          lon,
		})
	}
	return New(properties)
}
