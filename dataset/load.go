package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Column headers of the historical dataset artifact.
const (
	colDate          = "date"
	colStarRating    = "starRating"
	colPropertyType  = "propertyType_cat"
	colDistance      = "distanceFromCenter"
	colOccupiedRooms = "occupiedRooms"
)

// LoadCSV reads the historical dataset artifact and indexes it into a Store.
// The artifact carries a header row naming at least date, starRating,
// propertyType_cat, distanceFromCenter, and occupiedRooms.
func LoadCSV(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset artifact, %w", err)
	}
	defer f.Close()

	rows, err := ReadRows(f)
	if err != nil {
		return nil, err
	}
	return NewStore(rows)
}

// ReadRows parses dataset rows out of CSV content.
func ReadRows(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read dataset header, %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	for _, required := range []string{colDate, colStarRating, colPropertyType, colDistance, colOccupiedRooms} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("dataset artifact missing column %q", required)
		}
	}

	var rows []Row
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read dataset line %d, %w", line, err)
		}

		date, err := time.Parse(time.DateOnly, rec[cols[colDate]])
		if err != nil {
			return nil, fmt.Errorf("dataset line %d date, %w", line, err)
		}
		star, err := strconv.Atoi(rec[cols[colStarRating]])
		if err != nil {
			return nil, fmt.Errorf("dataset line %d starRating, %w", line, err)
		}
		propType, err := strconv.Atoi(rec[cols[colPropertyType]])
		if err != nil {
			return nil, fmt.Errorf("dataset line %d propertyType_cat, %w", line, err)
		}
		dist, err := strconv.ParseFloat(rec[cols[colDistance]], 64)
		if err != nil {
			return nil, fmt.Errorf("dataset line %d distanceFromCenter, %w", line, err)
		}
		occupied, err := strconv.ParseFloat(rec[cols[colOccupiedRooms]], 64)
		if err != nil {
			return nil, fmt.Errorf("dataset line %d occupiedRooms, %w", line, err)
		}

		rows = append(rows, Row{
			Date:               date,
			StarRating:         star,
			PropertyType:       propType,
			DistanceFromCenter: dist,
			OccupiedRooms:      occupied,
		})
	}
	return rows, nil
}
