package dataset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRows(t *testing.T) {
	csvData := `date,starRating,propertyType_cat,distanceFromCenter,occupiedRooms
2023-05-01,4,9,2.5,10
2023-05-02,4,9,2.5,15.5
`
	rows, err := ReadRows(strings.NewReader(csvData))
	require.Nil(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 4, rows[0].StarRating)
	assert.Equal(t, 9, rows[0].PropertyType)
	assert.Equal(t, 2.5, rows[0].DistanceFromCenter)
	assert.Equal(t, 15.5, rows[1].OccupiedRooms)
	assert.Equal(t, day(2023, 5, 1), rows[0].Date)
}

func TestReadRowsErrors(t *testing.T) {
	testData := map[string]struct {
		csvData string
	}{
		"missing column": {
			csvData: "date,starRating\n2023-05-01,4\n",
		},
		"bad date": {
			csvData: "date,starRating,propertyType_cat,distanceFromCenter,occupiedRooms\n05/01/2023,4,9,2.5,10\n",
		},
		"bad number": {
			csvData: "date,starRating,propertyType_cat,distanceFromCenter,occupiedRooms\n2023-05-01,four,9,2.5,10\n",
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			_, err := ReadRows(strings.NewReader(td.csvData))
			assert.NotNil(t, err)
		})
	}
}
