package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	csvData := `Property Name,Property ID,Star Rating,Property Type,Distance from Center,Latitude,Longitude
Seaside Inn,P1,4.0,Hotel,2.5,11.0168,76.9558
Hilltop Lodge,P2,3,Lodge,5.1,11.1085,76.9699
`
	c, err := Read(strings.NewReader(csvData))
	require.Nil(t, err)

	p, err := c.Lookup("Seaside Inn")
	require.Nil(t, err)
	assert.Equal(t, "P1", p.ID)
	assert.Equal(t, 4, p.StarRating)
	assert.Equal(t, "Hotel", p.PropertyType)
	assert.Equal(t, 2.5, p.DistanceFromCenter)
	assert.Equal(t, 11.0168, p.Latitude)
	assert.Equal(t, 76.9558, p.Longitude)

	p, err = c.Lookup("Hilltop Lodge")
	require.Nil(t, err)
	assert.Equal(t, 3, p.StarRating)
}

func TestReadErrors(t *testing.T) {
	testData := map[string]struct {
		csvData string
	}{
		"missing column": {
			csvData: "Property Name,Property ID\nSeaside Inn,P1\n",
		},
		"bad star rating": {
			csvData: "Property Name,Property ID,Star Rating,Property Type,Distance from Center,Latitude,Longitude\nSeaside Inn,P1,four,Hotel,2.5,11.0,76.9\n",
		},
		"no rows": {
			csvData: "Property Name,Property ID,Star Rating,Property Type,Distance from Center,Latitude,Longitude\n",
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			_, err := Read(strings.NewReader(td.csvData))
			assert.NotNil(t, err)
		})
	}
}
