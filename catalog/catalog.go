// Package catalog maps property names to the segment fingerprint and map
// coordinates the forecaster needs. The catalog is loaded once at process
// start and read-only thereafter.
package catalog

import (
	"errors"
	"fmt"

	"github.com/mahadevpnair10/STAYSYNC/segment"
)

var (
	ErrUnknownProperty = errors.New("property name not found in catalog")
	ErrEmptyCatalog    = errors.New("catalog has no properties")
)

// UnknownPropertyType is the category code given to property types missing
// from the mapping table. It falls outside the one-hot indicator slots, so
// such properties score with an all-zero type block.
const UnknownPropertyType = -1

// propertyTypeCats is the fixed category code table from the training
// pipeline. Codes at or above the one-hot slot count exist in the table but
// encode as all zeros.
var propertyTypeCats = map[string]int{
	"Apart-hotel":  0,
	"Apartment":    1,
	"BnB":          2,
	"Cottage":      3,
	"Farm House":   4,
	"Guest House":  5,
	"Holiday Home": 6,
	"Homestay":     7,
	"Hostel":       8,
	"Hotel":        9,
	"Lodge":        10,
	"Resort":       11,
	"Villa":        12,
}

// PropertyTypeCat returns the category code for a property type string, or
// UnknownPropertyType when the table does not define it.
func PropertyTypeCat(propertyType string) int {
	if cat, ok := propertyTypeCats[propertyType]; ok {
		return cat
	}
	return UnknownPropertyType
}

// Property is one catalog entry.
type Property struct {
	Name               string  `json:"name"`
	ID                 string  `json:"id"`
	StarRating         int     `json:"star_rating"`
	PropertyType       string  `json:"property_type"`
	DistanceFromCenter float64 `json:"distance_from_center"`
	Latitude           float64 `json:"latitude"`
	Longitude          float64 `json:"longitude"`
}

// Fingerprint derives the segment fingerprint of the property.
func (p Property) Fingerprint() segment.Fingerprint {
	return segment.Fingerprint{
		StarRating:         p.StarRating,
		PropertyType:       PropertyTypeCat(p.PropertyType),
		DistanceFromCenter: p.DistanceFromCenter,
	}
}

// Catalog is the read-only property catalog.
type Catalog struct {
	properties []Property
	byName     map[string]int
}

// New builds a Catalog from properties. Later duplicates of a name shadow
// earlier ones.
func New(properties []Property) (*Catalog, error) {
	if len(properties) == 0 {
		return nil, ErrEmptyCatalog
	}
	c := &Catalog{
		properties: make([]Property, len(properties)),
		byName:     make(map[string]int, len(properties)),
	}
	copy(c.properties, properties)
	for i, p := range c.properties {
		c.byName[p.Name] = i
	}
	return c, nil
}

// Lookup returns the property with the given name.
func (c *Catalog) Lookup(name string) (Property, error) {
	i, ok := c.byName[name]
	if !ok {
		return Property{}, fmt.Errorf("%q, %w", name, ErrUnknownProperty)
	}
	return c.properties[i], nil
}

// Names returns all property names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.properties))
	for i, p := range c.properties {
		names[i] = p.Name
	}
	return names
}

// Properties returns a copy of all catalog entries.
func (c *Catalog) Properties() []Property {
	dst := make([]Property, len(c.properties))
	copy(dst, c.properties)
	return dst
}
