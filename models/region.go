package models

import (
	"errors"
	"fmt"
	"strings"
)

// Region is one of the supported geographic areas. Each region has exactly
// one schedule sheet and one schema variant.
type Region string

const (
	RegionTampa  Region = "tampa"
	RegionStPete Region = "stpete"
	RegionAustin Region = "austin"
)

// SchemaVariant names the layout of a region's schedule sheet.
type SchemaVariant string

const (
	// SchemaLong has one row per session occurrence.
	SchemaLong SchemaVariant = "long"
	// SchemaWide has one row per venue and one column per weekday.
	SchemaWide SchemaVariant = "wide"
)

var ErrUnknownRegion = errors.New("unknown region")

// RegionSchemas is the static region -> schema table. Schema selection never
// looks at the fetched content.
var RegionSchemas = map[Region]SchemaVariant{
	RegionTampa:  SchemaLong,
	RegionStPete: SchemaLong,
	RegionAustin: SchemaWide,
}

// AllRegions lists every region in a fixed order.
var AllRegions = []Region{RegionTampa, RegionStPete, RegionAustin}

// ParseRegion validates a region name.
func ParseRegion(s string) (Region, error) {
	r := Region(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := RegionSchemas[r]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRegion, s)
	}
	return r, nil
}

// Schema returns the region's schema variant.
func (r Region) Schema() (SchemaVariant, error) {
	v, ok := RegionSchemas[r]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRegion, string(r))
	}
	return v, nil
}
