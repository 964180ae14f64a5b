// README: Common value objects used across modules.
package types

// ID is an opaque identifier for stored records.
type ID string

// Point is a WGS84 coordinate in decimal degrees.
type Point struct {
	Lat float64
	Lng float64
}
