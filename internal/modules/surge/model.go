// README: Surge zone definition and the fixed Dhaka hot-zone set.
package surge

import "farecast/internal/types"

// Zone is a circular geo-fence with a fare multiplier. Zones are
// process-wide constants; the resolver never mutates them.
type Zone struct {
	Center     types.Point
	RadiusKm   float64
	Multiplier float64
}

// DefaultZones returns the configured Dhaka hot zones in resolution
// order. First match wins; the zones do not overlap in practice.
func DefaultZones() []Zone {
	return []Zone{
		{Center: types.Point{Lat: 23.78, Lng: 90.41}, RadiusKm: 2.0, Multiplier: 1.5}, // Gulshan/Banani
		{Center: types.Point{Lat: 23.75, Lng: 90.38}, RadiusKm: 2.0, Multiplier: 1.3}, // Dhanmondi
		{Center: types.Point{Lat: 23.72, Lng: 90.40}, RadiusKm: 2.0, Multiplier: 1.8}, // Old Dhaka/Motijheel
	}
}
