// README: Maps a pickup coordinate to its surge multiplier.
package surge

import (
	"farecast/internal/geo"
	"farecast/internal/types"
)

// NoSurge is the multiplier returned for pickups outside every zone.
const NoSurge = 1.0

type Resolver struct {
	zones []Zone
}

func NewResolver(zones []Zone) *Resolver {
	return &Resolver{zones: zones}
}

// Multiplier returns the multiplier of the first zone whose radius
// contains the pickup point, or NoSurge when none matches.
func (r *Resolver) Multiplier(pickup types.Point) float64 {
	for _, z := range r.zones {
		if geo.HaversineKm(pickup, z.Center) <= z.RadiusKm {
			return z.Multiplier
		}
	}
	return NoSurge
}
