// README: Suggests a destination from the pickup location name.
package recommend

import "strings"

type mapping struct {
	keyword     string
	destination string
}

// Checked in order; first substring match wins.
var table = []mapping{
	{keyword: "gulshan", destination: "Bashundhara R/A"},
	{keyword: "dhanmondi", destination: "Motijheel"},
	{keyword: "mirpur", destination: "Uttara"},
}

// Destination returns a suggested drop-off for a free-text pickup name.
// ok is false when no keyword matches; that is an absence, not an error.
func Destination(pickupName string) (string, bool) {
	name := strings.ToLower(pickupName)
	for _, m := range table {
		if strings.Contains(name, m.keyword) {
			return m.destination, true
		}
	}
	return "", false
}
