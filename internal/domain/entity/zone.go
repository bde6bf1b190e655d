package entity

import "strings"

// Zone is a blacklisted area identified by its postcode.
// Zones are values fetched fresh from the zone lookup source; they are never stored.
type Zone struct {
	Postcode string
}

// Matches reports whether the given postcode falls in this zone.
func (z Zone) Matches(postcode string) bool {
	return strings.EqualFold(z.Postcode, postcode)
}
