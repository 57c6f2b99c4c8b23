package civil

import "time"

// LoadLocation resolves an IANA zone name. Unknown or empty names fall back to UTC.
func LoadLocation(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}
