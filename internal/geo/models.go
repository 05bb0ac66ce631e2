package geo

import "fmt"

// Location represents a resolved place. It is both a search suggestion and
// the key used to fetch a forecast.
type Location struct {
	Name      string  `json:"name"`
	Country   string  `json:"country"` // ISO 3166-1 alpha-2 code
	State     string  `json:"state,omitempty"`
	Continent string  `json:"continent,omitempty"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
}

// Key returns a canonical string key for this location.
func (l Location) Key() string {
	return fmt.Sprintf("%s:%s:%.4f:%.4f", l.Name, l.Country, l.Lat, l.Lon)
}

// Label returns a human-readable "City, State, Country" string.
func (l Location) Label() string {
	label := l.Name
	if l.State != "" {
		label += ", " + l.State
	}
	if c := CountryName(l.Country); c != "" {
		label += ", " + c
	}
	return label
}
