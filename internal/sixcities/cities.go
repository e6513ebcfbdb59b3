package sixcities

import "strings"

var cities = []City{
	{Name: "Paris", Location: Location{Latitude: 48.864716, Longitude: 2.349014, Zoom: 12}},
	{Name: "Amsterdam", Location: Location{Latitude: 52.377956, Longitude: 4.897070, Zoom: 12}},
	{Name: "Cologne", Location: Location{Latitude: 50.935173, Longitude: 6.953101, Zoom: 12}},
	{Name: "Brussels", Location: Location{Latitude: 50.85045, Longitude: 4.34878, Zoom: 12}},
	{Name: "Hamburg", Location: Location{Latitude: 53.551086, Longitude: 9.993682, Zoom: 12}},
	{Name: "Dusseldorf", Location: Location{Latitude: 51.233334, Longitude: 6.783333, Zoom: 12}},
}

// Cities returns the fixed set of destinations in display order.
func Cities() []City {
	out := make([]City, len(cities))
	copy(out, cities)
	return out
}

// DefaultCity is the city selected on startup.
func DefaultCity() City {
	return cities[0]
}

// LookupCity finds a city by name, ignoring case and surrounding space.
func LookupCity(name string) (City, bool) {
	name = strings.TrimSpace(name)
	for _, c := range cities {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return City{}, false
}
