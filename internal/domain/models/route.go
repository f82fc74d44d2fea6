package models

// GeoPoint is a WGS84 coordinate.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Stop is a bus stop referenced by id from route stop sequences.
type Stop struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Location  GeoPoint `json:"location"`
	Routes    []string `json:"routes"`
	Amenities []string `json:"amenities,omitempty"`
}

// Route is an ordered stop sequence with a full-route fare and a departure
// frequency in minutes. Immutable once loaded into the catalog.
type Route struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Color     string   `json:"color"`
	Stops     []string `json:"stops"`
	Fare      int64    `json:"fare"`
	Frequency int      `json:"frequency"`
}

// StopIndex returns the position of stopID in the route sequence, or -1.
func (r Route) StopIndex(stopID string) int {
	for i, id := range r.Stops {
		if id == stopID {
			return i
		}
	}
	return -1
}
