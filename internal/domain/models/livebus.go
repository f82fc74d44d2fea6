package models

type Occupancy string

const (
	OccupancyLow    Occupancy = "low"
	OccupancyMedium Occupancy = "medium"
	OccupancyHigh   Occupancy = "high"
)

// LiveBus is one simulated vehicle position. EstimatedArrival counts down in
// minutes and is re-rolled when it reaches zero.
type LiveBus struct {
	ID               string    `json:"id"`
	RouteID          string    `json:"routeId"`
	CurrentStop      string    `json:"currentStop"`
	NextStop         string    `json:"nextStop"`
	EstimatedArrival int       `json:"estimatedArrival"`
	Distance         float64   `json:"distance"`
	Occupancy        Occupancy `json:"occupancy"`
}
