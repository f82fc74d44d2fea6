package catalog

import (
	"doonconnect/internal/domain"
	"doonconnect/internal/domain/models"
)

// Catalog is the immutable route/stop table the booking flow runs against.
type Catalog struct {
	routes    []models.Route
	stops     []models.Stop
	routeByID map[string]models.Route
	stopByID  map[string]models.Stop
}

// NewDefault loads the built-in Dehradun network.
func NewDefault() *Catalog {
	return New(defaultRoutes(), defaultStops())
}

// DefaultLiveBuses returns the fleet fixtures the live simulation starts
// from.
func DefaultLiveBuses() []models.LiveBus {
	return defaultLiveBuses()
}

func New(routes []models.Route, stops []models.Stop) *Catalog {
	c := &Catalog{
		routes:    routes,
		stops:     stops,
		routeByID: make(map[string]models.Route, len(routes)),
		stopByID:  make(map[string]models.Stop, len(stops)),
	}
	for _, r := range routes {
		c.routeByID[r.ID] = r
	}
	for _, s := range stops {
		c.stopByID[s.ID] = s
	}
	return c
}

func (c *Catalog) Routes() []models.Route {
	out := make([]models.Route, len(c.routes))
	copy(out, c.routes)
	return out
}

func (c *Catalog) Stops() []models.Stop {
	out := make([]models.Stop, len(c.stops))
	copy(out, c.stops)
	return out
}

func (c *Catalog) RouteByID(id string) (models.Route, error) {
	r, ok := c.routeByID[id]
	if !ok {
		return models.Route{}, domain.NotFoundError{Resource: "route"}
	}
	return r, nil
}

func (c *Catalog) StopByID(id string) (models.Stop, error) {
	s, ok := c.stopByID[id]
	if !ok {
		return models.Stop{}, domain.NotFoundError{Resource: "stop"}
	}
	return s, nil
}

// StopName resolves a stop id to its display name, falling back to the id
// when unknown.
func (c *Catalog) StopName(id string) string {
	if s, ok := c.stopByID[id]; ok {
		return s.Name
	}
	return id
}

// StopsForRoute returns the route's stops in travel order.
func (c *Catalog) StopsForRoute(routeID string) ([]models.Stop, error) {
	r, err := c.RouteByID(routeID)
	if err != nil {
		return nil, err
	}
	out := make([]models.Stop, 0, len(r.Stops))
	for _, id := range r.Stops {
		if s, ok := c.stopByID[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}
